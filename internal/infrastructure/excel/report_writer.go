// Package excel renderiza las filas consolidadas como libro .xlsx.
package excel

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/zTMike/Desarollo-XML/internal/domain/entity"
)

const sheetName = "Facturas"

// columns encabezado fijo del reporte contable, en el orden que espera el
// área de contabilidad.
var columns = []string{
	"Cuenta",
	"Comprobante",
	"Fecha",
	"Documento",
	"Documento_Ref",
	"Nit",
	"Detalle",
	"Tipo",
	"Estado_Fiscal",
	"Valor",
	"Base",
	"Centro_Costo",
	"Trans_Ext",
	"Plazo",
	"Docto_Electronico",
}

// ReportWriter genera el archivo Excel del reporte.
type ReportWriter struct{}

// NewReportWriter construye el writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write produce el .xlsx con una hoja "Facturas": fila de encabezado con el
// estilo corporativo y una fila por ReportRow. Valor y Base se escriben como
// celdas numéricas; el resto de los campos van como texto tal cual llegan.
func (w *ReportWriter) Write(rows []entity.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo de encabezado: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("excel: escribir encabezado %s: %w", col, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo de encabezado: %w", err)
	}

	for r, row := range rows {
		values := []any{
			row.Cuenta,
			row.Comprobante,
			row.Fecha,
			row.Documento,
			row.DocumentoRef,
			row.Nit,
			row.Detalle,
			string(row.EstadoFiscal),
			string(row.EstadoFiscal),
			numericCell(row.Valor),
			numericCell(row.Base),
			row.CentroCosto,
			row.TransExt,
			row.Plazo,
			row.DoctoElectronico,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escribir fila %d: %w", r+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// numericCell convierte un monto ya redondeado a float64 para que Excel lo
// trate como número; si no parsea se escribe el texto original.
func numericCell(s string) any {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return v
}
