package processing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zTMike/Desarollo-XML/internal/domain"
	"github.com/zTMike/Desarollo-XML/internal/domain/entity"
	"github.com/zTMike/Desarollo-XML/internal/domain/fiscal"
	infraubl "github.com/zTMike/Desarollo-XML/internal/infrastructure/ubl"
	"github.com/zTMike/Desarollo-XML/pkg/logger"
)

// BatchFailure falla de un archivo o entrada concreta del lote. Las fallas
// no detienen el procesamiento: se acumulan y viajan en la respuesta para
// que el usuario sepa qué quedó por fuera del reporte.
type BatchFailure struct {
	File   string
	Reason string
}

// BatchResult resultado de procesar un lote completo.
type BatchResult struct {
	Rows              []entity.ReportRow
	Failures          []BatchFailure
	ProcessedArchives int
	Documents         int
	GeneratedAt       time.Time
}

// ProcessBatchUseCase ejecuta el pipeline completo sobre un lote de archivos
// subidos. No guarda estado entre documentos: cada entrada se procesa de
// principio a fin con estructuras recién asignadas.
type ProcessBatchUseCase struct {
	log *logger.Logger
}

// NewProcessBatchUseCase construye el caso de uso.
func NewProcessBatchUseCase(log *logger.Logger) *ProcessBatchUseCase {
	return &ProcessBatchUseCase{log: log}
}

// ProcessBatch procesa cada archivo del lote (ZIP con XMLs, o un XML suelto)
// y devuelve las filas acumuladas del reporte. Las fallas por archivo o por
// documento se registran y el lote continúa; solo un lote que no produce
// ninguna fila retorna domain.ErrNoValidData.
func (uc *ProcessBatchUseCase) ProcessBatch(ctx context.Context, uploads []Upload) (*BatchResult, error) {
	result := &BatchResult{GeneratedAt: time.Now()}
	documents := make(map[string]struct{})

	for _, upload := range uploads {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := uc.expandUpload(upload)
		if err != nil {
			uc.log.Warn().Str("archivo", upload.Filename).Err(err).Msg("archivo descartado")
			result.Failures = append(result.Failures, BatchFailure{File: upload.Filename, Reason: err.Error()})
			continue
		}

		archiveOK := false
		for _, entry := range entries {
			rows, number, err := uc.processEntry(upload.Filename, entry)
			if err != nil {
				uc.log.Warn().
					Str("zip", upload.Filename).
					Str("xml", entry.Name).
					Err(err).
					Msg("documento omitido")
				result.Failures = append(result.Failures, BatchFailure{
					File:   upload.Filename + "/" + entry.Name,
					Reason: err.Error(),
				})
				continue
			}
			result.Rows = append(result.Rows, rows...)
			if number != "" {
				documents[number] = struct{}{}
			}
			archiveOK = true
		}
		if archiveOK {
			result.ProcessedArchives++
		}
	}

	result.Documents = len(documents)
	if len(result.Rows) == 0 {
		return nil, domain.ErrNoValidData
	}

	uc.log.Info().
		Int("archivos", result.ProcessedArchives).
		Int("documentos", result.Documents).
		Int("filas", len(result.Rows)).
		Msg("lote procesado")
	return result, nil
}

// expandUpload convierte un archivo subido en entradas XML: los ZIP se
// descomprimen, un .xml suelto se acepta como entrada única.
func (uc *ProcessBatchUseCase) expandUpload(upload Upload) ([]infraubl.ArchiveEntry, error) {
	if strings.HasSuffix(strings.ToLower(upload.Filename), ".xml") {
		return []infraubl.ArchiveEntry{{Name: upload.Filename, Data: upload.Data}}, nil
	}
	entries, err := infraubl.ExtractXMLFiles(upload.Data)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("el ZIP no contiene archivos XML")
	}
	return entries, nil
}

// processEntry corre el pipeline sobre un XML: localizar el documento fiscal,
// parsear la cabecera, extraer y consolidar impuestos, armar las filas.
func (uc *ProcessBatchUseCase) processEntry(zipName string, entry infraubl.ArchiveEntry) ([]entity.ReportRow, string, error) {
	invoiceXML, err := infraubl.LocateInvoice(entry.Data)
	if err != nil {
		return nil, "", err
	}
	doc, header, err := infraubl.ParseDocument(invoiceXML)
	if err != nil {
		return nil, "", err
	}
	taxLines := infraubl.ExtractDocumentTaxes(doc.Root())
	groups := fiscal.Consolidate(taxLines)
	return assembleRows(header, groups, zipName), header.Number, nil
}

// assembleRows arma una fila por grupo de impuesto. Un documento sin
// impuestos a nivel de documento produce exactamente una fila EXCLUIDO con
// montos en cero; la cabecera se repite verbatim en todas las filas.
func assembleRows(header entity.DocumentHeader, groups []entity.TaxGroup, zipName string) []entity.ReportRow {
	if len(groups) == 0 {
		row := baseRow(header, zipName)
		row.Detalle = fmt.Sprintf("Sin Impuestos - %s", entity.StatusExcluido)
		row.EstadoFiscal = entity.StatusExcluido
		row.Valor = "0.00"
		row.Base = "0.00"
		return []entity.ReportRow{row}
	}

	rows := make([]entity.ReportRow, 0, len(groups))
	for _, g := range groups {
		row := baseRow(header, zipName)
		row.Detalle = fiscal.Describe(g)
		row.EstadoFiscal = fiscal.Classify(g.TaxAmount, g.TaxableBase)
		row.Valor = g.TaxAmount.StringFixed(2)
		row.Base = g.TaxableBase.StringFixed(2)
		rows = append(rows, row)
	}
	return rows
}

func baseRow(header entity.DocumentHeader, zipName string) entity.ReportRow {
	return entity.ReportRow{
		Cuenta:           header.TypeLabel,
		Fecha:            header.IssueDate,
		Documento:        header.ShortNumber,
		DocumentoRef:     zipName,
		Nit:              header.SupplierNIT,
		Plazo:            header.DueDate,
		DoctoElectronico: header.UUID,
	}
}
