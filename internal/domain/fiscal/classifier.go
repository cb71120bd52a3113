// Package fiscal contiene la lógica pura de consolidación y clasificación
// fiscal de los impuestos extraídos de un documento UBL.
package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zTMike/Desarollo-XML/internal/domain/entity"
)

// Classify determina el estado fiscal de un grupo a partir de los signos del
// monto de impuesto y de la base imponible:
//
//	GRAVADO    monto de impuesto > 0, sin importar el porcentaje declarado
//	EXENTO     base imponible > 0 y monto de impuesto = 0
//	EXCLUIDO   base imponible = 0 y monto de impuesto = 0
//	INDEFINIDO cualquier operando negativo
//
// El orden importa: un monto de impuesto positivo gana siempre, incluso con
// tasa 0% (inconsistencia del emisor, no motivo de rechazo). Los valores
// negativos no se corrigen en silencio.
func Classify(taxAmount, taxableBase decimal.Decimal) entity.FiscalStatus {
	switch {
	case taxAmount.IsNegative() || taxableBase.IsNegative():
		return entity.StatusIndefinido
	case taxAmount.IsPositive():
		return entity.StatusGravado
	case taxableBase.IsPositive():
		return entity.StatusExento
	default:
		return entity.StatusExcluido
	}
}

// Describe arma la descripción legible del impuesto para la columna Detalle:
//
//	"IVA - Impuesto (19.00%) - GRAVADO"
//	"ADV - Impuesto (MIXTO%) - GRAVADO - Consolidado (2 líneas)"
//	"Sin Impuestos - EXCLUIDO"
func Describe(g entity.TaxGroup) string {
	status := Classify(g.TaxAmount, g.TaxableBase)
	if g.SchemeName == "" {
		return fmt.Sprintf("Sin Impuestos - %s", status)
	}
	desc := fmt.Sprintf("%s - Impuesto (%s%%) - %s", g.SchemeName, formatRate(g.Rate), status)
	if g.MemberCount > 1 {
		desc += fmt.Sprintf(" - Consolidado (%d líneas)", g.MemberCount)
	}
	return desc
}

// formatRate normaliza la tasa a dos decimales; los valores no numéricos
// (el sentinela MIXTO, o basura del emisor) se dejan tal cual.
func formatRate(rate string) string {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return rate
	}
	return d.StringFixed(2)
}
