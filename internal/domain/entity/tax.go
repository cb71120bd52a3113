package entity

import "github.com/shopspring/decimal"

// FiscalStatus clasificación fiscal de un grupo de impuestos.
type FiscalStatus string

const (
	StatusGravado    FiscalStatus = "GRAVADO"    // hay monto de impuesto aplicado
	StatusExento     FiscalStatus = "EXENTO"     // hay base imponible pero no impuesto
	StatusExcluido   FiscalStatus = "EXCLUIDO"   // sin base imponible ni impuesto
	StatusIndefinido FiscalStatus = "INDEFINIDO" // datos negativos o inconsistentes
)

// RateMixed valor sentinela de tasa para los esquemas que se consolidan
// sin distinguir porcentaje (ADV aplica varias tasas al mismo concepto).
const RateMixed = "MIXTO"

// TaxLine un impuesto a nivel de documento tal como aparece en el XML.
// Los montos se conservan con la precisión original del documento.
type TaxLine struct {
	SchemeID   string
	SchemeName string
	Percent    string // texto del XML, "0.00" cuando no se declara
	TaxAmount  decimal.Decimal
	TaxableAmount decimal.Decimal
}

// TaxGroup agregado de líneas de impuesto por (esquema, tasa).
// Los montos se acumulan sin redondear; el redondeo a 2 decimales ocurre una
// sola vez al armar la fila del reporte.
type TaxGroup struct {
	SchemeID    string
	SchemeName  string
	Rate        string // porcentaje, o RateMixed para esquemas consolidados
	TaxAmount   decimal.Decimal
	TaxableBase decimal.Decimal
	MemberCount int
}
