package entity

// ReportRow fila del reporte contable. Una por grupo de impuesto del
// documento, o exactamente una fila EXCLUIDO cuando el documento no declara
// impuestos a nivel de documento. Comprobante, CentroCosto y TransExt
// quedan vacíos para diligenciamiento manual en el libro contable.
type ReportRow struct {
	Cuenta           string // etiqueta del tipo de documento (FACTURA, NOTA DE CRÉDITO...)
	Comprobante      string
	Fecha            string
	Documento        string // número corto (últimos 5 caracteres)
	DocumentoRef     string // nombre del ZIP de origen, para trazabilidad
	Nit              string // NIT del proveedor
	Detalle          string // descripción del impuesto con clasificación
	EstadoFiscal     FiscalStatus
	Valor            string // monto del impuesto, redondeado a 2 decimales
	Base             string // base imponible, redondeada a 2 decimales
	CentroCosto      string
	TransExt         string
	Plazo            string // fecha de vencimiento del pago
	DoctoElectronico string // UUID / CUFE
}
