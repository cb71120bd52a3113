package entity

// DocumentType tipo de documento fiscal detectado a partir del elemento raíz del XML.
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "INVOICE"
	DocumentTypeCreditNote DocumentType = "CREDIT_NOTE"
	DocumentTypeDebitNote  DocumentType = "DEBIT_NOTE"
	DocumentTypeUnknown    DocumentType = "UNKNOWN"
)

// DocumentHeader datos identificativos de un documento fiscal UBL.
// Todos los campos de texto son cadena vacía cuando el dato no existe en el
// XML de origen; nunca se propagan valores nulos hacia el reporte.
type DocumentHeader struct {
	Type       DocumentType
	TypeLabel  string // FACTURA, NOTA DE CRÉDITO, NOTA DE DÉBITO, DOCUMENTO DESCONOCIDO
	Number     string // cbc:ID completo
	ShortNumber string // últimos 5 caracteres del número (o el número completo si es más corto)
	IssueDate  string
	DueDate    string // cac:PaymentMeans/cbc:PaymentDueDate, con fallback a cbc:DueDate
	UUID       string // CUFE / identificador del documento electrónico
	SupplierNIT  string
	SupplierName string
	CustomerNIT  string
	CustomerName string
	CustomerAddress string
	Currency      string
	PayableAmount string
}
