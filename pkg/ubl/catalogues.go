// Package ubl contiene constantes y catálogos del estándar UBL 2.1 usados por
// las facturas electrónicas DIAN (Colombia): namespaces, tipos de documento y
// utilidades sobre el NIT.
package ubl

import "github.com/zTMike/Desarollo-XML/internal/domain/entity"

// Namespaces oficiales UBL 2.1.
const (
	// Namespace por defecto de cada tipo de documento
	NsInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NsDebitNote  = "urn:oasis:names:specification:ubl:schema:xsd:DebitNote-2"
	// Common Aggregate Components
	NsCac = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	// Common Basic Components
	NsCbc = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	// Extension Components
	NsExt = "urn:oasis:names:specification:ubl:schema:xsd:CommonExtensionComponents-2"
	// XML Digital Signature
	NsDs = "http://www.w3.org/2000/09/xmldsig#"
)

// =============================================================================
// Tipos de documento fiscal
// El tipo se deriva del nombre local del elemento raíz del XML, no de un
// código de catálogo: los emisores no siempre diligencian cbc:InvoiceTypeCode.
// =============================================================================

// documentTypes nombre local del elemento raíz → (tipo, etiqueta para la columna Cuenta).
var documentTypes = map[string]struct {
	Type  entity.DocumentType
	Label string
}{
	"Invoice":    {entity.DocumentTypeInvoice, "FACTURA"},
	"CreditNote": {entity.DocumentTypeCreditNote, "NOTA DE CRÉDITO"},
	"DebitNote":  {entity.DocumentTypeDebitNote, "NOTA DE DÉBITO"},
}

// DocumentTypeFromTag clasifica un documento según el nombre local de su raíz.
func DocumentTypeFromTag(localName string) (entity.DocumentType, string) {
	if dt, ok := documentTypes[localName]; ok {
		return dt.Type, dt.Label
	}
	return entity.DocumentTypeUnknown, "DOCUMENTO DESCONOCIDO"
}

// FiscalClosingTags etiquetas de cierre de los documentos fiscales reconocidos,
// usadas para localizar un documento embebido dentro de un AttachedDocument.
var FiscalClosingTags = []string{"</Invoice>", "</CreditNote>", "</DebitNote>"}
