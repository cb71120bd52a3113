package ubl

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/zTMike/Desarollo-XML/internal/domain/entity"
	"github.com/zTMike/Desarollo-XML/pkg/ubl"
)

// newDocument crea un documento etree tolerante con declaraciones de charset:
// el contenido ya llega transcodificado a UTF-8 por el locator, así que la
// declaración original (p. ej. ISO-8859-1) se ignora.
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return doc
}

// ParseDocument parsea el XML de un documento fiscal y extrae su cabecera.
// Las búsquedas son por nombre local en orden de documento (primer match),
// ignorando el prefijo de namespace: los emisores usan prefijos cac/cbc
// inconsistentes y algunos declaran los suyos propios.
// Cualquier campo ausente queda como cadena vacía, nunca falla por eso;
// solo un XML mal formado produce error y el documento se omite del lote.
func ParseDocument(invoiceXML string) (*etree.Document, entity.DocumentHeader, error) {
	doc := newDocument()
	if err := doc.ReadFromString(invoiceXML); err != nil {
		return nil, entity.DocumentHeader{}, fmt.Errorf("ubl: parsear documento: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, entity.DocumentHeader{}, fmt.Errorf("ubl: documento sin elemento raíz")
	}

	docType, label := ubl.DocumentTypeFromTag(root.Tag)
	number := findText(root, "ID")

	header := entity.DocumentHeader{
		Type:        docType,
		TypeLabel:   label,
		Number:      number,
		ShortNumber: shortNumber(number),
		IssueDate:   findText(root, "IssueDate"),
		DueDate:     dueDate(root),
		UUID:        findText(root, "UUID"),
		Currency:    findText(root, "DocumentCurrencyCode"),
		PayableAmount: findText(root, "PayableAmount"),
	}

	if supplier := findElement(root, "AccountingSupplierParty"); supplier != nil {
		header.SupplierNIT = ubl.NormalizeNIT(findText(supplier, "CompanyID"))
		header.SupplierName = findTextPath(supplier, "PartyName", "Name")
	}
	if customer := findElement(root, "AccountingCustomerParty"); customer != nil {
		header.CustomerNIT = ubl.NormalizeNIT(findText(customer, "CompanyID"))
		header.CustomerName = findTextPath(customer, "PartyName", "Name")
		header.CustomerAddress = findTextPath(customer, "PhysicalLocation", "Address", "AddressLine", "Line")
	}
	if header.CustomerAddress == "" {
		header.CustomerAddress = findTextPath(root, "Delivery", "DeliveryAddress", "AddressLine", "Line")
	}

	return doc, header, nil
}

// shortNumber recorta el número de documento a sus últimos 5 caracteres, el
// formato que usa el área contable para referenciar la factura.
func shortNumber(number string) string {
	if len(number) <= 5 {
		return number
	}
	return number[len(number)-5:]
}

// dueDate busca el plazo de pago declarado en PaymentMeans; si el emisor no
// lo diligencia, cae al cbc:DueDate de la cabecera.
func dueDate(root *etree.Element) string {
	if pm := findElement(root, "PaymentMeans"); pm != nil {
		if d := findText(pm, "PaymentDueDate"); d != "" {
			return d
		}
	}
	return findText(root, "DueDate")
}

// findElement primer descendiente (en profundidad, orden de documento) cuyo
// nombre local coincide. No compara prefijos de namespace.
func findElement(el *etree.Element, localName string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == localName {
			return child
		}
		if found := findElement(child, localName); found != nil {
			return found
		}
	}
	return nil
}

// findText texto del primer descendiente con ese nombre local, o "".
func findText(el *etree.Element, localName string) string {
	if found := findElement(el, localName); found != nil {
		return found.Text()
	}
	return ""
}

// findTextPath encadena búsquedas de descendientes: cada nombre se busca
// dentro del resultado anterior. Devuelve el texto del último, o "".
func findTextPath(el *etree.Element, localNames ...string) string {
	current := el
	for _, name := range localNames {
		current = findElement(current, name)
		if current == nil {
			return ""
		}
	}
	return current.Text()
}
