package ubl

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/zTMike/Desarollo-XML/internal/domain/entity"
)

// lineContainers elementos de línea de detalle. Un TaxTotal con alguno de
// estos en su cadena de ancestros es un impuesto por ítem y no debe entrar al
// reporte de documento (se duplicaría contra el TaxTotal global).
var lineContainers = map[string]bool{
	"InvoiceLine":    true,
	"CreditNoteLine": true,
	"DebitNoteLine":  true,
}

// ExtractDocumentTaxes recorre el árbol y devuelve los impuestos a nivel de
// documento. Los bloques TaxTotal de línea usan exactamente las mismas
// etiquetas que los globales; la única señal que los distingue es la posición
// estructural, por eso se filtra inspeccionando la cadena de ancestros y no
// con una ruta más estrecha.
//
// Cada TaxTotal retenido aporta una línea por TaxSubtotal; si no declara
// ninguno, el propio TaxTotal se trata como un subtotal implícito.
func ExtractDocumentTaxes(root *etree.Element) []entity.TaxLine {
	var lines []entity.TaxLine
	for _, taxTotal := range findAll(root, "TaxTotal") {
		if insideLineItem(taxTotal, root) {
			continue
		}
		subtotals := findAll(taxTotal, "TaxSubtotal")
		if len(subtotals) == 0 {
			lines = append(lines, taxLineFrom(taxTotal))
			continue
		}
		for _, sub := range subtotals {
			lines = append(lines, taxLineFrom(sub))
		}
	}
	return lines
}

// insideLineItem camina los punteros a padre desde el TaxTotal hasta la raíz
// buscando un contenedor de línea de detalle.
func insideLineItem(el, root *etree.Element) bool {
	for parent := el.Parent(); parent != nil && parent != root; parent = parent.Parent() {
		if lineContainers[parent.Tag] {
			return true
		}
	}
	return false
}

// taxLineFrom extrae esquema, porcentaje, monto y base de un TaxSubtotal (o
// de un TaxTotal sin subtotales). Campos ausentes valen "0.00"/cero.
func taxLineFrom(el *etree.Element) entity.TaxLine {
	line := entity.TaxLine{
		Percent:       textOrDefault(el, "Percent", "0.00"),
		TaxAmount:     decimalOrZero(findText(el, "TaxAmount")),
		TaxableAmount: decimalOrZero(findText(el, "TaxableAmount")),
	}
	if scheme := findElement(el, "TaxScheme"); scheme != nil {
		line.SchemeID = findText(scheme, "ID")
		line.SchemeName = findText(scheme, "Name")
	}
	return line
}

// findAll todos los descendientes con ese nombre local, en orden de documento.
func findAll(el *etree.Element, localName string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == localName {
			out = append(out, child)
		}
		out = append(out, findAll(child, localName)...)
	}
	return out
}

func textOrDefault(el *etree.Element, localName, def string) string {
	if t := findText(el, localName); t != "" {
		return t
	}
	return def
}

// decimalOrZero parsea un monto del XML; texto ausente o no numérico vale
// cero. Los negativos se conservan, el clasificador los marca INDEFINIDO.
func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
