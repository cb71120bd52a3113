package ubl

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"

	"github.com/zTMike/Desarollo-XML/internal/domain"
	"github.com/zTMike/Desarollo-XML/pkg/ubl"
)

// xmlEncodingDecl captura el atributo encoding de la declaración XML.
var xmlEncodingDecl = regexp.MustCompile(`(?i)<\?xml[^>]*encoding\s*=\s*["']([^"']+)["']`)

// LocateInvoice devuelve el XML del documento fiscal contenido en un payload.
// Algunos emisores entregan la factura directamente; otros la embeben como
// texto (CDATA) dentro de un AttachedDocument para el empaquetado de firma.
//
//  1. Decodifica los bytes (UTF-8, o ISO-8859-1 si la declaración lo indica).
//  2. Parsea el payload; si no es XML bien formado, retorna ErrInvoiceNotFound.
//  3. Recorre el texto de todos los nodos buscando una declaración XML junto a
//     una etiqueta de cierre de documento fiscal, y recorta ese fragmento.
//  4. Si no hay documento embebido pero la raíz ya es fiscal, retorna el
//     payload completo.
func LocateInvoice(raw []byte) (string, error) {
	text := decodePayload(raw)

	doc := newDocument()
	if err := doc.ReadFromString(text); err != nil {
		return "", domain.ErrInvoiceNotFound
	}
	root := doc.Root()
	if root == nil {
		return "", domain.ErrInvoiceNotFound
	}

	if embedded, ok := findEmbeddedDocument(root); ok {
		return embedded, nil
	}

	if _, ok := fiscalRoot(root.Tag); ok {
		return text, nil
	}
	return "", domain.ErrInvoiceNotFound
}

// findEmbeddedDocument busca en el texto de cada nodo una factura embebida y
// recorta desde el inicio de su declaración XML hasta la última etiqueta de
// cierre fiscal.
func findEmbeddedDocument(el *etree.Element) (string, bool) {
	text := el.Text()
	if start := strings.Index(text, "<?xml"); start != -1 {
		for _, closing := range ubl.FiscalClosingTags {
			end := strings.LastIndex(text, closing)
			if end > start {
				return strings.TrimSpace(text[start : end+len(closing)]), true
			}
		}
	}
	for _, child := range el.ChildElements() {
		if embedded, ok := findEmbeddedDocument(child); ok {
			return embedded, true
		}
	}
	return "", false
}

func fiscalRoot(localName string) (string, bool) {
	switch localName {
	case "Invoice", "CreditNote", "DebitNote":
		return localName, true
	}
	return "", false
}

// decodePayload convierte los bytes a texto. Los XML de terceros llegan casi
// siempre en UTF-8, pero la declaración puede indicar ISO-8859-1.
func decodePayload(raw []byte) string {
	head := raw
	if len(head) > 256 {
		head = head[:256]
	}
	if m := xmlEncodingDecl.FindSubmatch(head); m != nil {
		switch strings.ToLower(string(m[1])) {
		case "iso-8859-1", "latin1", "latin-1":
			if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw); err == nil {
				return string(decoded)
			}
		}
	}
	return string(raw)
}
