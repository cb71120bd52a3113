// Package ubl implementa la lectura de documentos fiscales UBL: extracción
// desde archivos ZIP, localización de la factura embebida, parsing de la
// cabecera y extracción de impuestos a nivel de documento.
package ubl

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/zTMike/Desarollo-XML/internal/domain"
)

// ArchiveEntry un XML extraído de un ZIP, con su nombre de entrada.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// ExtractXMLFiles abre un ZIP en memoria y devuelve todas sus entradas .xml
// (insensible a mayúsculas), leídas completas. Un ZIP corrupto retorna
// domain.ErrInvalidArchive; el caller lo registra como falla del archivo y
// continúa con el resto del lote.
func ExtractXMLFiles(data []byte) ([]ArchiveEntry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArchive, err)
	}

	var entries []ArchiveEntry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(f.Name), ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			// entrada ilegible: se omite, el resto del ZIP sigue siendo útil
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		entries = append(entries, ArchiveEntry{Name: f.Name, Data: content})
	}
	return entries, nil
}
