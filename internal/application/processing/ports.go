// Package processing orquesta el pipeline de procesamiento de lotes:
// ZIP → XML → documento fiscal → impuestos → consolidación → filas de reporte.
package processing

import "github.com/zTMike/Desarollo-XML/internal/domain/entity"

// Upload un archivo recibido en el lote: nombre y contenido completo.
// Cualquier adaptador que entregue bytes con nombre sirve (multipart HTTP,
// pruebas, un CLI futuro).
type Upload struct {
	Filename string
	Data     []byte
}

// ReportWriter renderiza las filas consolidadas como hoja de cálculo.
type ReportWriter interface {
	Write(rows []entity.ReportRow) ([]byte, error)
}

// FileStore almacenamiento temporal del reporte generado. Put devuelve un
// identificador opaco con el que luego se descarga o elimina el archivo.
type FileStore interface {
	Put(data []byte, ext string) (string, error)
	Get(id string) ([]byte, error)
	Delete(id string) error
	CleanupExpired() int
	Count() int
	TotalSize() int64
}
