package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNoValidData     = errors.New("no se encontraron facturas válidas en los archivos")
	ErrInvoiceNotFound = errors.New("el XML no contiene un documento fiscal")
	ErrInvalidArchive  = errors.New("el archivo no es un ZIP válido")
	ErrFileTooLarge    = errors.New("el archivo excede el tamaño máximo permitido")
	ErrTooManyFiles    = errors.New("se excedió el número máximo de archivos por lote")
	ErrUnsupportedFile = errors.New("extensión de archivo no soportada")
)
