package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchStats estadísticas del procesamiento de un lote.
type BatchStats struct {
	ArchivosProcesados int    `json:"archivos_procesados"`
	FacturasExtraidas  int    `json:"facturas_extraidas"`
	FilasTotales       int    `json:"filas_totales"`
	FechaProcesamiento string `json:"fecha_procesamiento"`
}

// BatchFailure archivo o XML del lote que no pudo procesarse.
type BatchFailure struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// ProcessResponse respuesta del endpoint de procesamiento.
type ProcessResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	FileID   string         `json:"file_id,omitempty"`
	Stats    *BatchStats    `json:"stats,omitempty"`
	Failures []BatchFailure `json:"failures,omitempty"`
}

// CleanupResponse respuesta del endpoint de limpieza de temporales.
type CleanupResponse struct {
	Success      bool `json:"success"`
	FilesRemoved int  `json:"files_removed"`
}

// HealthResponse estado del servicio y de su almacenamiento temporal.
type HealthResponse struct {
	Status          string  `json:"status"`
	Service         string  `json:"service"`
	TempFilesCount  int     `json:"temp_files_count"`
	TempFilesSizeMB float64 `json:"temp_files_size_mb"`
	Timestamp       string  `json:"timestamp"`
}
