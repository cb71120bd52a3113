package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zTMike/Desarollo-XML/internal/application/dto"
	"github.com/zTMike/Desarollo-XML/internal/application/processing"
	"github.com/zTMike/Desarollo-XML/internal/domain"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler maneja la carga de lotes, la descarga del reporte generado y
// el mantenimiento del almacenamiento temporal.
type ReportHandler struct {
	uc      *processing.ProcessBatchUseCase
	writer  processing.ReportWriter
	store   processing.FileStore
	service string

	maxFileBytes int64
	maxFiles     int
}

// ReportHandlerConfig límites de carga del lote.
type ReportHandlerConfig struct {
	ServiceName  string
	MaxFileBytes int64
	MaxFiles     int
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *processing.ProcessBatchUseCase, writer processing.ReportWriter, store processing.FileStore, cfg ReportHandlerConfig) *ReportHandler {
	return &ReportHandler{
		uc:           uc,
		writer:       writer,
		store:        store,
		service:      cfg.ServiceName,
		maxFileBytes: cfg.MaxFileBytes,
		maxFiles:     cfg.MaxFiles,
	}
}

// Process procesa un lote de archivos ZIP (o XML sueltos) y deja el reporte
// Excel en el almacenamiento temporal.
// POST /api/process  (multipart, campo "zip_files")
func (h *ReportHandler) Process(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORM", Message: "formulario multipart inválido"})
	}
	files := form.File["zip_files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILES", Message: "no se seleccionaron archivos"})
	}
	if h.maxFiles > 0 && len(files) > h.maxFiles {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "TOO_MANY_FILES",
			Message: fmt.Sprintf("máximo %d archivos por lote", h.maxFiles),
		})
	}

	uploads, err := h.readUploads(files)
	if err != nil {
		code := "INVALID_FILE"
		switch {
		case errors.Is(err, domain.ErrFileTooLarge):
			code = "FILE_TOO_LARGE"
		case errors.Is(err, domain.ErrUnsupportedFile):
			code = "UNSUPPORTED_FILE"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
	}

	result, err := h.uc.ProcessBatch(c.Context(), uploads)
	if err != nil {
		if errors.Is(err, domain.ErrNoValidData) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ProcessResponse{
				Success: false,
				Message: "no se encontraron archivos XML válidos en los ZIPs",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	reportBytes, err := h.writer.Write(result.Rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT", Message: err.Error()})
	}
	fileID, err := h.store.Put(reportBytes, ".xlsx")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}

	failures := make([]dto.BatchFailure, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, dto.BatchFailure{File: f.File, Reason: f.Reason})
	}

	return c.JSON(dto.ProcessResponse{
		Success: true,
		Message: fmt.Sprintf("Procesamiento completado exitosamente. %d líneas procesadas.", len(result.Rows)),
		FileID:  fileID,
		Stats: &dto.BatchStats{
			ArchivosProcesados: result.ProcessedArchives,
			FacturasExtraidas:  result.Documents,
			FilasTotales:       len(result.Rows),
			FechaProcesamiento: result.GeneratedAt.Format("2006-01-02 15:04:05"),
		},
		Failures: failures,
	})
}

// readUploads valida extensión y tamaño de cada archivo y lo lee completo.
// Un archivo inválido rechaza el lote entero antes de procesar nada.
func (h *ReportHandler) readUploads(files []*multipart.FileHeader) ([]processing.Upload, error) {
	uploads := make([]processing.Upload, 0, len(files))
	for _, fh := range files {
		name := strings.ToLower(fh.Filename)
		if !strings.HasSuffix(name, ".zip") && !strings.HasSuffix(name, ".xml") {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, fh.Filename)
		}
		if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileTooLarge, fh.Filename)
		}
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("abrir %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", fh.Filename, err)
		}
		uploads = append(uploads, processing.Upload{Filename: fh.Filename, Data: data})
	}
	return uploads, nil
}

// Download descarga el reporte Excel generado.
// GET /api/download/:id
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	data, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("reporte_facturas_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, xlsxMimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// Cleanup elimina los reportes temporales expirados.
// POST /api/cleanup
func (h *ReportHandler) Cleanup(c *fiber.Ctx) error {
	removed := h.store.CleanupExpired()
	return c.JSON(dto.CleanupResponse{Success: true, FilesRemoved: removed})
}

// Health estado del servicio y uso del almacenamiento temporal.
// GET /health
func (h *ReportHandler) Health(c *fiber.Ctx) error {
	sizeMB := float64(h.store.TotalSize()) / (1024 * 1024)
	return c.JSON(dto.HealthResponse{
		Status:          "healthy",
		Service:         h.service,
		TempFilesCount:  h.store.Count(),
		TempFilesSizeMB: float64(int(sizeMB*100)) / 100,
		Timestamp:       time.Now().Format(time.RFC3339),
	})
}
