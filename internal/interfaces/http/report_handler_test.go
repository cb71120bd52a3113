package http_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zTMike/Desarollo-XML/internal/application/dto"
	"github.com/zTMike/Desarollo-XML/internal/application/processing"
	"github.com/zTMike/Desarollo-XML/internal/infrastructure/excel"
	"github.com/zTMike/Desarollo-XML/internal/infrastructure/storage"
	internalhttp "github.com/zTMike/Desarollo-XML/internal/interfaces/http"
	"github.com/zTMike/Desarollo-XML/pkg/logger"
)

const testInvoiceXML = `<?xml version="1.0" encoding="UTF-8"?>
<Invoice xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
    xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>SETP990099001</cbc:ID>
  <cbc:IssueDate>2024-03-01</cbc:IssueDate>
  <cac:TaxTotal>
    <cbc:TaxAmount>19000.00</cbc:TaxAmount>
    <cac:TaxSubtotal>
      <cbc:TaxableAmount>100000.00</cbc:TaxableAmount>
      <cbc:TaxAmount>19000.00</cbc:TaxAmount>
      <cac:TaxCategory>
        <cbc:Percent>19.00</cbc:Percent>
        <cac:TaxScheme><cbc:ID>01</cbc:ID><cbc:Name>IVA</cbc:Name></cac:TaxScheme>
      </cac:TaxCategory>
    </cac:TaxSubtotal>
  </cac:TaxTotal>
</Invoice>`

// newTestApp arma la aplicación con dependencias reales sobre un directorio
// temporal.
func newTestApp(t *testing.T) (*fiber.App, *storage.TempStore) {
	t.Helper()
	store, err := storage.NewTempStore(t.TempDir(), time.Hour, nil)
	require.NoError(t, err)

	log := logger.New(logger.Config{Level: "error"})
	handler := internalhttp.NewReportHandler(
		processing.NewProcessBatchUseCase(log),
		excel.NewReportWriter(),
		store,
		internalhttp.ReportHandlerConfig{
			ServiceName:  "procesador-facturas-xml",
			MaxFileBytes: 10 * 1024 * 1024,
			MaxFiles:     3,
		},
	)

	app := fiber.New()
	internalhttp.Router(app, internalhttp.RouterDeps{Report: handler})
	return app, store
}

// multipartBody arma un cuerpo multipart con archivos en el campo zip_files.
func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile("zip_files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func zipOf(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestProcess_LoteExitoso(t *testing.T) {
	app, store := newTestApp(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"facturas.zip": zipOf(t, "factura.xml", testInvoiceXML),
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.ProcessResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.FileID)
	require.NotNil(t, out.Stats)
	assert.Equal(t, 1, out.Stats.ArchivosProcesados)
	assert.Equal(t, 1, out.Stats.FilasTotales)
	assert.Empty(t, out.Failures)

	// el reporte quedó en el almacenamiento temporal
	data, err := store.Get(out.FileID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestProcess_SinArchivos(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NO_FILES", out.Code)
}

func TestProcess_ExtensionNoSoportada(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartBody(t, map[string][]byte{"notas.pdf": []byte("pdf")})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "UNSUPPORTED_FILE", out.Code)
}

func TestProcess_DemasiadosArchivos(t *testing.T) {
	app, _ := newTestApp(t)

	files := map[string][]byte{
		"a.zip": zipOf(t, "a.xml", testInvoiceXML),
		"b.zip": zipOf(t, "b.xml", testInvoiceXML),
		"c.zip": zipOf(t, "c.xml", testInvoiceXML),
		"d.zip": zipOf(t, "d.xml", testInvoiceXML),
	}
	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "TOO_MANY_FILES", out.Code)
}

// TestProcess_SinDatosValidos un lote donde ningún XML produce filas responde
// 422 con success en falso.
func TestProcess_SinDatosValidos(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"basura.zip": zipOf(t, "basura.xml", "esto no es XML"),
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/api/process", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ProcessResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
}

func TestDownload(t *testing.T) {
	app, store := newTestApp(t)

	id, err := store.Put([]byte("contenido-xlsx"), ".xlsx")
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/download/"+id, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="reporte_facturas_`)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("contenido-xlsx"), data)
}

func TestDownload_NoEncontrado(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/download/xxxx", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestCleanup(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodPost, "/api/cleanup", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.CleanupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, 0, out.FilesRemoved)
}

func TestHealth(t *testing.T) {
	app, store := newTestApp(t)

	_, err := store.Put([]byte("reporte"), ".xlsx")
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var out dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, "procesador-facturas-xml", out.Service)
	assert.Equal(t, 1, out.TempFilesCount)
}
