package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Report *ReportHandler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", deps.Report.Health)

	api := app.Group("/api")

	// Procesamiento de lotes y descarga de reportes
	api.Post("/process", deps.Report.Process)
	api.Get("/download/:id", deps.Report.Download)
	api.Post("/cleanup", deps.Report.Cleanup)
}
