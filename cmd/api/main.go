package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zTMike/Desarollo-XML/internal/application/processing"
	"github.com/zTMike/Desarollo-XML/internal/infrastructure/excel"
	"github.com/zTMike/Desarollo-XML/internal/infrastructure/storage"
	httpRouter "github.com/zTMike/Desarollo-XML/internal/interfaces/http"
	"github.com/zTMike/Desarollo-XML/pkg/config"
	"github.com/zTMike/Desarollo-XML/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := storage.NewTempStore(
		cfg.TempDir(os.TempDir()),
		time.Duration(cfg.Temp.TTLMinutes)*time.Minute,
		time.Now,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento temporal")
	}

	processUC := processing.NewProcessBatchUseCase(log)
	reportWriter := excel.NewReportWriter()

	reportHandler := httpRouter.NewReportHandler(processUC, reportWriter, store, httpRouter.ReportHandlerConfig{
		ServiceName:  cfg.App.Name,
		MaxFileBytes: cfg.Upload.MaxFileBytes(),
		MaxFiles:     cfg.Upload.MaxFiles,
	})

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Lotes de ZIPs grandes: el límite real por archivo se valida en el handler
		BodyLimit:    (cfg.Upload.MaxFileMB + 10) * 1024 * 1024,
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Report: reportHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	store.CleanupExpired()
	log.Info().Msg("aplicación detenida")
}
