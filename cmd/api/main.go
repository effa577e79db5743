package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/insight"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/handlers"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/repositories"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/middleware"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/hvstat-explorer-be/cmd/api/docs"
)

const reloadTimeout = 2 * time.Minute

// @title HVStat Explorer API
// @version 1.0
// @description Subnational crop production statistics for Africa (HVStat dataset)
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env, cfg.LogLevel)
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting hvstat-api")

	// Pick the dataset source
	var loader dataset.Loader
	switch cfg.DatasetSource {
	case config.SourceDatabase:
		db, err := database.NewDB(cfg.DatabaseURL, !cfg.IsProduction())
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to connect database")
		}
		defer db.Close()
		loader = dataset.NewRepositoryLoader(repositories.NewCropRecordRepo(db.GORM))
	case config.SourceCSV:
		loader = dataset.NewFileLoader(cfg.DatasetPath)
	default:
		log.Fatal().Str("source", cfg.DatasetSource).Msg("❌ DATASET_SOURCE must be csv or database")
	}

	// Initial load; the API answers 503 until a load succeeds
	store := dataset.NewStore(loader)
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	if _, err := store.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("⚠️ Starting without dataset, use POST /api/dataset/reload once the source is ready")
	}
	cancel()

	// Periodic reload
	scheduler := dataset.NewScheduler(store, reloadTimeout)
	if cfg.DatasetReloadSchedule != "" {
		if err := scheduler.Schedule(cfg.DatasetReloadSchedule); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.DatasetReloadSchedule).Msg("❌ Invalid DATASET_RELOAD_SCHEDULE")
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Info().Time("next", scheduler.Next()).Msg("⏰ Next dataset reload")
	}

	// Init services
	statsService := services.NewStatsService(store)
	exportService := export.NewService()
	insightService := insight.NewService(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "HVStat Explorer API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(handlers.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, handlers.Handlers{
		Stats:   handlers.NewStatsHandler(statsService),
		Export:  handlers.NewExportHandler(statsService, exportService),
		Insight: handlers.NewInsightHandler(statsService, insightService),
		Dataset: handlers.NewDatasetHandler(statsService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("❌ Shutdown failed")
		}
	}()

	log.Info().Msgf("🌐 API running at :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("❌ Server stopped")
	}
}
