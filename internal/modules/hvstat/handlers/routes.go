package handlers

import "github.com/gofiber/fiber/v2"

// Handlers groups everything the API mounts
type Handlers struct {
	Stats   *StatsHandler
	Export  *ExportHandler
	Insight *InsightHandler
	Dataset *DatasetHandler
}

// RegisterRoutes mounts the health check and the /api group on app
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", h.Dataset.GetHealth)

	api := app.Group("/api")

	// Catalog
	api.Get("/countries", h.Stats.GetCountries)
	api.Get("/admin1", h.Stats.GetAdmin1)
	api.Get("/admin2", h.Stats.GetAdmin2)
	api.Get("/crops", h.Stats.GetCrops)
	api.Get("/years", h.Stats.GetYears)

	// Statistics
	api.Get("/data", h.Stats.GetData)
	api.Get("/crop-timeseries", h.Stats.GetCropTimeSeries)
	api.Get("/map", h.Stats.GetMap)
	api.Get("/charts/crops", h.Stats.GetCropCharts)

	// Downloads
	api.Get("/export", h.Export.ExportSummary)
	api.Get("/records.csv", h.Export.ExportRecords)

	api.Get("/insight", h.Insight.GetInsight)

	api.Post("/dataset/reload", h.Dataset.ReloadDataset)
}
