package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
)

// DatasetStatus describes the snapshot being served
type DatasetStatus struct {
	Version  string    `json:"version"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
	Rows     int       `json:"rows"`
}

func statusOf(snap *dataset.Snapshot) DatasetStatus {
	return DatasetStatus{
		Version:  snap.Version.String(),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt,
		Rows:     len(snap.Records),
	}
}

type DatasetHandler struct {
	statsService *services.StatsService
}

func NewDatasetHandler(statsService *services.StatsService) *DatasetHandler {
	return &DatasetHandler{statsService: statsService}
}

// GetHealth godoc
// @Summary Service health check
// @Description Reports whether a dataset snapshot is being served
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *DatasetHandler) GetHealth(c *fiber.Ctx) error {
	snap, err := h.statsService.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "degraded",
			"service": "hvstat-api",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "hvstat-api",
		"dataset": statusOf(snap),
	})
}

// ReloadDataset godoc
// @Summary Reload the dataset
// @Description Re-reads the configured source and swaps the served snapshot. The old snapshot stays on failure.
// @Tags Dataset
// @Produce json
// @Success 200 {object} DatasetStatus
// @Failure 500 {object} ErrorResponse
// @Router /api/dataset/reload [post]
func (h *DatasetHandler) ReloadDataset(c *fiber.Ctx) error {
	snap, err := h.statsService.Reload(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(statusOf(snap))
}
