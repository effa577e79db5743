package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/insight"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
)

type InsightHandler struct {
	statsService   *services.StatsService
	insightService *insight.Service
}

func NewInsightHandler(statsService *services.StatsService, insightService *insight.Service) *InsightHandler {
	return &InsightHandler{
		statsService:   statsService,
		insightService: insightService,
	}
}

// GetInsight godoc
// @Summary Narrative of a selection
// @Description Short LLM-written description of the selection's summary
// @Tags Insight
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Success 200 {object} insight.Narrative
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/insight [get]
func (h *InsightHandler) GetInsight(c *fiber.Ctx) error {
	if !h.insightService.Enabled() {
		return respondError(c, insight.ErrDisabled)
	}

	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.statsService.Summary(sel)
	if err != nil {
		return respondError(c, err)
	}

	narrative, err := h.insightService.Narrate(c.UserContext(), summary)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(narrative)
}
