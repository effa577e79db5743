package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// TimeSeriesResponse is the body of /api/crop-timeseries
type TimeSeriesResponse struct {
	Crop   string              `json:"crop_name"`
	Series []harvest.Series    `json:"time_series_data"`
	Chart  analytics.ChartData `json:"chart"`
}

// MapResponse is the body of /api/map
type MapResponse struct {
	Selection harvest.Selection   `json:"selection"`
	UnitLevel string              `json:"unit_level"`
	Crop      string              `json:"crop_name,omitempty"`
	Year      *int                `json:"year,omitempty"`
	Units     []harvest.UnitValue `json:"units"`
}

// CropChartsResponse is the body of /api/charts/crops
type CropChartsResponse struct {
	Chart     analytics.ChartData      `json:"chart"`
	StatCards []analytics.StatCard     `json:"stat_cards"`
	Seasons   []analytics.PieChartData `json:"season_charts"`
}

// GetCountries godoc
// @Summary List countries
// @Description Sorted list of every country in the dataset
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Failure 503 {object} ErrorResponse
// @Router /api/countries [get]
func (h *StatsHandler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.statsService.Countries()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(countries)
}

// GetAdmin1 godoc
// @Summary List admin-1 units
// @Tags Catalog
// @Produce json
// @Param country query string true "Country"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin1 [get]
func (h *StatsHandler) GetAdmin1(c *fiber.Ctx) error {
	units, err := h.statsService.Admin1Units(c.Query("country"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(units)
}

// GetAdmin2 godoc
// @Summary List admin-2 units
// @Tags Catalog
// @Produce json
// @Param country query string true "Country"
// @Param admin_1_name query string true "Admin-1 unit"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin2 [get]
func (h *StatsHandler) GetAdmin2(c *fiber.Ctx) error {
	units, err := h.statsService.Admin2Units(c.Query("country"), c.Query("admin_1_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(units)
}

// GetCrops godoc
// @Summary List crops in scope
// @Tags Catalog
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Router /api/crops [get]
func (h *StatsHandler) GetCrops(c *fiber.Ctx) error {
	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	crops, err := h.statsService.Crops(sel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(crops)
}

// GetYears godoc
// @Summary List planting years in scope, newest first
// @Tags Catalog
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Success 200 {array} int
// @Failure 400 {object} ErrorResponse
// @Router /api/years [get]
func (h *StatsHandler) GetYears(c *fiber.Ctx) error {
	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	years, err := h.statsService.Years(sel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(years)
}

// GetData godoc
// @Summary Summarize a selection
// @Description Totals, per-crop and per-season breakdown for a country, admin-1 or admin-2 unit
// @Tags Statistics
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Success 200 {object} harvest.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/data [get]
func (h *StatsHandler) GetData(c *fiber.Ctx) error {
	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.statsService.Summary(sel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetCropTimeSeries godoc
// @Summary Yearly series for one crop
// @Tags Statistics
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Param crop_name query string true "Crop"
// @Param timeseries_admin_level query int false "0 total, 1 per admin-1, 2 per admin-2" default(0)
// @Param split_by_season query bool false "Split total by season and production system" default(false)
// @Param metric query string false "production, area or yield" default(yield)
// @Success 200 {object} TimeSeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/crop-timeseries [get]
func (h *StatsHandler) GetCropTimeSeries(c *fiber.Ctx) error {
	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	crop := strings.TrimSpace(c.Query("crop_name"))
	if crop == "" {
		return badRequest(c, "crop_name parameter is required")
	}

	tsLevel, err := strconv.Atoi(c.Query("timeseries_admin_level", "0"))
	if err != nil {
		return badRequest(c, "timeseries_admin_level must be an integer (0, 1, or 2)")
	}
	grouping, err := harvest.ParseGrouping(tsLevel, strings.EqualFold(c.Query("split_by_season"), "true"))
	if err != nil {
		return badRequest(c, "%s", err.Error())
	}

	metric, err := analytics.ParseMetric(c.Query("metric"))
	if err != nil {
		return badRequest(c, "%s", err.Error())
	}

	series, err := h.statsService.TimeSeries(sel, crop, grouping)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(TimeSeriesResponse{
		Crop:   crop,
		Series: series,
		Chart:  analytics.SeriesToLineChart(series, metric),
	})
}

// GetMap godoc
// @Summary Choropleth values per child unit
// @Description Admin-1 values under a country, admin-2 values under an admin-1 unit
// @Tags Statistics
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Param crop_name query string false "Crop, empty for all"
// @Param year query int false "Planting year, empty for all"
// @Success 200 {object} MapResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/map [get]
func (h *StatsHandler) GetMap(c *fiber.Ctx) error {
	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	year, err := optionalYear(c)
	if err != nil {
		return respondError(c, err)
	}
	crop := strings.TrimSpace(c.Query("crop_name"))

	units, err := h.statsService.UnitValues(sel, crop, year)
	if err != nil {
		return respondError(c, err)
	}

	unitLevel := harvest.LevelAdmin2
	if sel.Level() == harvest.LevelCountry {
		unitLevel = harvest.LevelAdmin1
	}

	return c.JSON(MapResponse{
		Selection: sel,
		UnitLevel: unitLevel.String(),
		Crop:      crop,
		Year:      year,
		Units:     units,
	})
}

// GetCropCharts godoc
// @Summary Chart payloads for a selection
// @Description Bar chart of crops, stat cards and one season pie per crop
// @Tags Charts
// @Produce json
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Param metric query string false "production, area or yield" default(yield)
// @Success 200 {object} CropChartsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/charts/crops [get]
func (h *StatsHandler) GetCropCharts(c *fiber.Ctx) error {
	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	metric, err := analytics.ParseMetric(c.Query("metric"))
	if err != nil {
		return badRequest(c, "%s", err.Error())
	}

	summary, err := h.statsService.Summary(sel)
	if err != nil {
		return respondError(c, err)
	}

	pies := make([]analytics.PieChartData, 0, len(summary.Crops))
	for _, crop := range summary.Crops {
		pies = append(pies, analytics.SeasonsToPieChart(crop))
	}

	return c.JSON(CropChartsResponse{
		Chart:     analytics.CropsToBarChart(summary, metric),
		StatCards: analytics.SummaryStatCards(summary),
		Seasons:   pies,
	})
}
