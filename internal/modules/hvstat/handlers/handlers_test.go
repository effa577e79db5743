package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/insight"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
)

type fixtureLoader struct {
	err error
}

func (l *fixtureLoader) Name() string { return "fixture" }

func (l *fixtureLoader) Load(context.Context) (*dataset.Table, error) {
	if l.err != nil {
		return nil, l.err
	}
	return &dataset.Table{
		Columns: dataset.Columns,
		Records: []harvest.Record{
			{Country: "Kenya", Admin1: "Rift Valley", Admin2: "Nakuru", Product: "Maize", SeasonName: "Long rains", PlantingYear: harvest.Year(2015), HarvestYear: harvest.Year(2015), Production: 400, Area: 200},
			{Country: "Kenya", Admin1: "Rift Valley", Admin2: "Uasin Gishu", Product: "Maize", SeasonName: "Long rains", PlantingYear: harvest.Year(2017), HarvestYear: harvest.Year(2017), Production: 600, Area: 200},
			{Country: "Kenya", Admin1: "Nyanza", Admin2: "Kisumu", Product: "Sorghum", SeasonName: "Short rains", PlantingYear: harvest.Year(2017), HarvestYear: harvest.Year(2018), Production: 100, Area: 100},
			{Country: "Tanzania", Admin1: "Arusha", Product: "Beans", Production: 50, Area: 25},
		},
	}, nil
}

type echoProvider struct{}

func (echoProvider) GenerateResponse(_ context.Context, _, user string) (string, error) {
	return "narrative for " + strings.SplitN(user, "\n", 2)[0], nil
}

func (echoProvider) GetProviderName() string { return "echo" }

func newTestApp(t *testing.T, loaded bool, insights *insight.Service) *fiber.App {
	t.Helper()

	store := dataset.NewStore(&fixtureLoader{})
	if loaded {
		_, err := store.Reload(context.Background())
		require.NoError(t, err)
	}
	if insights == nil {
		insights = insight.NewServiceWithProvider(nil)
	}

	stats := services.NewStatsService(store)
	app := fiber.New()
	RegisterRoutes(app, Handlers{
		Stats:   NewStatsHandler(stats),
		Export:  NewExportHandler(stats, export.NewService()),
		Insight: NewInsightHandler(stats, insights),
		Dataset: NewDatasetHandler(stats),
	})
	return app
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/api/countries")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `["Kenya","Tanzania"]`, string(body))

	resp, body = get(t, app, "/api/admin1?country=Kenya")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `["Nyanza","Rift Valley"]`, string(body))

	resp, _ = get(t, app, "/api/admin1")
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = get(t, app, "/api/admin1?country=Atlantis")
	assert.Equal(t, 404, resp.StatusCode)

	resp, body = get(t, app, "/api/admin2?country=Kenya&admin_1_name=Rift%20Valley")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `["Nakuru","Uasin Gishu"]`, string(body))

	resp, _ = get(t, app, "/api/admin2?country=Kenya")
	assert.Equal(t, 400, resp.StatusCode)

	resp, body = get(t, app, "/api/crops?country=Kenya&admin_1_name=Nyanza")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `["Sorghum"]`, string(body))

	resp, body = get(t, app, "/api/years?country=Kenya")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[2017,2015]`, string(body))
}

func TestGetData(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/api/data?country=Kenya&admin_level=0")
	require.Equal(t, 200, resp.StatusCode)

	var summary harvest.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, harvest.LevelCountry, summary.Level)
	assert.Equal(t, 1100.0, summary.Totals.TotalProduction)
	assert.Equal(t, "2015 to 2017", summary.Totals.YearsCovered)
	assert.Equal(t, []int{2016}, summary.Totals.YearGaps)
	require.NotNil(t, summary.Totals.Admin1Count)
	assert.Equal(t, 2, *summary.Totals.Admin1Count)
	require.Len(t, summary.Crops, 2)
	require.NotNil(t, summary.Crops[0].PercentageOfCountryTotal)

	// admin_level 0 ignores names
	resp, body = get(t, app, "/api/data?country=Kenya&admin_level=0&admin_1_name=Nyanza")
	require.Equal(t, 200, resp.StatusCode)
	summary = harvest.Summary{}
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 1100.0, summary.Totals.TotalProduction)

	resp, body = get(t, app, "/api/data?country=Kenya&admin_level=1&admin_1_name=Rift%20Valley")
	require.Equal(t, 200, resp.StatusCode)
	summary = harvest.Summary{}
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, harvest.LevelAdmin1, summary.Level)
	require.NotEmpty(t, summary.Crops)
	assert.Nil(t, summary.Crops[0].PercentageOfCountryTotal)
	require.NotNil(t, summary.Totals.Admin2Count)
	assert.Equal(t, 2, *summary.Totals.Admin2Count)
}

func TestGetDataErrors(t *testing.T) {
	app := newTestApp(t, true, nil)

	cases := []struct {
		target string
		status int
	}{
		{"/api/data", 400},
		{"/api/data?country=Kenya&admin_level=x", 400},
		{"/api/data?country=Kenya&admin_level=3", 400},
		{"/api/data?country=Kenya&admin_level=1", 400},
		{"/api/data?country=Kenya&admin_level=2&admin_1_name=Nyanza", 400},
		{"/api/data?country=Kenya&admin_2_name=Kisumu", 400},
		{"/api/data?country=Atlantis", 404},
		{"/api/data?country=Kenya&admin_1_name=Coast", 404},
	}
	for _, tc := range cases {
		resp, body := get(t, app, tc.target)
		assert.Equal(t, tc.status, resp.StatusCode, tc.target)

		var e ErrorResponse
		require.NoError(t, json.Unmarshal(body, &e), tc.target)
		assert.NotEmpty(t, e.Error, tc.target)
	}
}

func TestNotLoadedReturns503(t *testing.T) {
	app := newTestApp(t, false, nil)

	resp, _ := get(t, app, "/api/countries")
	assert.Equal(t, 503, resp.StatusCode)

	resp, _ = get(t, app, "/health")
	assert.Equal(t, 503, resp.StatusCode)
}

func TestCropTimeSeries(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/api/crop-timeseries?country=Kenya&crop_name=Maize&timeseries_admin_level=2&metric=production")
	require.Equal(t, 200, resp.StatusCode)

	var out TimeSeriesResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Maize", out.Crop)
	require.Len(t, out.Series, 2)
	assert.Equal(t, "Nakuru", out.Series[0].Label)
	assert.Equal(t, []string{"2015", "2017"}, out.Chart.Labels)

	resp, _ = get(t, app, "/api/crop-timeseries?country=Kenya")
	assert.Equal(t, 400, resp.StatusCode)
	resp, _ = get(t, app, "/api/crop-timeseries?country=Kenya&crop_name=Maize&timeseries_admin_level=5")
	assert.Equal(t, 400, resp.StatusCode)
	resp, _ = get(t, app, "/api/crop-timeseries?country=Kenya&crop_name=Maize&metric=price")
	assert.Equal(t, 400, resp.StatusCode)
	resp, _ = get(t, app, "/api/crop-timeseries?country=Kenya&crop_name=Rice")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestMapAndCharts(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/api/map?country=Kenya&crop_name=Maize&year=2017")
	require.Equal(t, 200, resp.StatusCode)
	var m MapResponse
	require.NoError(t, json.Unmarshal(body, &m))
	assert.Equal(t, "admin_1", m.UnitLevel)
	require.Len(t, m.Units, 1)
	assert.Equal(t, "Rift Valley", m.Units[0].Unit)
	assert.Equal(t, 600.0, m.Units[0].Production)

	resp, _ = get(t, app, "/api/map?country=Kenya&year=later")
	assert.Equal(t, 400, resp.StatusCode)

	resp, body = get(t, app, "/api/charts/crops?country=Kenya&metric=production")
	require.Equal(t, 200, resp.StatusCode)
	var charts CropChartsResponse
	require.NoError(t, json.Unmarshal(body, &charts))
	assert.Equal(t, []string{"Maize", "Sorghum"}, charts.Chart.Labels)
	assert.Len(t, charts.Seasons, 2)
	assert.NotEmpty(t, charts.StatCards)
}

func TestExportRoutes(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/api/export?country=Kenya&admin_1_name=Rift%20Valley&format=csv")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "hvstat_kenya_rift_valley.csv")
	assert.Contains(t, string(body), "# Crops")

	resp, _ = get(t, app, "/api/export?country=Kenya&format=pdf")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp, _ = get(t, app, "/api/export?country=Kenya&format=docx")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestExportRecords(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/api/records.csv?country=Kenya&country=Tanzania&crop=Maize")
	require.Equal(t, 200, resp.StatusCode)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 3) // header + two maize rows

	resp, body = get(t, app, "/api/records.csv?country=Kenya,Tanzania&year=2017")
	require.Equal(t, 200, resp.StatusCode)
	lines = strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 3)
}

func TestInsight(t *testing.T) {
	app := newTestApp(t, true, nil)
	resp, _ := get(t, app, "/api/insight?country=Kenya")
	assert.Equal(t, 503, resp.StatusCode)

	app = newTestApp(t, true, insight.NewServiceWithProvider(echoProvider{}))
	resp, body := get(t, app, "/api/insight?country=Kenya")
	require.Equal(t, 200, resp.StatusCode)
	var n insight.Narrative
	require.NoError(t, json.Unmarshal(body, &n))
	assert.Equal(t, "echo", n.Provider)
	assert.Equal(t, "narrative for Area: Kenya (country level)", n.Text)
}

func TestHealthAndReload(t *testing.T) {
	app := newTestApp(t, true, nil)

	resp, body := get(t, app, "/health")
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `"rows":4`)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/dataset/reload", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestReloadFailureKeepsSnapshot(t *testing.T) {
	loader := &fixtureLoader{}
	store := dataset.NewStore(loader)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	stats := services.NewStatsService(store)
	app := fiber.New()
	app.Post("/reload", NewDatasetHandler(stats).ReloadDataset)
	app.Get("/countries", NewStatsHandler(stats).GetCountries)

	loader.err = errors.New("disk gone")
	resp, err := app.Test(httptest.NewRequest("POST", "/reload", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/countries", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
