package analytics

import "fmt"

// Metric selects which measure a chart plots
type Metric string

const (
	MetricProduction Metric = "production"
	MetricArea       Metric = "area"
	MetricYield      Metric = "yield"
)

// ParseMetric validates a metric name; empty means yield, as in the explorer
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "":
		return MetricYield, nil
	case MetricProduction, MetricArea, MetricYield:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unknown metric %q (use production, area, or yield)", s)
	}
}

// Unit is the display unit of the metric
func (m Metric) Unit() string {
	switch m {
	case MetricProduction:
		return "t"
	case MetricArea:
		return "ha"
	default:
		return "t/ha"
	}
}

// Title is the axis label of the metric
func (m Metric) Title() string {
	switch m {
	case MetricProduction:
		return "Production (t)"
	case MetricArea:
		return "Area Harvested (ha)"
	default:
		return "Yield (t/ha)"
	}
}

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar"
	Title  string        `json:"title,omitempty"`
	Labels []string      `json:"labels"` // X-axis labels
	Data   []ChartSeries `json:"data"`   // Y-axis data series
	Unit   string        `json:"unit,omitempty"`
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string        `json:"name"`   // Series name (e.g., "Total", "Nakuru")
	Values []interface{} `json:"values"` // nil where the series has no point
	Color  string        `json:"color,omitempty"`
}

// PieChartData represents pie chart specific data
type PieChartData struct {
	Type   string    `json:"type"` // "pie" or "donut"
	Title  string    `json:"title,omitempty"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}
