package harvest

import (
	"fmt"
	"sort"
)

// Grouping selects how a crop's rows are split into series
type Grouping int

const (
	GroupTotal Grouping = iota
	GroupAdmin1
	GroupAdmin2
	GroupSeasonSystem
)

// TotalLabel names the single series of GroupTotal
const TotalLabel = "Total"

// ParseGrouping maps the API's timeseries_admin_level / split_by_season
// parameters onto a Grouping.
func ParseGrouping(adminLevel int, splitBySeason bool) (Grouping, error) {
	switch adminLevel {
	case 0:
		if splitBySeason {
			return GroupSeasonSystem, nil
		}
		return GroupTotal, nil
	case 1:
		return GroupAdmin1, nil
	case 2:
		return GroupAdmin2, nil
	default:
		return GroupTotal, fmt.Errorf("timeseries admin level must be 0, 1, or 2, got %d", adminLevel)
	}
}

// Point is one harvest year of a series
type Point struct {
	Year       int     `json:"year"`
	Production float64 `json:"production"`
	Area       float64 `json:"area"`
	Yield      float64 `json:"yield"`
}

// Series is a labelled run of yearly points
type Series struct {
	Label  string  `json:"admin_unit"`
	Points []Point `json:"data"`
}

// CropTimeSeries builds yearly series for crop inside sel, keyed by
// harvest year. It returns false when the crop has no rows in scope.
func CropTimeSeries(records []Record, sel Selection, crop string, grouping Grouping) ([]Series, bool) {
	var rows []Record
	for _, r := range inScope(records, sel) {
		if r.Product == crop {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, false
	}

	var label func(Record) string
	switch grouping {
	case GroupAdmin1:
		label = func(r Record) string { return r.Admin1 }
	case GroupAdmin2:
		label = func(r Record) string { return r.Admin2 }
	case GroupSeasonSystem:
		label = func(r Record) string {
			if r.SeasonName == "" || r.CropProductionSystem == "" {
				return ""
			}
			return r.SeasonName + " - " + r.CropProductionSystem
		}
	default:
		label = func(Record) string { return TotalLabel }
	}

	groups := groupBy(rows, label)
	series := []Series{}
	for _, name := range sortedKeys(groups) {
		if name == "" {
			continue
		}
		points := yearlyPoints(groups[name])
		if len(points) == 0 {
			continue
		}
		series = append(series, Series{Label: name, Points: points})
	}
	return series, true
}

func yearlyPoints(rows []Record) []Point {
	byYear := make(map[int]*Point)
	for _, r := range rows {
		if r.HarvestYear == nil {
			continue
		}
		p, ok := byYear[*r.HarvestYear]
		if !ok {
			p = &Point{Year: *r.HarvestYear}
			byYear[p.Year] = p
		}
		p.Production += r.Production
		p.Area += r.Area
	}

	points := make([]Point, 0, len(byYear))
	for _, p := range byYear {
		p.Yield = yieldOf(p.Production, p.Area)
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}
