package harvest

import (
	"fmt"
	"sort"
)

// YearCoverage describes which planting years a set of rows spans
type YearCoverage struct {
	Years []int // distinct, ascending
	Gaps  []int // years strictly inside [min, max] with no row
}

// CoverageOf collects planting-year coverage. Rows without a planting
// year are ignored, not counted as gaps.
func CoverageOf(rows []Record) YearCoverage {
	seen := make(map[int]struct{})
	for _, r := range rows {
		if r.PlantingYear != nil {
			seen[*r.PlantingYear] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	gaps := []int{}
	if len(years) > 1 {
		for y := years[0] + 1; y < years[len(years)-1]; y++ {
			if _, ok := seen[y]; !ok {
				gaps = append(gaps, y)
			}
		}
	}

	return YearCoverage{Years: years, Gaps: gaps}
}

// Available reports whether any planting year was observed
func (c YearCoverage) Available() bool {
	return len(c.Years) > 0
}

// Min returns the first covered year, or nil
func (c YearCoverage) Min() *int {
	if !c.Available() {
		return nil
	}
	return Year(c.Years[0])
}

// Max returns the last covered year, or nil
func (c YearCoverage) Max() *int {
	if !c.Available() {
		return nil
	}
	return Year(c.Years[len(c.Years)-1])
}

// Label renders the covered range, e.g. "2018 to 2020"
func (c YearCoverage) Label() string {
	if !c.Available() {
		return "Not available"
	}
	return fmt.Sprintf("%d to %d", c.Years[0], c.Years[len(c.Years)-1])
}
