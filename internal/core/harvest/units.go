package harvest

// UnitValue is the choropleth value of one administrative unit
type UnitValue struct {
	Unit       string  `json:"unit"`
	Production float64 `json:"production"`
	Area       float64 `json:"area"`
	Yield      float64 `json:"yield"`
}

// AdminUnitValues sums rows per child unit of sel: admin-1 units under a
// country, admin-2 units under an admin-1. An admin-2 selection yields
// the single selected unit. Empty crop and nil year mean "all".
func AdminUnitValues(records []Record, sel Selection, crop string, year *int) []UnitValue {
	var unit func(Record) string
	switch sel.Level() {
	case LevelCountry:
		unit = func(r Record) string { return r.Admin1 }
	default:
		unit = func(r Record) string { return r.Admin2 }
	}

	var rows []Record
	for _, r := range inScope(records, sel) {
		if crop != "" && r.Product != crop {
			continue
		}
		if year != nil && (r.PlantingYear == nil || *r.PlantingYear != *year) {
			continue
		}
		rows = append(rows, r)
	}

	groups := groupBy(rows, unit)
	values := []UnitValue{}
	for _, name := range sortedKeys(groups) {
		if name == "" {
			continue
		}
		production, area := sums(groups[name])
		values = append(values, UnitValue{
			Unit:       name,
			Production: production,
			Area:       area,
			Yield:      yieldOf(production, area),
		})
	}
	return values
}

// RecordFilter is the download filter of the explorer. Zero fields match
// everything.
type RecordFilter struct {
	Countries []string
	Crop      string
	Year      *int
}

// Filter returns the records matching f, preserving input order
func Filter(records []Record, f RecordFilter) []Record {
	countries := make(map[string]struct{}, len(f.Countries))
	for _, c := range f.Countries {
		countries[c] = struct{}{}
	}

	out := []Record{}
	for _, r := range records {
		if len(countries) > 0 {
			if _, ok := countries[r.Country]; !ok {
				continue
			}
		}
		if f.Crop != "" && r.Product != f.Crop {
			continue
		}
		if f.Year != nil && (r.PlantingYear == nil || *r.PlantingYear != *f.Year) {
			continue
		}
		out = append(out, r)
	}
	return out
}
