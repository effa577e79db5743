package harvest

import "sort"

// Countries lists every country present in records
func Countries(records []Record) []string {
	return distinct(records, func(r Record) string { return r.Country })
}

// Admin1Units lists the first-level units recorded for country
func Admin1Units(records []Record, country string) []string {
	rows := inScope(records, Selection{Country: country})
	return distinct(rows, func(r Record) string { return r.Admin1 })
}

// Admin2Units lists the second-level units recorded under admin1
func Admin2Units(records []Record, country, admin1 string) []string {
	rows := inScope(records, Selection{Country: country, Admin1: admin1})
	return distinct(rows, func(r Record) string { return r.Admin2 })
}

// Crops lists the products recorded inside sel
func Crops(records []Record, sel Selection) []string {
	return distinct(inScope(records, sel), func(r Record) string { return r.Product })
}

// Years lists the planting years recorded inside sel, newest first
func Years(records []Record, sel Selection) []int {
	years := CoverageOf(inScope(records, sel)).Years
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// HasCountry reports whether any record names country
func HasCountry(records []Record, country string) bool {
	for _, r := range records {
		if r.Country == country {
			return true
		}
	}
	return false
}

// HasAdmin1 reports whether any record sits under country/admin1
func HasAdmin1(records []Record, country, admin1 string) bool {
	sel := Selection{Country: country, Admin1: admin1}
	for _, r := range records {
		if sel.Matches(r) {
			return true
		}
	}
	return false
}
