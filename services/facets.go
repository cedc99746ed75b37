package services

import "sort"

// Facet enumeration derives the selectable product attributes from the
// price table itself: there is no separate catalog, so pickers only ever
// offer combinations that have at least one price row.

// Categories returns the distinct categories present in the table, sorted.
func Categories(records []PriceRecord) []string {
	return distinctSorted(records, func(r PriceRecord) (string, bool) {
		return r.Category, r.Category != ""
	})
}

// Systems returns the distinct non-blank systems under a category, sorted.
// Records with a blank system still participate in lookups; they are only
// excluded from the picker list.
func Systems(records []PriceRecord, category string) []string {
	return distinctSorted(records, func(r PriceRecord) (string, bool) {
		return r.System, r.Category == category && r.System != ""
	})
}

// Codes1 returns the distinct non-blank code1 values under a
// category/system pair, sorted.
func Codes1(records []PriceRecord, category, system string) []string {
	return distinctSorted(records, func(r PriceRecord) (string, bool) {
		return r.Code1, r.Category == category && r.System == system && r.Code1 != ""
	})
}

// Codes2 returns the distinct non-blank code2 values under a
// category/system/code1 triple, sorted.
func Codes2(records []PriceRecord, category, system, code1 string) []string {
	return distinctSorted(records, func(r PriceRecord) (string, bool) {
		return r.Code2, r.Category == category && r.System == system && r.Code1 == code1 && r.Code2 != ""
	})
}

func distinctSorted(records []PriceRecord, pick func(PriceRecord) (string, bool)) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		v, ok := pick(r)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
