package services

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuery is returned when a lookup is called with a missing
// category or non-positive/non-finite dimensions.
var ErrInvalidQuery = errors.New("invalid lookup query")

// LookupFilter narrows the price table by product identity. Category is
// required; empty fields act as wildcards.
type LookupFilter struct {
	Category string
	System   string
	Code1    string
	Code2    string
}

// LookupPrice finds the price record whose width/height interval contains
// the query point, after normalizing both dimensions to centimeters.
//
// Matching is equality on every non-empty filter field plus inclusive
// containment on both ranges. When several records match (intervals may
// overlap), the lowest-priced one wins; on a price tie the earliest record
// in table insertion order wins. The boolean result is false when no
// record covers the point, which is a normal outcome, not an error.
func LookupPrice(records []PriceRecord, filter LookupFilter, width, height float64, widthUnit, heightUnit Unit) (PriceRecord, bool, error) {
	if filter.Category == "" {
		return PriceRecord{}, false, fmt.Errorf("%w: category is required", ErrInvalidQuery)
	}
	if !isPositiveFinite(width) || !isPositiveFinite(height) {
		return PriceRecord{}, false, fmt.Errorf("%w: dimensions must be positive finite numbers", ErrInvalidQuery)
	}

	widthCm, err := ToCentimeters(width, widthUnit)
	if err != nil {
		return PriceRecord{}, false, err
	}
	heightCm, err := ToCentimeters(height, heightUnit)
	if err != nil {
		return PriceRecord{}, false, err
	}

	var best PriceRecord
	found := false
	for _, r := range records {
		if !matchesFilter(r, filter) {
			continue
		}
		if widthCm < r.WidthMin || widthCm > r.WidthMax {
			continue
		}
		if heightCm < r.HeightMin || heightCm > r.HeightMax {
			continue
		}
		if !found || r.Price < best.Price {
			best = r
			found = true
		}
	}
	return best, found, nil
}

// MatchCode2 resolves the code2 paired with a code1 under the given
// category/system, so the caller can auto-fill it. code2 is conventionally
// one-to-one with code1 but the table does not enforce that; the first
// matching record in insertion order decides.
func MatchCode2(records []PriceRecord, category, system, code1 string) (string, bool) {
	if category == "" || code1 == "" {
		return "", false
	}
	for _, r := range records {
		if r.Category != category || r.Code1 != code1 {
			continue
		}
		if system != "" && r.System != system {
			continue
		}
		return r.Code2, true
	}
	return "", false
}

func matchesFilter(r PriceRecord, f LookupFilter) bool {
	if r.Category != f.Category {
		return false
	}
	if f.System != "" && r.System != f.System {
		return false
	}
	if f.Code1 != "" && r.Code1 != f.Code1 {
		return false
	}
	if f.Code2 != "" && r.Code2 != f.Code2 {
		return false
	}
	return true
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
