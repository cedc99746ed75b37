// Package services provides the pricing, lookup, import and quotation
// logic for the curtain/blinds quotation tool.
package services

import (
	"errors"
	"fmt"
)

// Unit is a linear measurement unit accepted on dimension input.
type Unit string

const (
	UnitCentimeter Unit = "cm"
	UnitMillimeter Unit = "mm"
	UnitInch       Unit = "in"
	UnitMeter      Unit = "m"
)

// ErrInvalidUnit is returned for unit tags outside the accepted set.
// Unknown units fail loudly instead of being treated as centimeters;
// a silent fallback would produce wrong prices.
var ErrInvalidUnit = errors.New("invalid unit")

// UnitOptions lists the units offered to dimension pickers.
var UnitOptions = []Unit{UnitCentimeter, UnitMillimeter, UnitInch, UnitMeter}

// ToCentimeters converts value from the given unit to centimeters.
func ToCentimeters(value float64, unit Unit) (float64, error) {
	switch unit {
	case UnitCentimeter:
		return value, nil
	case UnitMillimeter:
		return value / 10, nil
	case UnitInch:
		return value * 2.54, nil
	case UnitMeter:
		return value * 100, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, string(unit))
	}
}
