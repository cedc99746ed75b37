package services

import (
	"errors"
	"math"
	"testing"
)

func TestToCentimeters(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   Unit
		expect float64
	}{
		{"cm identity", 55.8, UnitCentimeter, 55.8},
		{"mm divides by 10", 120, UnitMillimeter, 12},
		{"inch multiplies by 2.54", 1, UnitInch, 2.54},
		{"25.4mm equals one inch", 25.4, UnitMillimeter, 2.54},
		{"meter multiplies by 100", 1.5, UnitMeter, 150},
		{"zero", 0, UnitInch, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCentimeters(tt.value, tt.unit)
			if err != nil {
				t.Fatalf("ToCentimeters(%v, %q) error = %v", tt.value, tt.unit, err)
			}
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("ToCentimeters(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.expect)
			}
		})
	}
}

func TestToCentimeters_InvalidUnit(t *testing.T) {
	for _, unit := range []Unit{"", "ft", "CM", "inch"} {
		_, err := ToCentimeters(10, unit)
		if !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("ToCentimeters(10, %q) error = %v, want ErrInvalidUnit", unit, err)
		}
	}
}
