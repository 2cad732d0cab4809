package utils

import (
	"errors"
	"math"
	"testing"
)

func TestConvertMetric(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		amount   float64
		from, to string
		want     float64
	}{
		{"g to g", 12.5, "g", "g", 12.5},
		{"case-insensitive identity", 3, "KG", "kg", 3},
		{"empty target passthrough", 7, "whatever", "", 7},
		{"mg to g", 500, "mg", "g", 0.5},
		{"kg to g", 1.2, "kg", "g", 1200},
		{"g to kg", 250, "g", "kg", 0.25},
		{"oz to g", 1, "oz", "g", 28.349523125},
		{"lb to g", 1, "lb", "g", 453.59237},
		{"mcg to mg", 1000, "mcg", "mg", 1},
		{"kj to kcal", 1000, "kJ", "kcal", 1000 / 4.184},
		{"kcal to kj", 100, "kcal", "kj", 418.4},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ConvertMetric(tc.amount, tc.from, tc.to)
			if err != nil {
				t.Fatalf("ConvertMetric(%v, %q, %q) error: %v", tc.amount, tc.from, tc.to, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ConvertMetric(%v, %q, %q) = %v, want %v", tc.amount, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvertMetricRoundTrip(t *testing.T) {
	t.Parallel()

	grams := 123.456
	kg, err := ConvertMetric(grams, "g", "kg")
	if err != nil {
		t.Fatal(err)
	}
	back, err := ConvertMetric(kg, "kg", "g")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back-grams) > 1e-9 {
		t.Errorf("round trip g->kg->g: got %v, want %v", back, grams)
	}
}

func TestConvertMetricErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to string
	}{
		{"unknown source", "stone", "g"},
		{"unknown target", "g", "furlong"},
		{"mass to energy", "g", "kcal"},
		{"energy to mass", "kcal", "mg"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ConvertMetric(1, tc.from, tc.to)
			if err == nil {
				t.Fatalf("ConvertMetric(1, %q, %q): expected error", tc.from, tc.to)
			}
			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Errorf("error type = %T, want *ConversionError", err)
			}
		})
	}
}
