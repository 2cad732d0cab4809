package utils

import (
	"errors"
	"testing"
)

func TestGetRateIndex(t *testing.T) {
	t.Parallel()

	sugars := GetMetric("sugars")
	if sugars == nil {
		t.Fatal("sugars metric missing")
	}

	// benchmarks 5, 10, 22.5: below first, on a boundary, above all
	cases := []struct {
		amount float64
		want   int
	}{
		{0, 0},
		{4.9, 0},
		{5, 1}, // boundary falls into the higher bucket
		{9.99, 1},
		{10, 2},
		{22.5, 3},
		{100, 3},
	}
	for _, tc := range cases {
		if got := GetRateIndex(tc.amount, sugars); got != tc.want {
			t.Errorf("GetRateIndex(%v, sugars) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestGetRateIndexReverseScale(t *testing.T) {
	t.Parallel()

	proteins := GetMetric("proteins")
	if proteins == nil {
		t.Fatal("proteins metric missing")
	}

	// protein is good: more of it means a lower rate
	if rate := proteins.Rates[GetRateIndex(1, proteins)]; rate != 3 {
		t.Errorf("rate for 1 g protein = %d, want 3", rate)
	}
	if rate := proteins.Rates[GetRateIndex(10, proteins)]; rate != 0 {
		t.Errorf("rate for 10 g protein = %d, want 0", rate)
	}
}

func TestRateNutrients(t *testing.T) {
	t.Parallel()

	nutrients := []Nutrient{
		{Name: "sugars", Amount: 30, UnitName: "g"},   // worst bucket, rate 3
		{Name: "proteins", Amount: 10, UnitName: "g"}, // best bucket, rate 0
		{Name: "star-dust", Amount: 1, UnitName: "g"}, // unknown, skipped
	}

	rated, score, err := RateNutrients(nutrients)
	if err != nil {
		t.Fatal(err)
	}
	if len(rated) != 2 {
		t.Fatalf("rated %d nutrients, want 2", len(rated))
	}
	// 100 * (3+0) / (3+3)
	if score != 50 {
		t.Errorf("score = %d, want 50", score)
	}
	if rated[0].Rate != 3 {
		t.Errorf("sugars rate = %d, want 3", rated[0].Rate)
	}
	if rated[1].Rate != 0 {
		t.Errorf("proteins rate = %d, want 0", rated[1].Rate)
	}
}

func TestRateNutrientsConvertsEnergy(t *testing.T) {
	t.Parallel()

	// 1000 kJ is ~239 kcal, which sits in the second energy bucket
	rated, _, err := RateNutrients([]Nutrient{
		{Name: "energy", Amount: 1000, UnitName: "kj"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rated) != 1 {
		t.Fatalf("rated %d nutrients, want 1", len(rated))
	}
	if rated[0].UnitName != "kcal" {
		t.Errorf("unit after conversion = %q, want kcal", rated[0].UnitName)
	}
	if rated[0].Rate != 1 {
		t.Errorf("energy rate = %d, want 1", rated[0].Rate)
	}
}

func TestRateNutrientsAdditiveCount(t *testing.T) {
	t.Parallel()

	// the additive amount is re-derived from the stored code list
	rated, _, err := RateNutrients([]Nutrient{
		{Name: "additives", Amount: 99, UnitName: "E330 E150D"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rated[0].Amount != 2 {
		t.Errorf("additives amount = %v, want 2", rated[0].Amount)
	}
	// 2 additives: below the 3 benchmark, rate 1
	if rated[0].Rate != 1 {
		t.Errorf("additives rate = %d, want 1", rated[0].Rate)
	}
}

func TestRateNutrientsSkipsBadUnits(t *testing.T) {
	t.Parallel()

	rated, _, err := RateNutrients([]Nutrient{
		{Name: "sugars", Amount: 3, UnitName: "parsec"}, // unconvertible, skipped
		{Name: "fat", Amount: 2, UnitName: "g"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rated) != 1 || rated[0].Name != "fat" {
		t.Fatalf("rated = %+v, want only fat", rated)
	}
}

func TestRateNutrientsEmpty(t *testing.T) {
	t.Parallel()

	_, _, err := RateNutrients(nil)
	if !errors.Is(err, ErrNoRateableNutrients) {
		t.Errorf("err = %v, want ErrNoRateableNutrients", err)
	}

	_, _, err = RateNutrients([]Nutrient{{Name: "mystery", Amount: 1}})
	if !errors.Is(err, ErrNoRateableNutrients) {
		t.Errorf("err = %v, want ErrNoRateableNutrients", err)
	}
}

func TestRateNutrientsScoreBounds(t *testing.T) {
	t.Parallel()

	// everything in the worst bucket pins the score at 100
	_, score, err := RateNutrients([]Nutrient{
		{Name: "sugars", Amount: 90, UnitName: "g"},
		{Name: "fat", Amount: 90, UnitName: "g"},
		{Name: "salt", Amount: 90, UnitName: "g"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}

	// everything in the best bucket pins it at 0
	_, score, err = RateNutrients([]Nutrient{
		{Name: "sugars", Amount: 0, UnitName: "g"},
		{Name: "fat", Amount: 0, UnitName: "g"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}
