package utils

import (
	"errors"
	"log"
	"math"
	"strings"
)

// ErrNoRateableNutrients means a product yielded zero classifiable
// nutrients. Such products must be rejected at ingestion, not persisted
// with a fake score.
var ErrNoRateableNutrients = errors.New("product has no rateable nutrients")

// Nutrient is the in-flight nutrient between normalization and
// persistence. For the "additives" pseudo-nutrient, UnitName carries
// the space-joined additive codes and Amount their count.
type Nutrient struct {
	Name     string
	Amount   float64
	UnitName string
	Rate     int
}

// GetRateIndex walks the ascending benchmark list and returns the index
// of the first benchmark the amount is strictly less than; an amount on
// a boundary falls into the higher (worse) bucket. Amounts above every
// benchmark land in the open-ended top bucket, the last index of
// metric.Rates.
func GetRateIndex(amount float64, metric *NutrientMetric) int {
	for i, benchmark := range metric.Benchmarks100g {
		if amount < benchmark {
			return i
		}
	}
	return len(metric.Rates) - 1
}

// SplitAdditiveCodes is the one canonical way to recover the additive
// code list from its stored space-joined form. Both the normalizer and
// the rater go through it so their counts always agree.
func SplitAdditiveCodes(joined string) []string {
	return strings.Fields(joined)
}

// GetAdditivesAmount derives the additive count from the code list.
func GetAdditivesAmount(codes []string) float64 {
	return float64(len(codes))
}

// VerifyNutrient returns the metric for a nutrient, or nil if the
// nutrient is not one this system scores.
func VerifyNutrient(n *Nutrient) *NutrientMetric {
	return GetMetric(n.Name)
}

// RateNutrients applies the per-nutrient pipeline and computes the
// overall product score.
//
// Per nutrient: unknown metric means the nutrient is skipped entirely;
// the additives count is re-derived from its code list; the amount is
// converted to the metric's benchmark unit (a failed conversion skips
// that nutrient, it is not fatal); the converted amount is classified
// into a rate level. Only nutrients surviving all steps count toward
// the score.
//
// The overall score grows with the proportion and severity of bad
// nutrients: 100 * sum(rate) / sum(worst possible rate), rounded.
func RateNutrients(nutrients []Nutrient) ([]Nutrient, int, error) {
	rated := make([]Nutrient, 0, len(nutrients))
	rateSum := 0
	maxSum := 0

	for _, nutrient := range nutrients {
		metric := VerifyNutrient(&nutrient)
		if metric == nil {
			continue
		}

		if nutrient.Name == "additives" {
			nutrient.Amount = GetAdditivesAmount(SplitAdditiveCodes(nutrient.UnitName))
		}

		amount, err := ConvertMetric(nutrient.Amount, nutrient.UnitName, metric.BenchmarksUnit)
		if err != nil {
			log.Printf("skipping nutrient %q: %v", nutrient.Name, err)
			continue
		}
		nutrient.Amount = amount
		if metric.BenchmarksUnit != "" {
			nutrient.UnitName = metric.BenchmarksUnit
		}

		nutrient.Rate = metric.Rates[GetRateIndex(nutrient.Amount, metric)]

		rated = append(rated, nutrient)
		rateSum += nutrient.Rate
		maxSum += metric.MaxRate()
	}

	if len(rated) == 0 || maxSum == 0 {
		return nil, 0, ErrNoRateableNutrients
	}

	score := int(math.Round(100 * float64(rateSum) / float64(maxSum)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return rated, score, nil
}
