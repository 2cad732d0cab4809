package utils

import "strings"

// NutrientMetric describes how one nutrient is scored. Benchmarks100g
// is a strictly ascending list of per-100g thresholds bounding the rate
// buckets; Rates has one more entry than Benchmarks100g because the top
// bucket is open-ended. Rate 0 is best. Reverse-scored metrics
// (proteins, fiber) list descending rate values so that more of the
// nutrient rates better.
type NutrientMetric struct {
	NameKey        string
	Name           string
	Benchmarks100g []float64
	BenchmarksUnit string
	Rates          []int
}

// MaxRate returns the worst rate level this metric can assign.
func (m *NutrientMetric) MaxRate() int {
	max := 0
	for _, r := range m.Rates {
		if r > max {
			max = r
		}
	}
	return max
}

// Benchmark thresholds follow the UK FSA front-of-pack bands where they
// exist (sugars, fat, saturated fat, salt), with sodium kept as its own
// metric: salt benchmarks are sodium ones scaled by 2.5, the two are
// never converted into each other. The additives pseudo-metric buckets
// a count (0, 1-2, 3-5, 6+) and carries no unit, so conversion is
// skipped for it.
var nutrientMetrics = []NutrientMetric{
	{
		NameKey:        "energy",
		Name:           "Calories",
		Benchmarks100g: []float64{150, 250, 400, 560},
		BenchmarksUnit: "kcal",
		Rates:          []int{0, 1, 2, 3, 4},
	},
	{
		NameKey:        "energy-kcal",
		Name:           "Calories",
		Benchmarks100g: []float64{150, 250, 400, 560},
		BenchmarksUnit: "kcal",
		Rates:          []int{0, 1, 2, 3, 4},
	},
	{
		NameKey:        "sugars",
		Name:           "Sugar",
		Benchmarks100g: []float64{5, 10, 22.5},
		BenchmarksUnit: "g",
		Rates:          []int{0, 1, 2, 3},
	},
	{
		NameKey:        "fat",
		Name:           "Fat",
		Benchmarks100g: []float64{3, 10, 17.5},
		BenchmarksUnit: "g",
		Rates:          []int{0, 1, 2, 3},
	},
	{
		NameKey:        "saturated-fat",
		Name:           "Saturated fat",
		Benchmarks100g: []float64{1.5, 5, 10},
		BenchmarksUnit: "g",
		Rates:          []int{0, 1, 2, 3},
	},
	{
		NameKey:        "carbohydrates",
		Name:           "Carbohydrates",
		Benchmarks100g: []float64{15, 30, 55},
		BenchmarksUnit: "g",
		Rates:          []int{0, 1, 2, 3},
	},
	{
		NameKey:        "sodium",
		Name:           "Sodium",
		Benchmarks100g: []float64{0.12, 0.6, 0.92},
		BenchmarksUnit: "g",
		Rates:          []int{0, 1, 2, 3},
	},
	{
		NameKey:        "salt",
		Name:           "Salt",
		Benchmarks100g: []float64{0.3, 1.5, 2.3},
		BenchmarksUnit: "g",
		Rates:          []int{0, 1, 2, 3},
	},
	{
		NameKey:        "proteins",
		Name:           "Protein",
		Benchmarks100g: []float64{2.5, 5, 8},
		BenchmarksUnit: "g",
		Rates:          []int{3, 2, 1, 0},
	},
	{
		NameKey:        "fiber",
		Name:           "Fiber",
		Benchmarks100g: []float64{1.5, 3, 6},
		BenchmarksUnit: "g",
		Rates:          []int{3, 2, 1, 0},
	},
	{
		NameKey:        "additives",
		Name:           "Additives",
		Benchmarks100g: []float64{1, 3, 6},
		BenchmarksUnit: "",
		Rates:          []int{0, 1, 2, 3},
	},
}

// GetMetric looks up the metric for a nutrient name key. Matching is
// case-insensitive because source keys come from third-party payloads.
// Returns nil for nutrients this system does not score.
func GetMetric(nameKey string) *NutrientMetric {
	key := strings.ToLower(strings.TrimSpace(nameKey))
	for i := range nutrientMetrics {
		if nutrientMetrics[i].NameKey == key {
			return &nutrientMetrics[i]
		}
	}
	return nil
}
