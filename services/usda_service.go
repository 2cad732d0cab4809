package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultUSDAURL = "https://api.nal.usda.gov"

type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewUSDAService initializes the FoodData Central client. Without a
// configured key the public DEMO_KEY is used (heavily rate limited but
// functional).
func NewUSDAService() *USDAService {
	apiKey := os.Getenv("USDA_API_KEY")
	if apiKey == "" {
		apiKey = "DEMO_KEY"
	}
	baseURL := strings.TrimRight(os.Getenv("USDA_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultUSDAURL
	}
	return &USDAService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID         int64              `json:"fdcId"`
	Description   string             `json:"description"`
	BrandOwner    string             `json:"brandOwner"`
	BrandName     string             `json:"brandName"`
	MarketCountry string             `json:"marketCountry"`
	Ingredients   string             `json:"ingredients"`
	FoodNutrients []usdaFoodNutrient `json:"foodNutrients"`
}

type usdaFoodNutrient struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	Nutrient     struct {
		Name string `json:"name"`
	} `json:"nutrient"`
	Amount float64 `json:"amount"`
}

// name returns the nutrient name regardless of which of the two USDA
// response shapes (search vs. detail) carried it.
func (n usdaFoodNutrient) name() string {
	if n.NutrientName != "" {
		return n.NutrientName
	}
	return n.Nutrient.Name
}

func (n usdaFoodNutrient) value() float64 {
	if n.Value != 0 {
		return n.Value
	}
	return n.Amount
}

// SearchFoods runs a keyword search over branded and reference foods.
func (s *USDAService) SearchFoods(query string, pageSize int) ([]usdaFood, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	u := fmt.Sprintf(
		"%s/fdc/v1/foods/search?query=%s&api_key=%s&pageSize=%d&dataType=%s",
		s.baseURL,
		url.QueryEscape(query),
		s.apiKey,
		pageSize,
		url.QueryEscape("Branded,Foundation,SR Legacy"),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed usdaSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}
	return parsed.Foods, nil
}

// profile maps USDA nutrient rows onto the calories/protein/sugar/sodium
// comparison profile by name substring.
func (f usdaFood) profile() nutritionProfile {
	var p nutritionProfile
	for _, n := range f.FoodNutrients {
		name := strings.ToLower(n.name())
		amount := n.value()
		switch {
		case strings.Contains(name, "energy") || strings.Contains(name, "calorie"):
			p.Calories = amount
		case strings.Contains(name, "protein"):
			p.Protein = amount
		case strings.Contains(name, "sugar"):
			p.Sugar = amount
		case strings.Contains(name, "sodium"):
			p.Sodium = amount
		}
	}
	return p
}
