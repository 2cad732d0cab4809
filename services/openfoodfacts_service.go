package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/utils"
)

const defaultOpenFoodFactsURL = "https://world.openfoodfacts.org"

type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFoodFactsService initializes the client; OFF_BASE_URL overrides
// the production endpoint (used by tests).
func NewOpenFoodFactsService() *OpenFoodFactsService {
	baseURL := strings.TrimRight(os.Getenv("OFF_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultOpenFoodFactsURL
	}
	return &OpenFoodFactsService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NutritionFacts is a provider payload normalized into the canonical
// nutrient list, ready for rating.
type NutritionFacts struct {
	ID          string
	Image       string
	Name        string
	BrandOwner  string
	BrandName   string
	Ingredients string
	ServingSize float64
	ServingUnit string
	Additives   []string
	Nutrients   []utils.Nutrient
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ID              string         `json:"_id"`
	Code            string         `json:"code"`
	ProductName     string         `json:"product_name"`
	ImageURL        string         `json:"image_url"`
	BrandOwner      string         `json:"brand_owner"`
	Brands          string         `json:"brands"`
	IngredientsText string         `json:"ingredients_text"`
	ServingSize     string         `json:"serving_size"`
	AdditivesTags   []string       `json:"additives_tags"`
	Nutriments      map[string]any `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// FetchProduct looks a barcode up on the product endpoint. A status of 0
// means the provider does not know the barcode (ErrProductNotFound).
func (s *OpenFoodFactsService) FetchProduct(barcode string) (*NutritionFacts, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, barcode)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenFoodFacts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenFoodFacts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse OpenFoodFacts JSON: %w", err)
	}
	if parsed.Status == 0 || parsed.Product.ProductName == "" {
		return nil, ErrProductNotFound
	}

	return normalizeOpenFoodFacts(parsed.Product), nil
}

// SearchProducts runs a free-text search and returns the raw provider
// entries; the alternative finder scores them itself.
func (s *OpenFoodFactsService) SearchProducts(query string, pageSize int) ([]offProduct, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		s.baseURL, url.QueryEscape(query), pageSize,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenFoodFacts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenFoodFacts search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts search API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse OpenFoodFacts search JSON: %w", err)
	}
	return parsed.Products, nil
}

var (
	parenPattern   = regexp.MustCompile(`\((.*)\)`)
	servingPattern = regexp.MustCompile(`(\d+(\.\d+)?)\s*([a-zA-Z]+)`)
	underscore     = regexp.MustCompile(`_`)
	titleCaser     = cases.Title(language.English)
)

// parseServingSize parses serving strings like "1 oz (28 g)", "123 lb"
// or "3.432mg". When a parenthesized metric form is present it wins.
// No numeric match yields (0, "").
func parseServingSize(servingSize string) (float64, string) {
	if m := parenPattern.FindStringSubmatch(servingSize); m != nil {
		servingSize = m[1]
	}
	m := servingPattern.FindStringSubmatch(servingSize)
	if m == nil {
		return 0, ""
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ""
	}
	return value, m[3]
}

// normalizeOpenFoodFacts maps the provider payload into the canonical
// nutrient list.
//
// Nutriment keys without an underscore are nutrients; underscore-
// suffixed keys (sugars_unit, sugars_100g, ...) are metadata siblings.
// The per-100g sibling is accepted too and preferred over the bare key,
// since benchmarks are per 100g. Additive tags of the form "en:e330"
// become one extra pseudo-nutrient whose amount is the code count and
// whose unit field stores the space-joined code list.
func normalizeOpenFoodFacts(p offProduct) *NutritionFacts {
	additives := extractAdditiveCodes(p.AdditivesTags)

	servingSize, servingUnit := parseServingSize(p.ServingSize)

	facts := &NutritionFacts{
		ID:          p.ID,
		Image:       p.ImageURL,
		Name:        p.ProductName,
		BrandOwner:  p.BrandOwner,
		BrandName:   p.Brands,
		Ingredients: p.IngredientsText,
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		Additives:   additives,
	}
	if facts.Image == "" {
		facts.Image = "/no-image.webp"
	}

	picked := make(map[string]bool)

	// per-100g keys first so they win over the bare siblings
	for key, raw := range p.Nutriments {
		base, ok := strings.CutSuffix(key, "_100g")
		if !ok || underscore.MatchString(base) {
			continue
		}
		amount, ok := parseFloatAny(raw)
		if !ok {
			continue
		}
		// unit siblings appear both as "<base>_unit" and "<base>_100g_unit"
		unit := stringValue(p.Nutriments[base+"_unit"])
		if unit == "" {
			unit = stringValue(p.Nutriments[key+"_unit"])
		}
		facts.Nutrients = append(facts.Nutrients, utils.Nutrient{
			Name:     base,
			Amount:   amount,
			UnitName: unit,
		})
		picked[base] = true
	}

	for key, raw := range p.Nutriments {
		if underscore.MatchString(key) || picked[key] {
			continue
		}
		amount, ok := parseFloatAny(raw)
		if !ok {
			continue
		}
		facts.Nutrients = append(facts.Nutrients, utils.Nutrient{
			Name:     key,
			Amount:   amount,
			UnitName: stringValue(p.Nutriments[key+"_unit"]),
		})
	}

	if p.AdditivesTags != nil {
		facts.Nutrients = append(facts.Nutrients, utils.Nutrient{
			Name:     "additives",
			Amount:   utils.GetAdditivesAmount(additives),
			UnitName: strings.Join(additives, " "),
		})
	}

	return facts
}

// extractAdditiveCodes turns tags like "en:e330" into "E330".
func extractAdditiveCodes(tags []string) []string {
	codes := make([]string, 0, len(tags))
	for _, tag := range tags {
		if code, ok := strings.CutPrefix(tag, "en:"); ok {
			codes = append(codes, strings.ToUpper(code))
		}
	}
	return codes
}

// NutrientDisplayName formats a provider key for display
// ("saturated-fat" -> "Saturated Fat").
func NutrientDisplayName(nameKey string) string {
	return titleCaser.String(strings.ReplaceAll(nameKey, "-", " "))
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
