package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/config"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/models"
)

type AlternativeService struct {
	off  *OpenFoodFactsService
	usda *USDAService
}

func NewAlternativeService(off *OpenFoodFactsService, usda *USDAService) *AlternativeService {
	return &AlternativeService{off: off, usda: usda}
}

// AlternativeCandidate is an ephemeral, never-persisted replacement
// suggestion for a scanned product.
type AlternativeCandidate struct {
	ID                  string              `json:"id"`
	Barcode             string              `json:"barcode"`
	Name                string              `json:"name"`
	Image               string              `json:"image"`
	BrandName           string              `json:"brand_name"`
	BrandOwner          string              `json:"brand_owner"`
	Ingredients         string              `json:"ingredients"`
	Rated               int                 `json:"rated"`
	HealthScore         float64             `json:"health_score"` // lower = healthier
	AlternativeType     string              `json:"alternative_type"`
	NutritionComparison NutritionComparison `json:"nutrition_comparison"`
	Source              string              `json:"source"`
}

// NutritionComparison holds candidate-minus-original deltas.
type NutritionComparison struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

type nutritionProfile struct {
	Calories float64
	Protein  float64
	Sugar    float64
	Sodium   float64
}

const (
	alternativeTypeHealthier = "healthier"
	alternativeTypeSimilar   = "similar"
)

// Ordered, most-specific first. Matching any term of a category yields
// that category's search keywords; the scan stops at the first hit.
var primaryCategories = []struct {
	terms    []string
	keywords []string
}{
	{[]string{"biscuit", "biscuits", "cookie", "cookies", "cracker", "crackers"}, []string{"biscuit", "cookie", "cracker"}},
	{[]string{"juice", "drink", "beverage", "soda", "soft drink", "water", "tea", "coffee", "milk"}, []string{"drink", "beverage"}},
	{[]string{"chips", "crisps", "popcorn", "nuts", "trail mix", "chocolate", "candy"}, []string{"snack", "chips"}},
	{[]string{"cereal", "cereals", "granola", "muesli", "oatmeal", "porridge"}, []string{"cereal", "breakfast"}},
	{[]string{"bread", "loaf", "roll", "bun", "bagel", "croissant", "muffin"}, []string{"bread", "bakery"}},
	{[]string{"pasta", "noodle", "noodles", "spaghetti", "rice", "quinoa"}, []string{"pasta", "grain"}},
	{[]string{"cheese", "butter", "cream", "yogurt"}, []string{"dairy", "milk"}},
	{[]string{"meat", "chicken", "beef", "pork", "fish", "salmon", "tuna"}, []string{"protein", "meat"}},
	{[]string{"bar", "bars", "energy bar", "protein bar", "granola bar"}, []string{"bar", "energy"}},
}

// Well-known brand names whose products imply a category even when the
// product name itself carries no category term.
var brandKeywords = []struct {
	brand    string
	keywords []string
}{
	{"parle", []string{"biscuit", "cookie"}},
	{"oreo", []string{"cookie", "biscuit"}},
	{"britannia", []string{"biscuit", "cookie"}},
	{"monaco", []string{"cracker", "biscuit"}},
	{"good day", []string{"biscuit", "cookie"}},
	{"hide & seek", []string{"cookie", "biscuit"}},
	{"coca-cola", []string{"cola", "soft drink"}},
	{"pepsi", []string{"cola", "soft drink"}},
	{"sprite", []string{"lemon soda", "soft drink"}},
	{"fanta", []string{"orange soda", "soft drink"}},
	{"lays", []string{"chips", "snack"}},
	{"kurkure", []string{"snack", "chips"}},
	{"maggi", []string{"noodles", "instant noodles"}},
}

// ExtractCategoryKeywords derives up to three search keywords from a
// product name: first by category term, then by known brand, finally
// falling back to the longest word of the name.
func ExtractCategoryKeywords(productName string) []string {
	lowerName := strings.ToLower(productName)
	var keywords []string

	for _, category := range primaryCategories {
		for _, term := range category.terms {
			if strings.Contains(lowerName, term) {
				keywords = append(keywords, category.keywords...)
				break
			}
		}
		if len(keywords) > 0 {
			break
		}
	}

	if len(keywords) == 0 {
		for _, b := range brandKeywords {
			if strings.Contains(lowerName, b.brand) {
				keywords = append(keywords, b.keywords...)
				break
			}
		}
	}

	if len(keywords) == 0 {
		longest := ""
		for _, word := range strings.Fields(productName) {
			if len(word) > 3 && len(word) > len(longest) {
				longest = word
			}
		}
		if longest != "" {
			keywords = append(keywords, strings.ToLower(longest))
		}
	}

	keywords = dedupeStrings(keywords)
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	return keywords
}

// broaderCategoryKeywords maps specific keywords to umbrella terms for
// the widened retry pass.
func broaderCategoryKeywords(categoryKeywords []string) []string {
	var broader []string
	for _, keyword := range categoryKeywords {
		k := strings.ToLower(keyword)
		switch {
		case strings.Contains(k, "biscuit") || strings.Contains(k, "cookie"):
			broader = append(broader, "snack", "breakfast", "tea time")
		case strings.Contains(k, "drink") || strings.Contains(k, "beverage"):
			broader = append(broader, "refreshment", "hydration")
		case strings.Contains(k, "chips") || strings.Contains(k, "snack"):
			broader = append(broader, "finger food", "party snack")
		case strings.Contains(k, "chocolate") || strings.Contains(k, "candy"):
			broader = append(broader, "dessert", "sweet treat")
		default:
			broader = append(broader, keyword)
		}
	}
	return dedupeStrings(broader)
}

// assessCandidate computes the weighted health score of a candidate
// against the original product. Lower is healthier; more protein in the
// candidate is rewarded (lowers the score). The weights and bands are
// empirical constants, treat them as configuration.
func assessCandidate(current, candidate nutritionProfile) (healthScore float64, isHealthier, isSimilar bool) {
	if current.Calories > 0 {
		healthScore += (candidate.Calories - current.Calories) * 0.1
		if candidate.Calories < current.Calories*0.9 {
			isHealthier = true
		}
		if math.Abs(candidate.Calories-current.Calories) < current.Calories*0.2 {
			isSimilar = true
		}
	}
	if current.Sugar > 0 {
		healthScore += (candidate.Sugar - current.Sugar) * 0.15
		if candidate.Sugar < current.Sugar*0.9 {
			isHealthier = true
		}
		if math.Abs(candidate.Sugar-current.Sugar) < current.Sugar*0.3 {
			isSimilar = true
		}
	}
	if current.Sodium > 0 {
		healthScore += (candidate.Sodium - current.Sodium) * 0.1
		if candidate.Sodium < current.Sodium*0.9 {
			isHealthier = true
		}
		if math.Abs(candidate.Sodium-current.Sodium) < current.Sodium*0.3 {
			isSimilar = true
		}
	}
	if current.Protein > 0 {
		healthScore += (current.Protein - candidate.Protein) * 0.2
		if candidate.Protein > current.Protein*1.1 {
			isHealthier = true
		}
	}
	return healthScore, isHealthier, isSimilar
}

// classifyCandidate decides inclusion and type. The strict pass only
// admits clearly healthier candidates (score < -0.5); the relaxed pass
// also admits similar ones.
func classifyCandidate(healthScore float64, isSimilar, strictHealthier bool) (include bool, alternativeType string) {
	if healthScore < -0.5 {
		return true, alternativeTypeHealthier
	}
	if !strictHealthier && (isSimilar || math.Abs(healthScore) < 2) {
		return true, alternativeTypeSimilar
	}
	return false, ""
}

// candidateRating synthesizes a 0-100 display rating for an external
// candidate that was never run through the benchmark rater.
func candidateRating(healthScore float64, alternativeType string) int {
	if alternativeType == alternativeTypeHealthier {
		return int(math.Round(math.Max(30, 70+healthScore*10)))
	}
	rating := 60 + (rand.Float64()*20 - 10)
	return int(math.Round(math.Max(40, math.Min(80, rating))))
}

// FindAlternatives suggests up to limit replacement products for a
// stored product. Already-rated local products are consulted first;
// external sources fill the rest: healthier ones first, then similar
// ones, widening the keyword net and finally falling back to USDA when
// nothing turns up. Every external call is best-effort; total failure
// yields an empty list, never an error.
func (s *AlternativeService) FindAlternatives(productID uint, limit int) ([]AlternativeCandidate, error) {
	if limit <= 0 {
		limit = 3
	}

	var product models.Product
	err := config.DB.Preload("Nutrients").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	current := profileFromNutrients(product.Nutrients)
	categoryKeywords := ExtractCategoryKeywords(product.Name)
	log.Printf("finding alternatives for %q, keywords %v", product.Name, categoryKeywords)

	alternatives := s.searchLocalDatabase(&product, current, categoryKeywords)
	log.Printf("found %d local alternatives", len(alternatives))

	if len(alternatives) < limit {
		external := s.fetchFromOpenFoodFacts(categoryKeywords, current, limit, true)
		if len(external) == 0 {
			external = s.fetchFromOpenFoodFacts(categoryKeywords, current, limit, false)
		}
		if len(external) == 0 {
			broader := broaderCategoryKeywords(categoryKeywords)
			log.Printf("no category matches, retrying with broader keywords %v", broader)
			external = s.fetchFromOpenFoodFacts(broader, current, limit, false)
		}
		if len(external) == 0 {
			external = s.fetchFromUSDA(categoryKeywords, current, limit, false)
		}
		alternatives = append(alternatives, external...)
	}

	sortByHealth(alternatives)
	alternatives = diversify(alternatives, limit, false)

	return FilterValidAlternatives(product.Name, alternatives), nil
}

// searchLocalDatabase looks for already-scanned products with a better
// rating whose name matches a category keyword. Local hits carry the
// real stored rating and rank ahead of external fetches.
func (s *AlternativeService) searchLocalDatabase(product *models.Product, current nutritionProfile, categoryKeywords []string) []AlternativeCandidate {
	if len(categoryKeywords) == 0 {
		return nil
	}

	nameMatch := config.DB.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(categoryKeywords[0])+"%")
	for _, keyword := range categoryKeywords[1:] {
		nameMatch = nameMatch.Or("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}

	var products []models.Product
	err := config.DB.
		Preload("Nutrients").
		Where("id <> ? AND rated < ?", product.ID, product.Rated).
		Where(nameMatch).
		Order("rated ASC").
		Limit(10).
		Find(&products).Error
	if err != nil {
		log.Printf("local alternative search failed: %v", err)
		return nil
	}

	alternatives := make([]AlternativeCandidate, 0, len(products))
	for _, alt := range products {
		candidate := profileFromNutrients(alt.Nutrients)
		healthScore, _, _ := assessCandidate(current, candidate)

		alternatives = append(alternatives, AlternativeCandidate{
			ID:              fmt.Sprintf("%d", alt.ID),
			Barcode:         alt.Barcode,
			Name:            alt.Name,
			Image:           alt.Image,
			BrandName:       alt.BrandName,
			BrandOwner:      alt.BrandOwner,
			Ingredients:     alt.Ingredients,
			Rated:           alt.Rated,
			HealthScore:     healthScore,
			AlternativeType: alternativeTypeHealthier,
			NutritionComparison: NutritionComparison{
				Calories: candidate.Calories - current.Calories,
				Protein:  candidate.Protein - current.Protein,
				Sugar:    candidate.Sugar - current.Sugar,
				Sodium:   candidate.Sodium - current.Sodium,
			},
			Source: "database",
		})
	}
	return alternatives
}

// profileFromNutrients extracts the comparison profile from persisted
// nutrient rows by name-key substring.
func profileFromNutrients(nutrients []models.ProductNutrient) nutritionProfile {
	find := func(substrings ...string) float64 {
		for _, n := range nutrients {
			key := strings.ToLower(n.NameKey)
			for _, sub := range substrings {
				if strings.Contains(key, sub) {
					return n.Amount
				}
			}
		}
		return 0
	}
	return nutritionProfile{
		Calories: find("energy", "calorie"),
		Protein:  find("protein"),
		Sugar:    find("sugar"),
		Sodium:   find("sodium"),
	}
}

func (s *AlternativeService) fetchFromOpenFoodFacts(categoryKeywords []string, current nutritionProfile, limit int, strictHealthier bool) []AlternativeCandidate {
	var alternatives []AlternativeCandidate

	for _, keyword := range capKeywords(categoryKeywords, 4) {
		products, err := s.off.SearchProducts(keyword, 20)
		if err != nil {
			log.Printf("openfoodfacts search failed for %q: %v", keyword, err)
			continue
		}

		for _, p := range products {
			if p.ProductName == "" || p.Nutriments == nil {
				continue
			}

			candidate := nutritionProfile{
				Calories: nutrimentValue(p.Nutriments, "energy-kcal_100g", "energy_100g"),
				Protein:  nutrimentValue(p.Nutriments, "proteins_100g"),
				Sugar:    nutrimentValue(p.Nutriments, "sugars_100g"),
				Sodium:   nutrimentValue(p.Nutriments, "sodium_100g"),
			}

			healthScore, _, isSimilar := assessCandidate(current, candidate)
			include, alternativeType := classifyCandidate(healthScore, isSimilar, strictHealthier)
			if !include {
				continue
			}

			id := p.ID
			if id == "" {
				id = p.Code
			}
			if id == "" {
				id = fmt.Sprintf("off_%d", time.Now().UnixNano())
			}
			image := p.ImageURL
			if image == "" {
				image = "/no-image.webp"
			}

			alternatives = append(alternatives, AlternativeCandidate{
				ID:              id,
				Barcode:         p.Code,
				Name:            p.ProductName,
				Image:           image,
				BrandName:       p.Brands,
				BrandOwner:      p.BrandOwner,
				Ingredients:     p.IngredientsText,
				Rated:           candidateRating(healthScore, alternativeType),
				HealthScore:     healthScore,
				AlternativeType: alternativeType,
				NutritionComparison: NutritionComparison{
					Calories: candidate.Calories - current.Calories,
					Protein:  candidate.Protein - current.Protein,
					Sugar:    candidate.Sugar - current.Sugar,
					Sodium:   candidate.Sodium - current.Sodium,
				},
				Source: "OpenFoodFacts",
			})
		}
	}

	sortByHealth(alternatives)
	return diversify(alternatives, limit, false)
}

func (s *AlternativeService) fetchFromUSDA(categoryKeywords []string, current nutritionProfile, limit int, strictHealthier bool) []AlternativeCandidate {
	var alternatives []AlternativeCandidate

	for _, keyword := range capKeywords(categoryKeywords, 4) {
		foods, err := s.usda.SearchFoods(keyword, 20)
		if err != nil {
			log.Printf("USDA search failed for %q: %v", keyword, err)
			continue
		}

		for _, food := range foods {
			if food.Description == "" || len(food.FoodNutrients) == 0 {
				continue
			}

			candidate := food.profile()
			healthScore, _, isSimilar := assessCandidate(current, candidate)
			include, alternativeType := classifyCandidate(healthScore, isSimilar, strictHealthier)
			if !include {
				continue
			}

			brandOwner := food.BrandOwner
			if brandOwner == "" {
				brandOwner = food.BrandName
			}
			brandName := food.BrandName
			if brandName == "" {
				brandName = food.MarketCountry
			}

			alternatives = append(alternatives, AlternativeCandidate{
				ID:              fmt.Sprintf("%d", food.FDCID),
				Barcode:         "", // USDA has no barcodes
				Name:            food.Description,
				Image:           "/no-image.webp",
				BrandName:       brandName,
				BrandOwner:      brandOwner,
				Ingredients:     food.Ingredients,
				Rated:           candidateRating(healthScore, alternativeType),
				HealthScore:     healthScore,
				AlternativeType: alternativeType,
				NutritionComparison: NutritionComparison{
					Calories: candidate.Calories - current.Calories,
					Protein:  candidate.Protein - current.Protein,
					Sugar:    candidate.Sugar - current.Sugar,
					Sodium:   candidate.Sodium - current.Sodium,
				},
				Source: "USDA",
			})
		}
	}

	sortByHealth(alternatives)
	// USDA entries frequently lack brands, so brand diversity is relaxed
	return diversify(alternatives, limit, true)
}

// sortByHealth orders healthier candidates before similar ones, then by
// ascending health score. Stable so equal candidates keep fetch order.
func sortByHealth(alternatives []AlternativeCandidate) {
	sort.SliceStable(alternatives, func(i, j int) bool {
		a, b := alternatives[i], alternatives[j]
		if a.AlternativeType != b.AlternativeType {
			return a.AlternativeType == alternativeTypeHealthier
		}
		return a.HealthScore < b.HealthScore
	})
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// diversify drops exact duplicate names and limits brand repetition:
// after the first two picks every further candidate must introduce a
// brand not seen yet. In lenient mode (USDA) unbranded entries always
// pass and brand repeats are allowed while fewer than limit/2 picks
// exist, with near-duplicate descriptions also dropped.
func diversify(alternatives []AlternativeCandidate, limit int, lenientBrands bool) []AlternativeCandidate {
	diverse := make([]AlternativeCandidate, 0, limit)
	seenBrands := make(map[string]bool)
	seenNames := make(map[string]bool)
	seenDescriptions := make(map[string]bool)

	for _, alt := range alternatives {
		brand := strings.ToLower(alt.BrandName)
		if brand == "" {
			brand = strings.ToLower(alt.BrandOwner)
		}
		name := strings.ToLower(alt.Name)

		if seenNames[name] {
			continue
		}

		if lenientBrands {
			simplified := simplifyDescription(name)
			if seenDescriptions[simplified] {
				continue
			}
			allowBrandDuplication := len(diverse) < limit/2
			if !allowBrandDuplication && seenBrands[brand] && brand != "" {
				continue
			}
			diverse = append(diverse, alt)
			if brand != "" {
				seenBrands[brand] = true
			}
			seenNames[name] = true
			seenDescriptions[simplified] = true
		} else {
			if len(diverse) >= 2 && seenBrands[brand] {
				continue
			}
			diverse = append(diverse, alt)
			seenBrands[brand] = true
			seenNames[name] = true
		}

		if len(diverse) >= limit {
			break
		}
	}
	return diverse
}

// simplifyDescription reduces a product name to its first three
// significant words for near-duplicate detection.
func simplifyDescription(name string) string {
	cleaned := nonAlphanumeric.ReplaceAllString(name, "")
	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 2 {
			words = append(words, word)
		}
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// isValidAlternative requires the two names to share at least one
// category keyword (substring match in either direction).
func isValidAlternative(originalName, alternativeName string) bool {
	originalCategories := ExtractCategoryKeywords(originalName)
	alternativeCategories := ExtractCategoryKeywords(alternativeName)

	for _, orig := range originalCategories {
		for _, alt := range alternativeCategories {
			o, a := strings.ToLower(orig), strings.ToLower(alt)
			if strings.Contains(o, a) || strings.Contains(a, o) {
				return true
			}
		}
	}
	return false
}

// FilterValidAlternatives rejects candidates whose name is empty, whose
// category keywords share nothing with the original's, or whose name
// shares more than 70% of the original's tokens (a near-duplicate, not
// a genuine alternative).
func FilterValidAlternatives(originalName string, alternatives []AlternativeCandidate) []AlternativeCandidate {
	filtered := make([]AlternativeCandidate, 0, len(alternatives))
	originalWords := strings.Fields(strings.ToLower(originalName))

	for _, alt := range alternatives {
		if strings.TrimSpace(alt.Name) == "" {
			continue
		}
		if !isValidAlternative(originalName, alt.Name) {
			continue
		}

		altWords := make(map[string]bool)
		for _, word := range strings.Fields(strings.ToLower(alt.Name)) {
			altWords[word] = true
		}
		common := 0
		for _, word := range originalWords {
			if altWords[word] {
				common++
			}
		}
		if float64(common) > float64(len(originalWords))*0.7 {
			continue
		}

		filtered = append(filtered, alt)
	}
	return filtered
}

func capKeywords(keywords []string, max int) []string {
	if len(keywords) > max {
		return keywords[:max]
	}
	return keywords
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func nutrimentValue(nutriments map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := parseFloatAny(nutriments[key]); ok {
			return v
		}
	}
	return 0
}
