package utils

import (
	"regexp"
	"strings"
)

// Additive describes a known preservative or food additive that can be
// detected in an ingredients string.
type Additive struct {
	Name           string   `json:"name"`
	Code           string   `json:"code,omitempty"`
	Type           string   `json:"type"` // "preservative" or "additive"
	Description    string   `json:"description"`
	HealthConcerns string   `json:"health_concerns,omitempty"`
	Aliases        []string `json:"-"`
}

var knownAdditives = []Additive{
	// Preservatives
	{
		Name:           "Sodium Benzoate",
		Code:           "E211",
		Type:           "preservative",
		Description:    "Prevents growth of bacteria, yeast, and mold in acidic foods",
		HealthConcerns: "May cause allergic reactions in some individuals; concerns about benzene formation with vitamin C",
		Aliases:        []string{"benzoate of soda"},
	},
	{
		Name:           "Potassium Sorbate",
		Code:           "E202",
		Type:           "preservative",
		Description:    "Prevents mold and yeast growth in foods",
		HealthConcerns: "Generally recognized as safe; may cause mild skin irritation in sensitive individuals",
		Aliases:        []string{"sorbic acid potassium salt"},
	},
	{
		Name:           "Calcium Propionate",
		Code:           "E282",
		Type:           "preservative",
		Description:    "Prevents mold growth in baked goods",
		HealthConcerns: "Generally recognized as safe",
		Aliases:        []string{"propionic acid calcium salt"},
	},
	{
		Name:           "Sodium Nitrite",
		Code:           "E250",
		Type:           "preservative",
		Description:    "Preserves meat products and gives them pink color",
		HealthConcerns: "Can form nitrosamines (potential carcinogens) when heated at high temperatures",
		Aliases:        []string{"nitrite"},
	},
	{
		Name:           "Sodium Nitrate",
		Code:           "E251",
		Type:           "preservative",
		Description:    "Preserves cured meats and prevents botulism",
		HealthConcerns: "Can convert to sodium nitrite; concerns about nitrosamine formation",
		Aliases:        []string{"nitrate"},
	},
	{
		Name:           "Sulfur Dioxide",
		Code:           "E220",
		Type:           "preservative",
		Description:    "Prevents browning and bacterial growth in dried fruits and wine",
		HealthConcerns: "Can trigger asthma attacks in sensitive individuals",
		Aliases:        []string{"sulfites", "sulphites"},
	},
	{
		Name:           "Sorbic Acid",
		Code:           "E200",
		Type:           "preservative",
		Description:    "Inhibits mold and yeast growth",
		HealthConcerns: "Generally recognized as safe",
	},
	{
		Name:           "Benzoic Acid",
		Code:           "E210",
		Type:           "preservative",
		Description:    "Prevents microbial growth in acidic foods",
		HealthConcerns: "May cause allergic reactions; not suitable for people with aspirin sensitivity",
	},
	{
		Name:           "Propionic Acid",
		Code:           "E280",
		Type:           "preservative",
		Description:    "Prevents mold in bread and baked goods",
		HealthConcerns: "Generally recognized as safe",
	},
	{
		Name:           "BHA",
		Code:           "E320",
		Type:           "preservative",
		Description:    "Prevents fats and oils from becoming rancid",
		HealthConcerns: "Possible carcinogen; banned in some countries",
		Aliases:        []string{"butylated hydroxyanisole"},
	},
	{
		Name:           "BHT",
		Code:           "E321",
		Type:           "preservative",
		Description:    "Antioxidant that prevents rancidity in fats",
		HealthConcerns: "Concerns about long-term health effects; some studies suggest hormone disruption",
		Aliases:        []string{"butylated hydroxytoluene"},
	},
	{
		Name:           "TBHQ",
		Code:           "E319",
		Type:           "preservative",
		Description:    "Preservative for vegetable oils and animal fats",
		HealthConcerns: "High doses may cause nausea and vomiting; long-term effects debated",
		Aliases:        []string{"tertiary butylhydroquinone", "tert-butylhydroquinone"},
	},

	// Colors
	{
		Name:           "Tartrazine",
		Code:           "E102",
		Type:           "additive",
		Description:    "Yellow food coloring used in drinks, candies, and snacks",
		HealthConcerns: "May cause hyperactivity in children; allergic reactions in aspirin-sensitive individuals",
		Aliases:        []string{"yellow 5", "fd&c yellow 5"},
	},
	{
		Name:           "Sunset Yellow",
		Code:           "E110",
		Type:           "additive",
		Description:    "Orange-yellow food coloring",
		HealthConcerns: "May cause hyperactivity in children; allergic reactions possible",
		Aliases:        []string{"yellow 6", "fd&c yellow 6"},
	},
	{
		Name:           "Allura Red",
		Code:           "E129",
		Type:           "additive",
		Description:    "Red food coloring used in beverages and candy",
		HealthConcerns: "May cause hyperactivity in children",
		Aliases:        []string{"red 40", "fd&c red 40"},
	},
	{
		Name:           "Carmoisine",
		Code:           "E122",
		Type:           "additive",
		Description:    "Red food coloring",
		HealthConcerns: "Banned in some countries; may cause allergic reactions",
		Aliases:        []string{"azorubine"},
	},
	{
		Name:           "Brilliant Blue",
		Code:           "E133",
		Type:           "additive",
		Description:    "Blue food coloring",
		HealthConcerns: "Generally recognized as safe; rarely causes allergic reactions",
		Aliases:        []string{"blue 1", "fd&c blue 1"},
	},
	{
		Name:           "Caramel Color",
		Code:           "E150",
		Type:           "additive",
		Description:    "Brown coloring used in sodas and sauces",
		HealthConcerns: "Some types may contain 4-MEI, a possible carcinogen",
		Aliases:        []string{"caramel coloring", "caramel colour"},
	},

	// Sweeteners
	{
		Name:           "Aspartame",
		Code:           "E951",
		Type:           "additive",
		Description:    "Artificial sweetener 200x sweeter than sugar",
		HealthConcerns: "Not suitable for people with phenylketonuria; some controversy about safety",
		Aliases:        []string{"nutrasweet", "equal"},
	},
	{
		Name:           "Sucralose",
		Code:           "E955",
		Type:           "additive",
		Description:    "Artificial sweetener 600x sweeter than sugar",
		HealthConcerns: "Generally recognized as safe; some concerns about gut bacteria effects",
		Aliases:        []string{"splenda"},
	},
	{
		Name:           "Acesulfame K",
		Code:           "E950",
		Type:           "additive",
		Description:    "Artificial sweetener often combined with other sweeteners",
		HealthConcerns: "Generally recognized as safe; limited long-term studies",
		Aliases:        []string{"acesulfame potassium", "ace-k"},
	},
	{
		Name:           "Saccharin",
		Code:           "E954",
		Type:           "additive",
		Description:    "One of the oldest artificial sweeteners",
		HealthConcerns: "Previously thought to cause cancer (now considered safe); may have bitter aftertaste",
		Aliases:        []string{"sweet'n low"},
	},

	// Emulsifiers and stabilizers
	{
		Name:           "Mono and Diglycerides",
		Code:           "E471",
		Type:           "additive",
		Description:    "Emulsifiers that help mix oil and water in foods",
		HealthConcerns: "Generally recognized as safe",
		Aliases:        []string{"monoglycerides", "diglycerides"},
	},
	{
		Name:           "Lecithin",
		Code:           "E322",
		Type:           "additive",
		Description:    "Emulsifier derived from soybeans or eggs",
		HealthConcerns: "Generally recognized as safe; may cause allergic reactions in soy-sensitive individuals",
		Aliases:        []string{"soy lecithin", "soya lecithin"},
	},
	{
		Name:           "Carrageenan",
		Code:           "E407",
		Type:           "additive",
		Description:    "Thickener and stabilizer derived from seaweed",
		HealthConcerns: "Some studies suggest digestive issues; degraded form may cause inflammation",
	},
	{
		Name:           "Xanthan Gum",
		Code:           "E415",
		Type:           "additive",
		Description:    "Thickening agent and stabilizer",
		HealthConcerns: "Generally recognized as safe; may cause digestive issues in large amounts",
	},
	{
		Name:           "Guar Gum",
		Code:           "E412",
		Type:           "additive",
		Description:    "Thickener and stabilizer from guar beans",
		HealthConcerns: "Generally recognized as safe; may cause bloating in sensitive individuals",
	},
	{
		Name:           "Polysorbate 80",
		Code:           "E433",
		Type:           "additive",
		Description:    "Emulsifier that helps ingredients blend together",
		HealthConcerns: "Some concerns about effects on gut bacteria; generally recognized as safe",
	},

	// Flavor enhancers
	{
		Name:           "Monosodium Glutamate",
		Code:           "E621",
		Type:           "additive",
		Description:    "Flavor enhancer that provides umami taste",
		HealthConcerns: "Some people report sensitivity (headaches, flushing); generally recognized as safe",
		Aliases:        []string{"msg", "glutamic acid"},
	},
	{
		Name:           "Disodium Inosinate",
		Code:           "E631",
		Type:           "additive",
		Description:    "Flavor enhancer often used with MSG",
		HealthConcerns: "Generally recognized as safe; may cause issues for those with gout",
	},
	{
		Name:           "Disodium Guanylate",
		Code:           "E627",
		Type:           "additive",
		Description:    "Flavor enhancer that boosts umami taste",
		HealthConcerns: "Generally recognized as safe; may cause issues for those with gout",
	},

	// Acidity regulators
	{
		Name:           "Citric Acid",
		Code:           "E330",
		Type:           "additive",
		Description:    "Acidity regulator and flavor enhancer",
		HealthConcerns: "Generally recognized as safe; may erode tooth enamel in high concentrations",
	},
	{
		Name:           "Sodium Citrate",
		Code:           "E331",
		Type:           "additive",
		Description:    "Acidity regulator and emulsifier",
		HealthConcerns: "Generally recognized as safe",
	},
	{
		Name:           "Phosphoric Acid",
		Code:           "E338",
		Type:           "additive",
		Description:    "Acidity regulator common in sodas",
		HealthConcerns: "May contribute to bone density loss when consumed in excess",
	},

	// Anti-caking agents
	{
		Name:           "Silicon Dioxide",
		Code:           "E551",
		Type:           "additive",
		Description:    "Anti-caking agent that prevents clumping",
		HealthConcerns: "Generally recognized as safe",
		Aliases:        []string{"silica"},
	},
	{
		Name:           "Calcium Silicate",
		Code:           "E552",
		Type:           "additive",
		Description:    "Anti-caking agent",
		HealthConcerns: "Generally recognized as safe",
	},

	// Other common additives
	{
		Name:           "Sodium Alginate",
		Code:           "E401",
		Type:           "additive",
		Description:    "Thickener and stabilizer from seaweed",
		HealthConcerns: "Generally recognized as safe",
		Aliases:        []string{"alginate"},
	},
	{
		Name:           "Pectin",
		Code:           "E440",
		Type:           "additive",
		Description:    "Gelling agent used in jams and jellies",
		HealthConcerns: "Generally recognized as safe",
	},
	{
		Name:           "Modified Starch",
		Code:           "E1404",
		Type:           "additive",
		Description:    "Thickener and stabilizer",
		HealthConcerns: "Generally recognized as safe",
		Aliases:        []string{"modified food starch"},
	},
	{
		Name:           "Calcium Chloride",
		Code:           "E509",
		Type:           "additive",
		Description:    "Firming agent and preservative",
		HealthConcerns: "Generally recognized as safe",
	},
	{
		Name:           "Annatto",
		Code:           "E160b",
		Type:           "additive",
		Description:    "Natural yellow-orange food coloring",
		HealthConcerns: "Generally recognized as safe; rare allergic reactions",
		Aliases:        []string{"annatto extract"},
	},
}

// DetectAdditives scans an ingredients string for known additives,
// matching names, E-codes and aliases on word boundaries.
func DetectAdditives(ingredients string) []Additive {
	if strings.TrimSpace(ingredients) == "" {
		return nil
	}

	var detected []Additive
	seen := make(map[string]bool)

	for _, additive := range knownAdditives {
		terms := []string{additive.Name}
		if additive.Code != "" {
			terms = append(terms, additive.Code)
		}
		terms = append(terms, additive.Aliases...)

		for _, term := range terms {
			pattern := `(?i)\b` + regexp.QuoteMeta(term) + `\b`
			matched, err := regexp.MatchString(pattern, ingredients)
			if err != nil || !matched {
				continue
			}
			if !seen[additive.Name] {
				detected = append(detected, additive)
				seen[additive.Name] = true
			}
			break
		}
	}

	return detected
}
