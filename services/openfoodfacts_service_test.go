package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeOFF(t *testing.T, handler http.HandlerFunc) *OpenFoodFactsService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OFF_BASE_URL", srv.URL)
	return NewOpenFoodFactsService()
}

func TestFetchProductNormalizes(t *testing.T) {
	payload := `{
		"status": 1,
		"product": {
			"_id": "0041220576738",
			"code": "0041220576738",
			"product_name": "Diet Cola",
			"image_url": "https://img.example/cola.jpg",
			"brand_owner": "Example Co",
			"brands": "ExampleBrand",
			"ingredients_text": "carbonated water, caramel color, citric acid",
			"serving_size": "1 oz (28 g)",
			"additives_tags": ["en:e330", "en:e150d"],
			"nutriments": {
				"sugars": 42,
				"sugars_unit": "g",
				"sugars_100g": 10.5,
				"energy_100g": 180,
				"energy_unit": "kcal",
				"proteins": 0.4,
				"proteins_unit": "g"
			}
		}
	}`
	svc := newFakeOFF(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/0041220576738.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, payload)
	})

	facts, err := svc.FetchProduct("0041220576738")
	if err != nil {
		t.Fatal(err)
	}

	if facts.Name != "Diet Cola" {
		t.Errorf("name = %q", facts.Name)
	}
	if facts.ServingSize != 28 || facts.ServingUnit != "g" {
		t.Errorf("serving = %v %q, want 28 g", facts.ServingSize, facts.ServingUnit)
	}

	byName := make(map[string]struct {
		amount float64
		unit   string
	})
	for _, n := range facts.Nutrients {
		byName[n.Name] = struct {
			amount float64
			unit   string
		}{n.Amount, n.UnitName}
	}

	// the per-100g value wins over the bare sibling
	if got := byName["sugars"]; got.amount != 10.5 || got.unit != "g" {
		t.Errorf("sugars = %+v, want 10.5 g", got)
	}
	if got := byName["energy"]; got.amount != 180 {
		t.Errorf("energy = %+v, want 180", got)
	}
	if got := byName["proteins"]; got.amount != 0.4 {
		t.Errorf("proteins = %+v, want 0.4", got)
	}

	// two tags collapse into one pseudo-nutrient carrying the codes
	additives := byName["additives"]
	if additives.amount != 2 {
		t.Errorf("additives amount = %v, want 2", additives.amount)
	}
	if additives.unit != "E330 E150D" {
		t.Errorf("additives codes = %q, want \"E330 E150D\"", additives.unit)
	}
}

func TestFetchProductPer100gUnitSibling(t *testing.T) {
	// some payloads attach the unit to the _100g key itself
	svc := newFakeOFF(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": 1,
			"product": {
				"product_name": "Test Bar",
				"nutriments": {
					"energy_100g": 400, "energy_100g_unit": "kcal",
					"sugars_100g": 20, "sugars_100g_unit": "g"
				}
			}
		}`)
	})

	facts, err := svc.FetchProduct("0041220576738")
	if err != nil {
		t.Fatal(err)
	}
	if len(facts.Nutrients) != 2 {
		t.Fatalf("got %d nutrients, want 2", len(facts.Nutrients))
	}
	for _, n := range facts.Nutrients {
		switch n.Name {
		case "energy":
			if n.Amount != 400 || n.UnitName != "kcal" {
				t.Errorf("energy = %v %q", n.Amount, n.UnitName)
			}
		case "sugars":
			if n.Amount != 20 || n.UnitName != "g" {
				t.Errorf("sugars = %v %q", n.Amount, n.UnitName)
			}
		default:
			t.Errorf("unexpected nutrient %q", n.Name)
		}
	}
}

func TestFetchProductNotFound(t *testing.T) {
	svc := newFakeOFF(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": 0, "status_verbose": "product not found"}`)
	})

	_, err := svc.FetchProduct("99999999")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestFetchProductUpstreamError(t *testing.T) {
	svc := newFakeOFF(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.FetchProduct("12345678")
	if err == nil || errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want upstream error", err)
	}
}

func TestParseServingSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		want     float64
		wantUnit string
	}{
		{"1 oz (28 g)", 28, "g"}, // parenthesized metric form wins
		{"123 lb", 123, "lb"},
		{"3.432mg", 3.432, "mg"},
		{"30 g", 30, "g"},
		{"two scoops", 0, ""},
		{"", 0, ""},
	}
	for _, tc := range cases {
		got, unit := parseServingSize(tc.in)
		if got != tc.want || unit != tc.wantUnit {
			t.Errorf("parseServingSize(%q) = %v %q, want %v %q", tc.in, got, unit, tc.want, tc.wantUnit)
		}
	}
}

func TestNutrientDisplayName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"saturated-fat": "Saturated Fat",
		"sugars":        "Sugars",
		"energy":        "Energy",
	}
	for in, want := range cases {
		if got := NutrientDisplayName(in); got != want {
			t.Errorf("NutrientDisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}
