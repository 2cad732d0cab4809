package utils

import "testing"

func TestDetectAdditives(t *testing.T) {
	t.Parallel()

	ingredients := "Carbonated water, sugar, citric acid, sodium benzoate (preservative), natural flavors"
	detected := DetectAdditives(ingredients)

	names := make(map[string]bool)
	for _, a := range detected {
		names[a.Name] = true
	}
	if !names["Citric Acid"] {
		t.Error("expected Citric Acid to be detected")
	}
	if !names["Sodium Benzoate"] {
		t.Error("expected Sodium Benzoate to be detected")
	}
	if names["Tartrazine"] {
		t.Error("Tartrazine should not be detected")
	}
}

func TestDetectAdditivesByCode(t *testing.T) {
	t.Parallel()

	detected := DetectAdditives("water, E211, colour E102")
	names := make(map[string]bool)
	for _, a := range detected {
		names[a.Name] = true
	}
	if !names["Sodium Benzoate"] {
		t.Error("E211 should resolve to Sodium Benzoate")
	}
	if !names["Tartrazine"] {
		t.Error("E102 should resolve to Tartrazine")
	}
}

func TestDetectAdditivesByAlias(t *testing.T) {
	t.Parallel()

	detected := DetectAdditives("noodles, MSG, salt")
	if len(detected) != 1 || detected[0].Name != "Monosodium Glutamate" {
		t.Errorf("detected = %+v, want only Monosodium Glutamate", detected)
	}
}

func TestDetectAdditivesSweeteners(t *testing.T) {
	t.Parallel()

	detected := DetectAdditives("water, nutrasweet, splenda, acesulfame potassium")
	names := make(map[string]bool)
	for _, a := range detected {
		names[a.Name] = true
	}
	for _, want := range []string{"Aspartame", "Sucralose", "Acesulfame K"} {
		if !names[want] {
			t.Errorf("expected %s to be detected", want)
		}
	}
}

func TestDetectAdditivesColorsAndGums(t *testing.T) {
	t.Parallel()

	detected := DetectAdditives("sugar, red 40, caramel coloring, carrageenan, xanthan gum, soy lecithin")
	names := make(map[string]bool)
	for _, a := range detected {
		names[a.Name] = true
	}
	for _, want := range []string{"Allura Red", "Caramel Color", "Carrageenan", "Xanthan Gum", "Lecithin"} {
		if !names[want] {
			t.Errorf("expected %s to be detected", want)
		}
	}
	if names["Tartrazine"] {
		t.Error("Tartrazine should not be detected")
	}
}

func TestDetectAdditivesNoDuplicates(t *testing.T) {
	t.Parallel()

	// name and code of the same additive must yield one entry
	detected := DetectAdditives("citric acid (E330)")
	if len(detected) != 1 {
		t.Errorf("detected %d additives, want 1", len(detected))
	}
}

func TestDetectAdditivesEmpty(t *testing.T) {
	t.Parallel()

	if got := DetectAdditives(""); got != nil {
		t.Errorf("DetectAdditives(\"\") = %+v, want nil", got)
	}
	if got := DetectAdditives("   "); got != nil {
		t.Errorf("DetectAdditives(blank) = %+v, want nil", got)
	}
}
