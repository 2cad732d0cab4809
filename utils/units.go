package utils

import (
	"fmt"
	"strings"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindEnergy unitKind = "energy"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// mass (base = g)
	"ug":  {kind: unitKindMass, toBaseUnit: 0.000001},
	"µg":  {kind: unitKindMass, toBaseUnit: 0.000001},
	"mcg": {kind: unitKindMass, toBaseUnit: 0.000001},
	"mg":  {kind: unitKindMass, toBaseUnit: 0.001},
	"g":   {kind: unitKindMass, toBaseUnit: 1},
	"kg":  {kind: unitKindMass, toBaseUnit: 1000},
	"oz":  {kind: unitKindMass, toBaseUnit: 28.349523125},
	"lb":  {kind: unitKindMass, toBaseUnit: 453.59237},
	"lbs": {kind: unitKindMass, toBaseUnit: 453.59237},

	// energy (base = kcal)
	"kcal": {kind: unitKindEnergy, toBaseUnit: 1},
	"cal":  {kind: unitKindEnergy, toBaseUnit: 1},
	"kj":   {kind: unitKindEnergy, toBaseUnit: 1.0 / 4.184},
}

// ConversionError reports a unit conversion that cannot be performed,
// either because a unit is unknown or because the units measure
// different dimensions. Callers are expected to skip the nutrient.
type ConversionError struct {
	FromUnit string
	ToUnit   string
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %q: %s", e.FromUnit, e.ToUnit, e.Reason)
}

// ConvertMetric converts amount from one unit to another. An empty
// target unit, or equal units, is a deliberate no-op: metrics without a
// canonical unit skip conversion entirely.
func ConvertMetric(amount float64, fromUnit, toUnit string) (float64, error) {
	if toUnit == "" || strings.EqualFold(strings.TrimSpace(fromUnit), strings.TrimSpace(toUnit)) {
		return amount, nil
	}
	from, ok := resolveUnit(fromUnit)
	if !ok {
		return 0, &ConversionError{FromUnit: fromUnit, ToUnit: toUnit, Reason: "unknown source unit"}
	}
	to, ok := resolveUnit(toUnit)
	if !ok {
		return 0, &ConversionError{FromUnit: fromUnit, ToUnit: toUnit, Reason: "unknown target unit"}
	}
	if from.kind != to.kind {
		return 0, &ConversionError{FromUnit: fromUnit, ToUnit: toUnit, Reason: "incompatible dimensions"}
	}
	return amount * from.toBaseUnit / to.toBaseUnit, nil
}

func resolveUnit(unit string) (unitDef, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	def, ok := unitTable[u]
	return def, ok
}
