package costing

import "fmt"

// Unit is a measurement unit drawn from the fixed vocabulary used by
// ingredients, price records and recipe entries.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitHour       Unit = "hh"
	UnitPiece      Unit = "pieces"
)

// Category classifies an ingredient and determines which units are valid
// for it.
type Category string

const (
	CategoryBase        Category = "base"
	CategorySpice       Category = "spice"
	CategorySauce       Category = "sauce"
	CategoryElectricity Category = "electricity"
	CategoryPacking     Category = "packing"
)

var categoryUnits = map[Category][]Unit{
	CategoryBase:        {UnitKilogram, UnitGram},
	CategorySpice:       {UnitGram},
	CategorySauce:       {UnitMilliliter},
	CategoryElectricity: {UnitHour},
	CategoryPacking:     {UnitPiece},
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryUnits[c]; !ok {
		return "", fmt.Errorf("unknown ingredient category %q", s)
	}
	return c, nil
}

// ParseUnit validates a raw unit string.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitHour, UnitPiece:
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// Units returns the units permitted for ingredients of this category.
func (c Category) Units() []Unit {
	return categoryUnits[c]
}

// Allows reports whether u is a valid unit for ingredients of this category.
func (c Category) Allows(u Unit) bool {
	for _, valid := range categoryUnits[c] {
		if valid == u {
			return true
		}
	}
	return false
}

type unitPair struct {
	from, to Unit
}

// conversionScale maps a (purchase unit, recipe unit) pair to the factor the
// purchase quantity must be multiplied by to express it in the recipe unit.
// Adding a new convertible pair is a one-line entry here.
var conversionScale = map[unitPair]int64{
	{UnitKilogram, UnitGram}:    1000,
	{UnitLiter, UnitMilliliter}: 1000,
}

// scaleFor returns the conversion factor from a purchase unit to a recipe
// unit. Identical units need no conversion and always scale by 1. The second
// return value is false when the pair has no defined conversion.
func scaleFor(from, to Unit) (int64, bool) {
	if from == to {
		return 1, true
	}
	scale, ok := conversionScale[unitPair{from, to}]
	return scale, ok
}

// Mismatched reports whether pricing in `from` units for a quantity in `to`
// units has no defined conversion. Costing such a pair falls back to a
// per-purchase-unit price, which produces a plausible-looking but unscaled
// number; callers surface this as a warning.
func Mismatched(from, to Unit) bool {
	_, ok := scaleFor(from, to)
	return !ok
}
