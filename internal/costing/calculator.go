package costing

import "github.com/shopspring/decimal"

// IngredientCost converts a purchase price record into the cost of the
// quantity a recipe actually consumes.
//
// The price was paid for priceQuantity of priceUnit. When the purchase unit
// and the recipe unit differ by a known scale (kg→g, l→ml) the per-unit price
// is derived across that scale; identical units divide directly. Any other
// combination falls back to treating the price as per purchase unit with no
// scaling; use Mismatched to detect and flag that case.
//
// The function is pure and never fails: callers are expected to validate
// inputs first (see AggregateRecipeCost), and a non-positive price quantity
// yields a zero cost rather than a division error.
func IngredientCost(price decimal.Decimal, priceQuantity float64, priceUnit Unit, quantity float64, unit Unit) decimal.Decimal {
	divisor := decimal.NewFromFloat(priceQuantity)
	if scale, ok := scaleFor(priceUnit, unit); ok {
		divisor = divisor.Mul(decimal.NewFromInt(scale))
	}
	if divisor.Sign() <= 0 {
		return decimal.Zero
	}
	// Divide last: Div rounds to a fixed precision, so deriving a per-unit
	// price first would lose exactness whenever the price quantity does not
	// divide the price evenly.
	return price.Mul(decimal.NewFromFloat(quantity)).Div(divisor)
}
