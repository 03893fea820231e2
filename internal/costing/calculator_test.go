package costing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestIngredientCostSameUnitReturnsPricePaid(t *testing.T) {
	// Costing the exact purchased quantity returns the exact price paid,
	// including quantities that do not divide the price evenly.
	for _, q := range []float64{1, 3, 7, 0.3} {
		cost := IngredientCost(dec("42.50"), q, UnitGram, q, UnitGram)
		assert.True(t, cost.Equal(dec("42.50")), "q=%v got %s", q, cost)
	}
}

func TestIngredientCostKilogramToGram(t *testing.T) {
	// 100 per kilogram → 500g costs 50.
	cost := IngredientCost(dec("100"), 1, UnitKilogram, 500, UnitGram)
	assert.True(t, cost.Equal(dec("50")), "got %s", cost)
}

func TestIngredientCostLiterToMilliliter(t *testing.T) {
	// 30 per liter → 250ml costs 7.5.
	cost := IngredientCost(dec("30"), 1, UnitLiter, 250, UnitMilliliter)
	assert.True(t, cost.Equal(dec("7.5")), "got %s", cost)
}

func TestIngredientCostMilliliterDirect(t *testing.T) {
	cost := IngredientCost(dec("10"), 500, UnitMilliliter, 100, UnitMilliliter)
	assert.True(t, cost.Equal(dec("2")), "got %s", cost)
}

func TestIngredientCostFallbackUnitIdempotence(t *testing.T) {
	// Units with no conversion table entry fall back to linear scaling by
	// quantity ratio, so pricing the purchased quantity returns the price.
	for _, q := range []float64{1, 2.5, 8} {
		cost := IngredientCost(dec("19.90"), q, UnitHour, q, UnitHour)
		assert.True(t, cost.Equal(dec("19.90")), "q=%v got %s", q, cost)
	}
}

func TestIngredientCostPieces(t *testing.T) {
	// 6 per 12 pieces → 3 pieces cost 1.5.
	cost := IngredientCost(dec("6"), 12, UnitPiece, 3, UnitPiece)
	assert.True(t, cost.Equal(dec("1.5")), "got %s", cost)
}

func TestIngredientCostMismatchedUnitsFallBack(t *testing.T) {
	// g priced, ml consumed: no conversion defined, price is treated as per
	// purchase unit. The pair is reported as mismatched so callers can flag it.
	cost := IngredientCost(dec("20"), 2, UnitGram, 4, UnitMilliliter)
	assert.True(t, cost.Equal(dec("40")), "got %s", cost)
	assert.True(t, Mismatched(UnitGram, UnitMilliliter))
	assert.False(t, Mismatched(UnitKilogram, UnitGram))
	assert.False(t, Mismatched(UnitHour, UnitHour))
}

func TestIngredientCostZeroPriceQuantityYieldsZero(t *testing.T) {
	cost := IngredientCost(dec("10"), 0, UnitGram, 100, UnitGram)
	assert.True(t, cost.IsZero(), "got %s", cost)
}
