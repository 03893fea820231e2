package costing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoPrice is returned by a PriceLookup when an ingredient has no recorded
// price.
var ErrNoPrice = errors.New("no price on record")

// PriceQuote is the most recent purchase price known for an ingredient.
type PriceQuote struct {
	Price    decimal.Decimal
	Quantity float64
	Unit     Unit
}

// PriceLookup resolves the most recent price record for an ingredient. It is
// implemented by the persistence layer.
type PriceLookup interface {
	LatestPrice(ctx context.Context, ingredientID uuid.UUID) (PriceQuote, error)
}

// Entry is one ingredient line of a recipe.
type Entry struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	Unit         Unit      `json:"unit"`
}

// EntryCost is the costing result for a single recipe entry. Exactly one of
// the following holds: Priced is true and Cost is set; Priced is false with an
// empty Error (no price on record); or Error names why the entry could not be
// costed. Unpriced and invalid entries contribute nothing to the total.
type EntryCost struct {
	Entry
	Priced       bool            `json:"priced"`
	Cost         decimal.Decimal `json:"cost"`
	UnitMismatch bool            `json:"unit_mismatch,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// RecipeCost is the aggregation result: per-entry costs in input order and
// the total over priced entries only.
type RecipeCost struct {
	Entries []EntryCost     `json:"entries"`
	Total   decimal.Decimal `json:"total_cost"`
}

// AggregateRecipeCost resolves the latest price for every entry and sums the
// per-entry ingredient costs. A missing price or an invalid entry never aborts
// the aggregation; only a failing lookup collaborator does.
func AggregateRecipeCost(ctx context.Context, entries []Entry, lookup PriceLookup) (RecipeCost, error) {
	result := RecipeCost{
		Entries: make([]EntryCost, 0, len(entries)),
		Total:   decimal.Zero,
	}

	for _, entry := range entries {
		ec := EntryCost{Entry: entry, Cost: decimal.Zero}

		switch {
		case entry.IngredientID == uuid.Nil:
			ec.Error = "missing ingredient reference"
		case entry.Quantity <= 0:
			ec.Error = "quantity must be positive"
		default:
			quote, err := lookup.LatestPrice(ctx, entry.IngredientID)
			switch {
			case errors.Is(err, ErrNoPrice):
				// Unpriced, not an error: the entry stays in the result.
			case err != nil:
				return RecipeCost{}, err
			case quote.Quantity <= 0 || quote.Price.Sign() <= 0:
				ec.Error = "invalid price record"
			default:
				ec.Priced = true
				ec.UnitMismatch = Mismatched(quote.Unit, entry.Unit)
				ec.Cost = IngredientCost(quote.Price, quote.Quantity, quote.Unit, entry.Quantity, entry.Unit)
				result.Total = result.Total.Add(ec.Cost)
			}
		}

		result.Entries = append(result.Entries, ec)
	}

	return result, nil
}
