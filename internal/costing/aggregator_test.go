package costing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapLookup is an in-memory PriceLookup for tests.
type mapLookup map[uuid.UUID]PriceQuote

func (m mapLookup) LatestPrice(_ context.Context, id uuid.UUID) (PriceQuote, error) {
	quote, ok := m[id]
	if !ok {
		return PriceQuote{}, ErrNoPrice
	}
	return quote, nil
}

type failingLookup struct{ err error }

func (f failingLookup) LatestPrice(context.Context, uuid.UUID) (PriceQuote, error) {
	return PriceQuote{}, f.err
}

func TestAggregateRecipeCostScenario(t *testing.T) {
	flour := uuid.New()
	salt := uuid.New()

	lookup := mapLookup{
		flour: {Price: dec("100"), Quantity: 1, Unit: UnitKilogram},
		salt:  {Price: dec("20"), Quantity: 1, Unit: UnitKilogram},
	}

	entries := []Entry{
		{IngredientID: flour, Name: "flour", Quantity: 500, Unit: UnitGram},
		{IngredientID: salt, Name: "salt", Quantity: 10, Unit: UnitGram},
	}

	result, err := AggregateRecipeCost(context.Background(), entries, lookup)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)

	assert.True(t, result.Entries[0].Priced)
	assert.True(t, result.Entries[0].Cost.Equal(dec("50")), "flour cost %s", result.Entries[0].Cost)
	assert.True(t, result.Entries[1].Priced)
	assert.True(t, result.Entries[1].Cost.Equal(dec("0.2")), "salt cost %s", result.Entries[1].Cost)
	assert.True(t, result.Total.Equal(dec("50.2")), "total %s", result.Total)
}

func TestAggregateRecipeCostAdditivity(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	lookup := mapLookup{
		a: {Price: dec("30"), Quantity: 1, Unit: UnitLiter},
		b: {Price: dec("6"), Quantity: 12, Unit: UnitPiece},
	}

	entries := []Entry{
		{IngredientID: a, Quantity: 250, Unit: UnitMilliliter},
		{IngredientID: b, Quantity: 3, Unit: UnitPiece},
	}

	result, err := AggregateRecipeCost(context.Background(), entries, lookup)
	require.NoError(t, err)

	want := IngredientCost(dec("30"), 1, UnitLiter, 250, UnitMilliliter).
		Add(IngredientCost(dec("6"), 12, UnitPiece, 3, UnitPiece))
	assert.True(t, result.Total.Equal(want), "total %s want %s", result.Total, want)
}

func TestAggregateRecipeCostMissingPriceIsNotFatal(t *testing.T) {
	priced := uuid.New()
	unpriced := uuid.New()
	lookup := mapLookup{
		priced: {Price: dec("100"), Quantity: 1, Unit: UnitKilogram},
	}

	entries := []Entry{
		{IngredientID: priced, Name: "flour", Quantity: 500, Unit: UnitGram},
		{IngredientID: unpriced, Name: "saffron", Quantity: 2, Unit: UnitGram},
	}

	result, err := AggregateRecipeCost(context.Background(), entries, lookup)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)

	// The unpriced entry is still returned, flagged, and contributes nothing.
	assert.False(t, result.Entries[1].Priced)
	assert.Empty(t, result.Entries[1].Error)
	assert.True(t, result.Entries[1].Cost.IsZero())
	assert.True(t, result.Total.Equal(dec("50")), "total %s", result.Total)
}

func TestAggregateRecipeCostInvalidEntriesAreExcluded(t *testing.T) {
	ok := uuid.New()
	lookup := mapLookup{
		ok: {Price: dec("10"), Quantity: 1, Unit: UnitGram},
	}

	entries := []Entry{
		{IngredientID: uuid.Nil, Name: "ghost", Quantity: 5, Unit: UnitGram},
		{IngredientID: ok, Name: "sugar", Quantity: -3, Unit: UnitGram},
		{IngredientID: ok, Name: "sugar", Quantity: 2, Unit: UnitGram},
	}

	result, err := AggregateRecipeCost(context.Background(), entries, lookup)
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	assert.Equal(t, "missing ingredient reference", result.Entries[0].Error)
	assert.Equal(t, "quantity must be positive", result.Entries[1].Error)
	assert.False(t, result.Entries[0].Priced)
	assert.False(t, result.Entries[1].Priced)
	assert.True(t, result.Entries[2].Priced)
	assert.True(t, result.Total.Equal(dec("20")), "total %s", result.Total)
}

func TestAggregateRecipeCostRejectsInvalidPriceRecord(t *testing.T) {
	id := uuid.New()
	lookup := mapLookup{
		id: {Price: dec("10"), Quantity: 0, Unit: UnitGram},
	}

	result, err := AggregateRecipeCost(context.Background(),
		[]Entry{{IngredientID: id, Quantity: 5, Unit: UnitGram}}, lookup)
	require.NoError(t, err)
	assert.Equal(t, "invalid price record", result.Entries[0].Error)
	assert.True(t, result.Total.IsZero())
}

func TestAggregateRecipeCostFlagsUnitMismatch(t *testing.T) {
	id := uuid.New()
	lookup := mapLookup{
		id: {Price: dec("10"), Quantity: 1, Unit: UnitGram},
	}

	result, err := AggregateRecipeCost(context.Background(),
		[]Entry{{IngredientID: id, Quantity: 5, Unit: UnitMilliliter}}, lookup)
	require.NoError(t, err)
	assert.True(t, result.Entries[0].Priced)
	assert.True(t, result.Entries[0].UnitMismatch)
}

func TestAggregateRecipeCostLookupFailureAborts(t *testing.T) {
	boom := errors.New("database unreachable")
	_, err := AggregateRecipeCost(context.Background(),
		[]Entry{{IngredientID: uuid.New(), Quantity: 1, Unit: UnitGram}},
		failingLookup{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestAggregateRecipeCostPreservesEntryOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	lookup := mapLookup{}
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{IngredientID: id, Name: string(rune('a' + i)), Quantity: 1, Unit: UnitGram}
	}

	result, err := AggregateRecipeCost(context.Background(), entries, lookup)
	require.NoError(t, err)
	require.Len(t, result.Entries, len(ids))
	for i := range ids {
		assert.Equal(t, ids[i], result.Entries[i].IngredientID)
	}
	assert.True(t, result.Total.IsZero())
}
