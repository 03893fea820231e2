package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUnits(t *testing.T) {
	tests := []struct {
		category Category
		units    []Unit
	}{
		{CategoryBase, []Unit{UnitKilogram, UnitGram}},
		{CategorySpice, []Unit{UnitGram}},
		{CategorySauce, []Unit{UnitMilliliter}},
		{CategoryElectricity, []Unit{UnitHour}},
		{CategoryPacking, []Unit{UnitPiece}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.units, tt.category.Units(), "category %s", tt.category)
		for _, u := range tt.units {
			assert.True(t, tt.category.Allows(u), "%s should allow %s", tt.category, u)
		}
	}

	assert.False(t, CategorySpice.Allows(UnitKilogram))
	assert.False(t, CategorySauce.Allows(UnitLiter))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("base")
	require.NoError(t, err)
	assert.Equal(t, CategoryBase, c)

	_, err = ParseCategory("dairy")
	assert.Error(t, err)
}

func TestParseUnit(t *testing.T) {
	for _, s := range []string{"kg", "g", "l", "ml", "hh", "pieces"} {
		u, err := ParseUnit(s)
		require.NoError(t, err)
		assert.Equal(t, Unit(s), u)
	}

	_, err := ParseUnit("oz")
	assert.Error(t, err)
}

func TestScaleFor(t *testing.T) {
	scale, ok := scaleFor(UnitKilogram, UnitGram)
	require.True(t, ok)
	assert.EqualValues(t, 1000, scale)

	scale, ok = scaleFor(UnitLiter, UnitMilliliter)
	require.True(t, ok)
	assert.EqualValues(t, 1000, scale)

	scale, ok = scaleFor(UnitGram, UnitGram)
	require.True(t, ok)
	assert.EqualValues(t, 1, scale)

	// Reverse direction is deliberately not defined.
	_, ok = scaleFor(UnitGram, UnitKilogram)
	assert.False(t, ok)

	// Cross-dimension pairs have no conversion.
	_, ok = scaleFor(UnitKilogram, UnitMilliliter)
	assert.False(t, ok)
}
