package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIngredientInUse is returned when deleting an ingredient that price
	// records or recipe entries still reference.
	ErrIngredientInUse = errors.New("ingredient is referenced by price records or recipes")

	// ErrUnitNotAllowed is returned when a unit is not valid for the
	// ingredient's category.
	ErrUnitNotAllowed = errors.New("unit not allowed for ingredient category")

	// ErrInvalidStatus is returned for an unknown order status.
	ErrInvalidStatus = errors.New("invalid order status")
)

// UnpricedError reports which ingredients had no price on record when an
// operation required one (cooking sessions freeze real costs and cannot
// proceed without prices).
type UnpricedError struct {
	Ingredients []string
}

func (e *UnpricedError) Error() string {
	return fmt.Sprintf("no price on record for: %s", strings.Join(e.Ingredients, ", "))
}
