package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/costing"
	"github.com/ovenledger/backend/internal/models"
)

// RecipeService handles recipes and their costed views. Total cost is always
// recomputed from the latest prices on read, never persisted.
type RecipeService struct {
	db     *gorm.DB
	prices *PriceService
}

func NewRecipeService(db *gorm.DB, prices *PriceService) *RecipeService {
	return &RecipeService{db: db, prices: prices}
}

// EntryInput is one ingredient line supplied by a client.
type EntryInput struct {
	IngredientID uuid.UUID
	Quantity     float64
	Unit         string
}

// CostedRecipe is a recipe with its per-entry costs and recomputed total.
type CostedRecipe struct {
	models.Recipe
	Entries   []costing.EntryCost `json:"entries"`
	TotalCost decimal.Decimal     `json:"total_cost"`
}

func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, name string, entries []EntryInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Name:   name,
		UserID: userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for _, entry := range entries {
			if err := s.createEntry(tx, recipe.ID, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// AddEntry appends an ingredient line to a recipe the user owns.
func (s *RecipeService) AddEntry(ctx context.Context, userID, recipeID uuid.UUID, entry EntryInput) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
		return err
	}
	return s.createEntry(s.db.WithContext(ctx), recipeID, entry)
}

// createEntry validates the unit against the ingredient's category before
// inserting; invalid units never reach the table.
func (s *RecipeService) createEntry(tx *gorm.DB, recipeID uuid.UUID, entry EntryInput) error {
	unit, err := costing.ParseUnit(entry.Unit)
	if err != nil {
		return err
	}

	var ingredient models.Ingredient
	if err := tx.First(&ingredient, "id = ?", entry.IngredientID).Error; err != nil {
		return err
	}
	if !costing.Category(ingredient.Category).Allows(unit) {
		return ErrUnitNotAllowed
	}

	return tx.Create(&models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: entry.IngredientID,
		Quantity:     entry.Quantity,
		Unit:         string(unit),
	}).Error
}

func (s *RecipeService) RemoveEntry(ctx context.Context, userID, recipeID, ingredientID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&models.RecipeIngredient{}).Error
}

// List returns the user's recipes, each with per-entry costs and total,
// optionally filtered by recipe name or by the name of an ingredient they
// contain.
func (s *RecipeService) List(ctx context.Context, userID uuid.UUID, name, ingredient string) ([]CostedRecipe, error) {
	query := s.db.WithContext(ctx).
		Preload("Entries").
		Preload("Entries.Ingredient").
		Where("user_id = ?", userID)

	if name != "" {
		query = query.Where("name = ?", name)
	}
	if ingredient != "" {
		query = query.Where("id IN (?)", s.db.
			Model(&models.RecipeIngredient{}).
			Select("recipe_ingredients.recipe_id").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
			Where("ingredients.name = ?", ingredient))
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	lookup := s.prices.Lookup(userID)
	costed := make([]CostedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		result, err := costing.AggregateRecipeCost(ctx, toCostingEntries(recipe.Entries), lookup)
		if err != nil {
			return nil, err
		}
		costed = append(costed, CostedRecipe{
			Recipe:    recipe,
			Entries:   result.Entries,
			TotalCost: result.Total,
		})
	}
	return costed, nil
}

func (s *RecipeService) Get(ctx context.Context, userID, id uuid.UUID) (*CostedRecipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Entries").
		Preload("Entries.Ingredient").
		First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}

	result, err := costing.AggregateRecipeCost(ctx, toCostingEntries(recipe.Entries), s.prices.Lookup(userID))
	if err != nil {
		return nil, err
	}
	return &CostedRecipe{
		Recipe:    recipe,
		Entries:   result.Entries,
		TotalCost: result.Total,
	}, nil
}

func (s *RecipeService) Names(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *RecipeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func toCostingEntries(entries []models.RecipeIngredient) []costing.Entry {
	out := make([]costing.Entry, len(entries))
	for i, e := range entries {
		out[i] = costing.Entry{
			IngredientID: e.IngredientID,
			Name:         e.Ingredient.Name,
			Quantity:     e.Quantity,
			Unit:         costing.Unit(e.Unit),
		}
	}
	return out
}
