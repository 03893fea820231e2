package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/costing"
	"github.com/ovenledger/backend/internal/models"
)

// IngredientService handles the shared ingredient catalogue.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) Create(ctx context.Context, name, category string) (*models.Ingredient, error) {
	cat, err := costing.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		Name:     name,
		Category: string(cat),
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) List(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Get(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(ctx context.Context, id uuid.UUID, name, category string) (*models.Ingredient, error) {
	cat, err := costing.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}

	ingredient.Name = name
	ingredient.Category = string(cat)
	if err := s.db.WithContext(ctx).Save(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Delete removes an ingredient unless price records or recipe entries still
// reference it.
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return err
	}

	var refs int64
	if err := s.db.WithContext(ctx).Model(&models.PriceRecord{}).
		Where("ingredient_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs == 0 {
		if err := s.db.WithContext(ctx).Model(&models.RecipeIngredient{}).
			Where("ingredient_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
	}
	if refs > 0 {
		return ErrIngredientInUse
	}

	return s.db.WithContext(ctx).Delete(&ingredient).Error
}
