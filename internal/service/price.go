package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/costing"
	"github.com/ovenledger/backend/internal/models"
)

// PriceService maintains per-user ingredient price history and resolves the
// latest price for the costing core.
type PriceService struct {
	db *gorm.DB
}

func NewPriceService(db *gorm.DB) *PriceService {
	return &PriceService{db: db}
}

func (s *PriceService) Create(ctx context.Context, userID, ingredientID uuid.UUID, price decimal.Decimal, quantity float64, unit string) (*models.PriceRecord, error) {
	u, err := costing.ParseUnit(unit)
	if err != nil {
		return nil, err
	}

	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", ingredientID).Error; err != nil {
		return nil, err
	}
	if !costing.Category(ingredient.Category).Allows(u) {
		return nil, ErrUnitNotAllowed
	}

	record := models.PriceRecord{
		IngredientID: ingredientID,
		Price:        price,
		Quantity:     quantity,
		Unit:         string(u),
		RecordedAt:   time.Now(),
		UserID:       userID,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// PriceFilter narrows and orders a price listing. Sort columns are
// whitelisted; anything else falls back to newest-first.
type PriceFilter struct {
	IngredientID  *uuid.UUID
	Date          *time.Time
	SortColumn    string
	SortAscending bool
}

var priceSortColumns = map[string]string{
	"price":    "price",
	"quantity": "quantity",
	"date":     "recorded_at",
	"unit":     "unit",
}

func (s *PriceService) List(ctx context.Context, userID uuid.UUID, filter PriceFilter) ([]models.PriceRecord, error) {
	query := s.db.WithContext(ctx).Preload("Ingredient").Where("user_id = ?", userID)

	if filter.IngredientID != nil {
		query = query.Where("ingredient_id = ?", *filter.IngredientID)
	}
	if filter.Date != nil {
		query = query.Where("DATE(recorded_at) = DATE(?)", *filter.Date)
	}

	if column, ok := priceSortColumns[filter.SortColumn]; ok {
		direction := "DESC"
		if filter.SortAscending {
			direction = "ASC"
		}
		query = query.Order(column + " " + direction)
	} else {
		query = query.Order("recorded_at DESC")
	}

	var records []models.PriceRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Lookup returns a costing.PriceLookup scoped to one user's price history.
func (s *PriceService) Lookup(userID uuid.UUID) costing.PriceLookup {
	return &userPriceLookup{db: s.db, userID: userID}
}

type userPriceLookup struct {
	db     *gorm.DB
	userID uuid.UUID
}

// LatestPrice returns the most recent price record for the ingredient, or
// costing.ErrNoPrice when none exists.
func (l *userPriceLookup) LatestPrice(ctx context.Context, ingredientID uuid.UUID) (costing.PriceQuote, error) {
	var record models.PriceRecord
	err := l.db.WithContext(ctx).
		Where("ingredient_id = ? AND user_id = ?", ingredientID, l.userID).
		Order("recorded_at DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return costing.PriceQuote{}, costing.ErrNoPrice
	}
	if err != nil {
		return costing.PriceQuote{}, err
	}

	return costing.PriceQuote{
		Price:    record.Price,
		Quantity: record.Quantity,
		Unit:     costing.Unit(record.Unit),
	}, nil
}
