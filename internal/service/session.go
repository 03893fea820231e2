package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/costing"
	"github.com/ovenledger/backend/internal/models"
)

// SessionService records cooking sessions. A session freezes the cost of each
// ingredient at the moment it is created; later price changes never rewrite
// session history.
type SessionService struct {
	db     *gorm.DB
	prices *PriceService
}

func NewSessionService(db *gorm.DB, prices *PriceService) *SessionService {
	return &SessionService{db: db, prices: prices}
}

// Create snapshots the cost of the ingredients actually used into a new
// session. The amounts come from the request rather than the recipe, since a
// real cook rarely matches the recipe sheet exactly. Every ingredient must
// have a price on record; otherwise the frozen total would silently
// understate the real cost, so creation fails with UnpricedError instead.
func (s *SessionService) Create(ctx context.Context, userID, recipeID uuid.UUID, cookedAt time.Time, yield string, used []EntryInput) (*models.CookingSession, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
		return nil, err
	}

	entries := make([]costing.Entry, 0, len(used))
	for _, in := range used {
		unit, err := costing.ParseUnit(in.Unit)
		if err != nil {
			return nil, err
		}
		var ingredient models.Ingredient
		if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", in.IngredientID).Error; err != nil {
			return nil, err
		}
		if !costing.Category(ingredient.Category).Allows(unit) {
			return nil, ErrUnitNotAllowed
		}
		entries = append(entries, costing.Entry{
			IngredientID: in.IngredientID,
			Name:         ingredient.Name,
			Quantity:     in.Quantity,
			Unit:         unit,
		})
	}

	result, err := costing.AggregateRecipeCost(ctx, entries, s.prices.Lookup(userID))
	if err != nil {
		return nil, err
	}

	var unpriced []string
	for _, entry := range result.Entries {
		if !entry.Priced {
			unpriced = append(unpriced, entry.Name)
		}
	}
	if len(unpriced) > 0 {
		return nil, &UnpricedError{Ingredients: unpriced}
	}

	session := models.CookingSession{
		RecipeID: recipeID,
		CookedAt: cookedAt,
		Yield:    yield,
		UserID:   userID,
	}
	for _, entry := range result.Entries {
		session.Ingredients = append(session.Ingredients, models.CookingSessionIngredient{
			IngredientID: entry.IngredientID,
			Quantity:     entry.Quantity,
			Unit:         string(entry.Unit),
			Cost:         entry.Cost,
		})
	}

	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, session.ID)
}

// SessionFilter narrows a session listing.
type SessionFilter struct {
	RecipeID *uuid.UUID
	Date     *time.Time
}

// SessionView is a cooking session with its frozen total.
type SessionView struct {
	models.CookingSession
	TotalCost decimal.Decimal `json:"total_cost"`
}

func (s *SessionService) List(ctx context.Context, userID uuid.UUID, filter SessionFilter) ([]SessionView, error) {
	query := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Where("user_id = ?", userID)

	if filter.RecipeID != nil {
		query = query.Where("recipe_id = ?", *filter.RecipeID)
	}
	if filter.Date != nil {
		query = query.Where("DATE(cooked_at) = DATE(?)", *filter.Date)
	}

	var sessions []models.CookingSession
	if err := query.Order("cooked_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	views := make([]SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, SessionView{
			CookingSession: session,
			TotalCost:      sessionTotal(session),
		})
	}
	return views, nil
}

func (s *SessionService) Get(ctx context.Context, userID, id uuid.UUID) (*models.CookingSession, error) {
	var session models.CookingSession
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&session, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var session models.CookingSession
	if err := s.db.WithContext(ctx).First(&session, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cooking_session_id = ?", id).Delete(&models.CookingSessionIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&session).Error
	})
}

func sessionTotal(session models.CookingSession) decimal.Decimal {
	total := decimal.Zero
	for _, ing := range session.Ingredients {
		total = total.Add(ing.Cost)
	}
	return total
}
