package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CookingSession records one actual cook of a recipe. Ingredient costs are
// frozen at cook time from the then-latest prices, so later price changes do
// not rewrite history.
type CookingSession struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	RecipeID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"recipe_id"`
	CookedAt  time.Time      `gorm:"not null;index" json:"cooked_at"`
	Yield     string         `gorm:"size:255;not null" json:"yield"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`

	Recipe      Recipe                     `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredients []CookingSessionIngredient `gorm:"foreignKey:CookingSessionID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (s *CookingSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type CookingSessionIngredient struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time       `json:"created_at"`
	CookingSessionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"cooking_session_id"`
	IngredientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity         float64         `gorm:"not null" json:"quantity"`
	Unit             string          `gorm:"size:10;not null" json:"unit"`
	Cost             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

func (si *CookingSessionIngredient) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}
