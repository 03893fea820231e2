package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ingredient is a costed resource a recipe can consume. Category determines
// which measurement units are valid for it (see internal/costing).
type Ingredient struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Category  string         `gorm:"size:50;not null" json:"category"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// PriceRecord is one timestamped purchase price for a quantity of an
// ingredient. Records accumulate per ingredient; cost lookups only ever use
// the most recent one per user.
type PriceRecord struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity     float64         `gorm:"not null" json:"quantity"`
	Unit         string          `gorm:"size:10;not null" json:"unit"`
	RecordedAt   time.Time       `gorm:"not null;index" json:"recorded_at"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}

func (p *PriceRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
