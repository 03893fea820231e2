package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Surname   string         `gorm:"size:255;not null" json:"surname"`
	Telegram  string         `gorm:"size:255" json:"telegram"`
	Instagram string         `gorm:"size:255" json:"instagram"`
	Phone     string         `gorm:"size:255" json:"phone"`
	Address   string         `gorm:"type:text" json:"address"`
	Source    string         `gorm:"size:255" json:"source"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
