package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/models"
	"github.com/ovenledger/backend/internal/types"
)

// ClientService handles the user's customer book.
type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) Create(ctx context.Context, userID uuid.UUID, req types.ClientRequest) (*models.Client, error) {
	client := models.Client{
		Name:      req.Name,
		Surname:   req.Surname,
		Telegram:  req.Telegram,
		Instagram: req.Instagram,
		Phone:     req.Phone,
		Address:   req.Address,
		Source:    req.Source,
		UserID:    userID,
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) List(ctx context.Context, userID uuid.UUID) ([]models.Client, error) {
	var clients []models.Client
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name, surname").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(ctx context.Context, userID, id uuid.UUID, req types.ClientRequest) (*models.Client, error) {
	client, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Surname = req.Surname
	client.Telegram = req.Telegram
	client.Instagram = req.Instagram
	client.Phone = req.Phone
	client.Address = req.Address
	client.Source = req.Source
	if err := s.db.WithContext(ctx).Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	client, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(client).Error
}
