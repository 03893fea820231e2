package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/costing"
	"github.com/ovenledger/backend/internal/models"
	"github.com/ovenledger/backend/internal/types"
)

// OrderService handles client orders. Item prices are snapshotted at order
// time; the order's cost price is derived on demand from the recipes behind
// the ordered products.
type OrderService struct {
	db     *gorm.DB
	prices *PriceService
}

func NewOrderService(db *gorm.DB, prices *PriceService) *OrderService {
	return &OrderService{db: db, prices: prices}
}

func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req types.CreateOrderRequest) (*models.Order, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusNew
	}
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, "id = ? AND user_id = ?", clientID, userID).Error; err != nil {
		return nil, err
	}

	order := models.Order{
		ClientID: clientID,
		Status:   status,
		UserID:   userID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return err
			}
			var product models.Product
			if err := tx.First(&product, "id = ? AND user_id = ?", productID, userID).Error; err != nil {
				return err
			}
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: productID,
				Quantity:  item.Quantity,
				Price:     decimal.NewFromFloat(item.Price),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, order.ID)
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	ClientID *uuid.UUID
	Status   string
}

func (s *OrderService) List(ctx context.Context, userID uuid.UUID, filter OrderFilter) ([]models.Order, error) {
	query := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID)

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != "" {
		if !models.ValidOrderStatus(filter.Status) {
			return nil, ErrInvalidStatus
		}
		query = query.Where("status = ?", filter.Status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.db.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *OrderService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// Cost computes the order's cost price: each ordered product contributes the
// current cost of every recipe bound to it, multiplied by the item quantity.
// Ingredients without prices are reported rather than failing the whole
// calculation.
func (s *OrderService) Cost(ctx context.Context, userID, id uuid.UUID) (*types.OrderCost, error) {
	order, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	lookup := s.prices.Lookup(userID)
	total := decimal.Zero
	unpriced := make(map[string]struct{})

	for _, item := range order.Items {
		var options []models.ProductOption
		if err := s.db.WithContext(ctx).Where("product_id = ?", item.ProductID).Find(&options).Error; err != nil {
			return nil, err
		}

		itemCost := decimal.Zero
		for _, option := range options {
			var recipe models.Recipe
			err := s.db.WithContext(ctx).
				Preload("Entries").
				Preload("Entries.Ingredient").
				First(&recipe, "id = ?", option.RecipeID).Error
			if err != nil {
				return nil, err
			}

			result, err := costing.AggregateRecipeCost(ctx, toCostingEntries(recipe.Entries), lookup)
			if err != nil {
				return nil, err
			}
			itemCost = itemCost.Add(result.Total)
			for _, entry := range result.Entries {
				if !entry.Priced {
					unpriced[entry.Name] = struct{}{}
				}
			}
		}
		total = total.Add(itemCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	cost := types.OrderCost{
		OrderID:   order.ID.String(),
		CostPrice: total,
	}
	for name := range unpriced {
		cost.Unpriced = append(cost.Unpriced, name)
	}
	sort.Strings(cost.Unpriced)
	return &cost, nil
}
