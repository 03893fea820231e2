package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/internal/models"
	"github.com/ovenledger/backend/internal/types"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardService aggregates the landing-page stats. Results are cached in
// Redis per user for a short window; a nil or unreachable Redis degrades to
// querying the database every time.
type DashboardService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewDashboardService(db *gorm.DB, redisClient *redis.Client) *DashboardService {
	return &DashboardService{db: db, redis: redisClient}
}

func dashboardCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:stats:%s", userID)
}

func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*types.DashboardStats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, dashboardCacheKey(userID)).Result(); err == nil {
			var stats types.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.redis.Set(ctx, dashboardCacheKey(userID), data, dashboardCacheTTL)
		}
	}
	return stats, nil
}

// Invalidate drops the cached stats, for callers that just wrote data the
// dashboard reflects.
func (s *DashboardService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if s.redis != nil {
		s.redis.Del(ctx, dashboardCacheKey(userID))
	}
}

func (s *DashboardService) computeStats(ctx context.Context, userID uuid.UUID) (*types.DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := types.DashboardStats{
		TopRecipes:           []types.RecipeName{},
		CategoryDistribution: []types.CategoryCount{},
		PendingOrders:        []types.PendingOrder{},
	}

	if err := db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&stats.TotalRecipes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Ingredient{}).Count(&stats.TotalIngredients).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).Where("user_id = ?", userID).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	// Most recently cooked recipes, deduplicated, newest first.
	var recent []models.CookingSession
	err := db.Preload("Recipe").
		Where("user_id = ?", userID).
		Order("cooked_at DESC").
		Limit(20).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{})
	for _, session := range recent {
		if _, ok := seen[session.RecipeID]; ok {
			continue
		}
		seen[session.RecipeID] = struct{}{}
		stats.TopRecipes = append(stats.TopRecipes, types.RecipeName{
			ID:   session.RecipeID.String(),
			Name: session.Recipe.Name,
		})
		if len(stats.TopRecipes) == 5 {
			break
		}
	}

	rows := []struct {
		Category string
		Count    int64
	}{}
	err = db.Model(&models.Ingredient{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.CategoryDistribution = append(stats.CategoryDistribution, types.CategoryCount{
			Category: row.Category,
			Count:    row.Count,
		})
	}

	var pending []models.Order
	err = db.Preload("Client").
		Where("user_id = ? AND status <> ?", userID, models.OrderStatusFinished).
		Order("created_at DESC").
		Limit(10).
		Find(&pending).Error
	if err != nil {
		return nil, err
	}
	for _, order := range pending {
		stats.PendingOrders = append(stats.PendingOrders, types.PendingOrder{
			ID:            order.ID.String(),
			Status:        order.Status,
			ClientName:    order.Client.Name,
			ClientSurname: order.Client.Surname,
		})
	}

	return &stats, nil
}
