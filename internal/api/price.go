package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenledger/backend/internal/service"
	"github.com/ovenledger/backend/internal/types"
)

type PriceHandler struct {
	prices *service.PriceService
}

func NewPriceHandler(prices *service.PriceService) *PriceHandler {
	return &PriceHandler{prices: prices}
}

func (h *PriceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prices := router.Group("/prices")
	{
		prices.GET("", h.List)
		prices.POST("", h.Create)
	}
}

func (h *PriceHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient_id"})
		return
	}

	record, err := h.prices.Create(c.Request.Context(), userID, ingredientID,
		decimal.NewFromFloat(req.Price), req.Quantity, req.Unit)
	if err != nil {
		respondError(c, err, "Failed to record price")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *PriceHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := service.PriceFilter{
		SortColumn:    c.Query("sort"),
		SortAscending: c.Query("order") == "asc",
	}
	if raw := c.Query("ingredient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient_id"})
			return
		}
		filter.IngredientID = &id
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	records, err := h.prices.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "Failed to fetch prices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": records})
}
