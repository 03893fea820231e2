package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenledger/backend/internal/service"
	"github.com/ovenledger/backend/internal/types"
)

type SessionHandler struct {
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/cooking-sessions")
	{
		sessions.GET("", h.List)
		sessions.POST("", h.Create)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Delete)
	}
}

func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe_id"})
		return
	}

	cookedAt := time.Now()
	if req.CookedAt != nil {
		cookedAt = *req.CookedAt
	}

	used, err := toEntryInputs(req.Ingredients)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.Create(c.Request.Context(), userID, recipeID, cookedAt, req.Yield, used)
	if err != nil {
		respondError(c, err, "Failed to create cooking session")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// List returns the user's cooking sessions with their frozen totals.
// Supports ?recipe_id= and ?date= filters.
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := service.SessionFilter{}
	if raw := c.Query("recipe_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe_id"})
			return
		}
		filter.RecipeID = &id
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	sessions, err := h.sessions.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "Failed to fetch cooking sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *SessionHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "Failed to fetch cooking session")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "Failed to delete cooking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cooking session deleted successfully"})
}
