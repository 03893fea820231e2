package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenledger/backend/internal/service"
	"github.com/ovenledger/backend/internal/types"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.POST("", h.Create)
		recipes.GET("/names", h.Names)
		recipes.GET("/:id", h.Get)
		recipes.DELETE("/:id", h.Delete)
		recipes.POST("/:id/ingredients", h.AddEntry)
		recipes.DELETE("/:id/ingredients/:ingredient_id", h.RemoveEntry)
	}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := toEntryInputs(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, req.Name, entries)
	if err != nil {
		respondError(c, err, "Failed to create recipe")
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// List returns the user's recipes with costs recomputed from the latest
// prices. Supports ?name= and ?ingredient= filters.
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), userID, c.Query("name"), c.Query("ingredient"))
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "Failed to fetch recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Names(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	names, err := h.recipes.Names(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch recipe names")
		return
	}
	c.JSON(http.StatusOK, gin.H{"names": names})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "Failed to delete recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

func (h *RecipeHandler) AddEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req types.RecipeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := toEntryInputs([]types.RecipeEntryRequest{req})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recipes.AddEntry(c.Request.Context(), userID, id, entries[0]); err != nil {
		respondError(c, err, "Failed to add recipe entry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Entry added successfully"})
}

func (h *RecipeHandler) RemoveEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ingredientID, ok := parseIDParam(c, "ingredient_id")
	if !ok {
		return
	}

	if err := h.recipes.RemoveEntry(c.Request.Context(), userID, id, ingredientID); err != nil {
		respondError(c, err, "Failed to remove recipe entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry removed successfully"})
}

func toEntryInputs(reqs []types.RecipeEntryRequest) ([]service.EntryInput, error) {
	entries := make([]service.EntryInput, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.IngredientID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, service.EntryInput{
			IngredientID: id,
			Quantity:     r.Quantity,
			Unit:         r.Unit,
		})
	}
	return entries, nil
}
