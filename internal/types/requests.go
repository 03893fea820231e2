package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type CreateIngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type CreatePriceRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"required"`
}

type CreateRecipeRequest struct {
	Name    string               `json:"name" binding:"required"`
	Entries []RecipeEntryRequest `json:"entries"`
}

type RecipeEntryRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"required"`
}

type CreateSessionRequest struct {
	RecipeID    string               `json:"recipe_id" binding:"required,uuid"`
	CookedAt    *time.Time           `json:"cooked_at"`
	Yield       string               `json:"yield" binding:"required"`
	Ingredients []RecipeEntryRequest `json:"ingredients" binding:"required,min=1,dive"`
}

type ClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	Telegram  string `json:"telegram"`
	Instagram string `json:"instagram"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Source    string `json:"source"`
}

type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	RecipeIDs   []string `json:"recipe_ids" binding:"required,min=1,dive,uuid"`
	PackageID   string   `json:"package_id" binding:"omitempty,uuid"`
}

type CreatePackageRequest struct {
	Name string `json:"name" binding:"required"`
}

type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	ClientID string             `json:"client_id" binding:"required,uuid"`
	Status   string             `json:"status"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// DashboardStats is the aggregate snapshot shown on the landing page.
type DashboardStats struct {
	TotalRecipes         int64           `json:"total_recipes"`
	TopRecipes           []RecipeName    `json:"top_recipes"`
	TotalIngredients     int64           `json:"total_ingredients"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	TotalProducts        int64           `json:"total_products"`
	TotalOrders          int64           `json:"total_orders"`
	PendingOrders        []PendingOrder  `json:"pending_orders"`
}

type RecipeName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type PendingOrder struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	ClientName    string `json:"client_name"`
	ClientSurname string `json:"client_surname"`
}

// OrderCost is the derived cost price of an order: every recipe behind every
// ordered product, costed at current prices.
type OrderCost struct {
	OrderID   string          `json:"order_id"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Unpriced  []string        `json:"unpriced,omitempty"`
}
