package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/ovenledger/backend/config"
	"github.com/ovenledger/backend/internal/database"
	"github.com/ovenledger/backend/internal/models"
	"github.com/ovenledger/backend/internal/service"
)

// Seeds a development database with a demo user, a small ingredient
// catalogue with prices and one recipe. Safe to run only against an empty
// database.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	authService := service.NewAuthService(db, cfg.JWTSecret)
	ingredientService := service.NewIngredientService(db)
	priceService := service.NewPriceService(db)
	recipeService := service.NewRecipeService(db, priceService)

	if _, err := authService.Register("Demo Baker", "demo@example.com", "password123"); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	var user models.User
	if err := db.First(&user, "email = ?", "demo@example.com").Error; err != nil {
		log.Fatalf("Failed to load demo user: %v", err)
	}

	seed := []struct {
		name, category, unit string
		price                string
		quantity             float64
	}{
		{"flour", "base", "kg", "100", 1},
		{"sugar", "base", "kg", "80", 1},
		{"butter", "base", "kg", "600", 1},
		{"salt", "spice", "g", "20", 500},
		{"vanilla", "spice", "g", "50", 10},
		{"cream", "sauce", "ml", "120", 500},
		{"electricity", "electricity", "hh", "8", 1},
		{"box", "packing", "pieces", "15", 1},
	}

	entries := make([]service.EntryInput, 0, 3)
	for _, row := range seed {
		ingredient, err := ingredientService.Create(ctx, row.name, row.category)
		if err != nil {
			log.Fatalf("Failed to create ingredient %s: %v", row.name, err)
		}
		price := decimal.RequireFromString(row.price)
		if _, err := priceService.Create(ctx, user.ID, ingredient.ID, price, row.quantity, row.unit); err != nil {
			log.Fatalf("Failed to record price for %s: %v", row.name, err)
		}

		switch row.name {
		case "flour":
			entries = append(entries, service.EntryInput{IngredientID: ingredient.ID, Quantity: 500, Unit: "g"})
		case "sugar":
			entries = append(entries, service.EntryInput{IngredientID: ingredient.ID, Quantity: 200, Unit: "g"})
		case "butter":
			entries = append(entries, service.EntryInput{IngredientID: ingredient.ID, Quantity: 250, Unit: "g"})
		}
	}

	recipe, err := recipeService.Create(ctx, user.ID, "shortbread", entries)
	if err != nil {
		log.Fatalf("Failed to create recipe: %v", err)
	}

	costed, err := recipeService.Get(ctx, user.ID, recipe.ID)
	if err != nil {
		log.Fatalf("Failed to cost recipe: %v", err)
	}
	log.Printf("Seeded demo data: recipe %q costs %s", costed.Name, costed.TotalCost)
}
