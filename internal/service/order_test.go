package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenledger/backend/internal/models"
	"github.com/ovenledger/backend/internal/testhelpers"
	"github.com/ovenledger/backend/internal/types"
)

type orderFixture struct {
	ingredients *IngredientService
	prices      *PriceService
	recipes     *RecipeService
	clients     *ClientService
	products    *ProductService
	orders      *OrderService
	userID      uuid.UUID
}

func setupOrderFixture(t *testing.T) *orderFixture {
	db := testhelpers.SetupTestDB(t)
	prices := NewPriceService(db)
	return &orderFixture{
		ingredients: NewIngredientService(db),
		prices:      prices,
		recipes:     NewRecipeService(db, prices),
		clients:     NewClientService(db),
		products:    NewProductService(db, nil),
		orders:      NewOrderService(db, prices),
		userID:      uuid.New(),
	}
}

func (f *orderFixture) makeClient(t *testing.T) *models.Client {
	client, err := f.clients.Create(context.Background(), f.userID, types.ClientRequest{
		Name:    "Anna",
		Surname: "Smith",
	})
	require.NoError(t, err)
	return client
}

// makeProduct creates a product backed by a single recipe that costs 50.2 at
// current prices.
func (f *orderFixture) makeProduct(t *testing.T) *models.Product {
	ctx := context.Background()

	flour, err := f.ingredients.Create(ctx, "flour", "base")
	require.NoError(t, err)
	salt, err := f.ingredients.Create(ctx, "salt", "spice")
	require.NoError(t, err)
	_, err = f.prices.Create(ctx, f.userID, flour.ID, decimal.RequireFromString("100"), 1, "kg")
	require.NoError(t, err)
	_, err = f.prices.Create(ctx, f.userID, salt.ID, decimal.RequireFromString("20"), 500, "g")
	require.NoError(t, err)

	recipe, err := f.recipes.Create(ctx, f.userID, "bread", []EntryInput{
		{IngredientID: flour.ID, Quantity: 500, Unit: "g"},
		{IngredientID: salt.ID, Quantity: 5, Unit: "g"},
	})
	require.NoError(t, err)

	product, err := f.products.Create(ctx, f.userID, types.ProductRequest{
		Name:      "bread loaf",
		Price:     120,
		RecipeIDs: []string{recipe.ID.String()},
	})
	require.NoError(t, err)
	return product
}

func TestOrderService_CreateAndGet(t *testing.T) {
	f := setupOrderFixture(t)
	ctx := context.Background()
	client := f.makeClient(t)
	product := f.makeProduct(t)

	order, err := f.orders.Create(ctx, f.userID, types.CreateOrderRequest{
		ClientID: client.ID.String(),
		Items: []types.OrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 2, Price: 120},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Anna", order.Client.Name)
}

func TestOrderService_CreateRejectsUnknownStatus(t *testing.T) {
	f := setupOrderFixture(t)
	client := f.makeClient(t)
	product := f.makeProduct(t)

	_, err := f.orders.Create(context.Background(), f.userID, types.CreateOrderRequest{
		ClientID: client.ID.String(),
		Status:   "shipped",
		Items: []types.OrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 1, Price: 120},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := setupOrderFixture(t)
	ctx := context.Background()
	client := f.makeClient(t)
	product := f.makeProduct(t)

	order, err := f.orders.Create(ctx, f.userID, types.CreateOrderRequest{
		ClientID: client.ID.String(),
		Items: []types.OrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 1, Price: 120},
		},
	})
	require.NoError(t, err)

	updated, err := f.orders.UpdateStatus(ctx, f.userID, order.ID, models.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, updated.Status)

	_, err = f.orders.UpdateStatus(ctx, f.userID, order.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_CostDerivedFromRecipes(t *testing.T) {
	f := setupOrderFixture(t)
	ctx := context.Background()
	client := f.makeClient(t)
	product := f.makeProduct(t)

	order, err := f.orders.Create(ctx, f.userID, types.CreateOrderRequest{
		ClientID: client.ID.String(),
		Items: []types.OrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 3, Price: 120},
		},
	})
	require.NoError(t, err)

	cost, err := f.orders.Cost(ctx, f.userID, order.ID)
	require.NoError(t, err)
	// 3 loaves at 50.2 each.
	assert.True(t, cost.CostPrice.Equal(decimal.RequireFromString("150.6")),
		"expected 150.6, got %s", cost.CostPrice)
	assert.Empty(t, cost.Unpriced)
}

func TestOrderService_CostReportsUnpriced(t *testing.T) {
	f := setupOrderFixture(t)
	ctx := context.Background()
	client := f.makeClient(t)

	saffron, err := f.ingredients.Create(ctx, "saffron", "spice")
	require.NoError(t, err)
	recipe, err := f.recipes.Create(ctx, f.userID, "fancy bread", []EntryInput{
		{IngredientID: saffron.ID, Quantity: 1, Unit: "g"},
	})
	require.NoError(t, err)

	product, err := f.products.Create(ctx, f.userID, types.ProductRequest{
		Name:      "fancy loaf",
		Price:     300,
		RecipeIDs: []string{recipe.ID.String()},
	})
	require.NoError(t, err)

	order, err := f.orders.Create(ctx, f.userID, types.CreateOrderRequest{
		ClientID: client.ID.String(),
		Items: []types.OrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 1, Price: 300},
		},
	})
	require.NoError(t, err)

	cost, err := f.orders.Cost(ctx, f.userID, order.ID)
	require.NoError(t, err)
	assert.True(t, cost.CostPrice.IsZero())
	assert.Equal(t, []string{"saffron"}, cost.Unpriced)
}

func TestOrderService_ListFilters(t *testing.T) {
	f := setupOrderFixture(t)
	ctx := context.Background()
	client := f.makeClient(t)
	product := f.makeProduct(t)

	order, err := f.orders.Create(ctx, f.userID, types.CreateOrderRequest{
		ClientID: client.ID.String(),
		Items: []types.OrderItemRequest{
			{ProductID: product.ID.String(), Quantity: 1, Price: 120},
		},
	})
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(ctx, f.userID, order.ID, models.OrderStatusFinished)
	require.NoError(t, err)

	finished, err := f.orders.List(ctx, f.userID, OrderFilter{Status: models.OrderStatusFinished})
	require.NoError(t, err)
	assert.Len(t, finished, 1)

	pending, err := f.orders.List(ctx, f.userID, OrderFilter{Status: models.OrderStatusNew})
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = f.orders.List(ctx, f.userID, OrderFilter{Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
