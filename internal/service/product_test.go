package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenledger/backend/internal/testhelpers"
	"github.com/ovenledger/backend/internal/types"
)

func TestProductService_CreateWithOptions(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prices := NewPriceService(db)
	recipes := NewRecipeService(db, prices)
	products := NewProductService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	bread, err := recipes.Create(ctx, userID, "bread", nil)
	require.NoError(t, err)
	baguette, err := recipes.Create(ctx, userID, "baguette", nil)
	require.NoError(t, err)

	pkg, err := products.CreatePackage(ctx, userID, "gift box")
	require.NoError(t, err)

	product, err := products.Create(ctx, userID, types.ProductRequest{
		Name:      "bakery sampler",
		Price:     250,
		RecipeIDs: []string{bread.ID.String(), baguette.ID.String()},
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, product.Options, 2)
	for _, option := range product.Options {
		require.NotNil(t, option.PackageID)
		assert.Equal(t, pkg.ID, *option.PackageID)
	}
}

func TestProductService_CreateRejectsForeignRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prices := NewPriceService(db)
	recipes := NewRecipeService(db, prices)
	products := NewProductService(db, nil)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	recipe, err := recipes.Create(ctx, owner, "bread", nil)
	require.NoError(t, err)

	_, err = products.Create(ctx, stranger, types.ProductRequest{
		Name:      "stolen bread",
		Price:     100,
		RecipeIDs: []string{recipe.ID.String()},
	})
	assert.Error(t, err)
}

func TestProductService_UpdateReplacesOptions(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prices := NewPriceService(db)
	recipes := NewRecipeService(db, prices)
	products := NewProductService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	bread, err := recipes.Create(ctx, userID, "bread", nil)
	require.NoError(t, err)
	baguette, err := recipes.Create(ctx, userID, "baguette", nil)
	require.NoError(t, err)

	product, err := products.Create(ctx, userID, types.ProductRequest{
		Name:      "loaf",
		Price:     100,
		RecipeIDs: []string{bread.ID.String()},
	})
	require.NoError(t, err)

	updated, err := products.Update(ctx, userID, product.ID, types.ProductRequest{
		Name:      "loaf deluxe",
		Price:     150,
		RecipeIDs: []string{baguette.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, "loaf deluxe", updated.Name)
	require.Len(t, updated.Options, 1)
	assert.Equal(t, baguette.ID, updated.Options[0].RecipeID)
}

func TestProductService_DeletePackageRefusedWhenUsed(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prices := NewPriceService(db)
	recipes := NewRecipeService(db, prices)
	products := NewProductService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	recipe, err := recipes.Create(ctx, userID, "bread", nil)
	require.NoError(t, err)
	pkg, err := products.CreatePackage(ctx, userID, "gift box")
	require.NoError(t, err)

	_, err = products.Create(ctx, userID, types.ProductRequest{
		Name:      "loaf",
		Price:     100,
		RecipeIDs: []string{recipe.ID.String()},
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	err = products.DeletePackage(ctx, userID, pkg.ID)
	assert.Error(t, err)
}

func TestProductService_UploadImageWithoutS3(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	products := NewProductService(db, nil)

	_, err := products.UploadImage(context.Background(), uuid.New(), uuid.New(), nil, nil)
	assert.Error(t, err)
}
