package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenledger/backend/internal/database"
	"github.com/ovenledger/backend/internal/testhelpers"
)

func TestRunSQLMigrations(t *testing.T) {
	db := testhelpers.StartPostgres(t)

	require.NoError(t, database.RunSQLMigrations(db, "../../migrations"))

	// Applying twice must be a no-op.
	require.NoError(t, database.RunSQLMigrations(db, "../../migrations"))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)

	for _, table := range []string{
		"users", "ingredients", "price_records", "recipes", "recipe_ingredients",
		"cooking_sessions", "cooking_session_ingredients", "clients",
		"products", "packages", "product_options", "orders", "order_items",
	} {
		var exists bool
		err := db.QueryRow(
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)",
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}
}
