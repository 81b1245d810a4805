package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdclothing/storefront-backend/pkg/config"
	"github.com/jdclothing/storefront-backend/pkg/db"
	"github.com/jdclothing/storefront-backend/pkg/db/models"
)

func setupCartTestDB(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    "file::memory:",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	carts := `
CREATE TABLE IF NOT EXISTS carts (
  id TEXT PRIMARY KEY,
  token TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`
	cartLines := `
CREATE TABLE IF NOT EXISTS cart_lines (
  id TEXT PRIMARY KEY,
  cart_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  image TEXT,
  color TEXT NOT NULL,
  size TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`

	require.NoError(t, client.DB().Exec(carts).Error)
	require.NoError(t, client.DB().Exec(cartLines).Error)
	return client
}

func TestFindOrCreateByToken(t *testing.T) {
	client := setupCartTestDB(t)
	repo, err := NewRepository(client)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", created.Token)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Empty(t, created.Lines)

	found, err := repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	other, err := repo.FindOrCreateByToken(ctx, "tok-2")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestReplaceLinesRoundTrip(t *testing.T) {
	client := setupCartTestDB(t)
	repo, err := NewRepository(client)
	require.NoError(t, err)
	ctx := context.Background()

	cart, err := repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)

	lines := []models.CartLine{
		{ProductID: "hoodie-01", Name: "Fleece Hoodie", Price: decimal.RequireFromString("29.99"), Color: "black", Size: "m", Quantity: 2},
		{ProductID: "tee-01", Name: "Logo Tee", Price: decimal.RequireFromString("19.50"), Color: "white", Size: "m", Quantity: 1},
	}
	require.NoError(t, repo.ReplaceLines(ctx, cart.ID, lines))

	loaded, err := repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 2)
	assert.Equal(t, 0, loaded.Lines[0].Position)
	assert.Equal(t, "hoodie-01", loaded.Lines[0].ProductID)
	assert.Equal(t, 1, loaded.Lines[1].Position)
	assert.NotEqual(t, uuid.Nil, loaded.Lines[0].ID)

	// shrinking the set removes the dropped rows
	require.NoError(t, repo.ReplaceLines(ctx, cart.ID, loaded.Lines[1:]))

	loaded, err = repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, "tee-01", loaded.Lines[0].ProductID)
	assert.Equal(t, 0, loaded.Lines[0].Position)
}

func TestReplaceLinesClears(t *testing.T) {
	client := setupCartTestDB(t)
	repo, err := NewRepository(client)
	require.NoError(t, err)
	ctx := context.Background()

	cart, err := repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceLines(ctx, cart.ID, []models.CartLine{
		{ProductID: "hoodie-01", Name: "Fleece Hoodie", Price: decimal.RequireFromString("29.99"), Color: "black", Size: "m", Quantity: 1},
	}))
	require.NoError(t, repo.ReplaceLines(ctx, cart.ID, nil))

	loaded, err := repo.FindOrCreateByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Lines)
}
