package wire

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/stockroom/internal/config"
	"github.com/example/stockroom/internal/ctxutil"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

func TestInventoryPath(t *testing.T) {
	saved := opts
	t.Cleanup(func() { opts = saved })

	Configure(Options{Dir: "/srv/shop", Config: &config.Config{InventoryFile: "items.csv"}})
	assert.Equal(t, filepath.Join("/srv/shop", "items.csv"), InventoryPath())

	Configure(Options{Dir: "/srv/shop", Config: &config.Config{InventoryFile: "/data/items.csv"}})
	assert.Equal(t, "/data/items.csv", InventoryPath())

	Configure(Options{})
	assert.Equal(t, config.DefaultInventoryFile, InventoryPath())
	assert.Equal(t, config.DefaultMinStock, Config().MinStock)
}

// TestServices exercises the full stack once; services are singletons.
func TestServices(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.InventoryFile = "store_items.csv"
	Configure(Options{Dir: dir, Config: cfg})

	ctx := ctxutil.WithActorID(context.Background(), "till-1")

	require.NoError(t, InventoryService().InitInventory(ctx))
	require.FileExists(t, filepath.Join(dir, "store_items.csv"))

	_, err := InventoryService().AddItem(ctx, primary.AddItemRequest{
		Category: "clothes",
		Name:     "shirt",
		Colour:   "white",
		Price:    20,
		Quantity: 120,
	})
	require.NoError(t, err)

	receipt, err := CheckoutService().CompletePurchase(ctx, primary.CheckoutRequest{
		Budget: 100,
		Lines:  []primary.PurchaseLine{{Name: "shirt", Colour: "white", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 60, receipt.Change)

	qty, err := InventoryService().GetQuantity(ctx, "shirt", "white")
	require.NoError(t, err)
	assert.Equal(t, 118, qty)

	movements, err := LedgerService().ListMovements(ctx, primary.MovementFilters{})
	require.NoError(t, err)
	require.Len(t, movements, 2)

	// newest first
	assert.Equal(t, secondary.ActionPurchase, movements[0].Action)
	assert.Equal(t, receipt.CheckoutID, movements[0].CheckoutID)
	assert.Equal(t, "till-1", movements[0].Actor)
	assert.Equal(t, secondary.ActionAdd, movements[1].Action)
	assert.Empty(t, movements[1].CheckoutID)
}
