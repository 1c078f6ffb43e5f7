package wire

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/stockroom/internal/adapters/csvfile"
	"github.com/example/stockroom/internal/adapters/sqlite"
	"github.com/example/stockroom/internal/app"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

func TestLazyLedger_ReadsDoNotCreateDatabase(t *testing.T) {
	dir := t.TempDir()
	ledgerDir := filepath.Join(dir, ".stockroom")
	inv := app.NewInventoryService(
		csvfile.NewInventoryRepository(filepath.Join(dir, "store_items.csv")),
		sqlite.NewLedgerWriterAdapter(newLazyLedger(filepath.Join(ledgerDir, "ledger.db"), zap.NewNop())),
		zap.NewNop(),
	)
	ctx := context.Background()

	require.NoError(t, inv.InitInventory(ctx))
	_, err := inv.ListItems(ctx)
	require.NoError(t, err)
	_, err = inv.ItemsByColour(ctx, "grey")
	require.NoError(t, err)
	_, err = inv.LowStock(ctx, 50)
	require.NoError(t, err)
	assert.NoDirExists(t, ledgerDir)

	_, err = inv.AddItem(ctx, primary.AddItemRequest{
		Category: "clothes", Name: "pants", Colour: "grey", Price: 60, Quantity: 80,
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(ledgerDir, "ledger.db"))
}

func TestLazyLedger_OpensOnFirstUse(t *testing.T) {
	ledgerPath := filepath.Join(t.TempDir(), "ledger.db")
	ledger := newLazyLedger(ledgerPath, zap.NewNop())
	ctx := context.Background()

	assert.NoFileExists(t, ledgerPath)

	id, err := ledger.GetNextID(ctx)
	require.NoError(t, err)
	require.FileExists(t, ledgerPath)

	require.NoError(t, ledger.Create(ctx, &secondary.MovementRecord{
		ID: id, Actor: "till-1", Action: secondary.ActionAdd,
		Category: "clothes", Name: "pants", Colour: "grey",
	}))

	movements, err := ledger.List(ctx, secondary.MovementFilters{})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, id, movements[0].ID)
}

func TestLazyLedger_OpenFailureIsRemembered(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	ledger := newLazyLedger(filepath.Join(blocker, "ledger.db"), zap.NewNop())
	ctx := context.Background()

	_, err := ledger.List(ctx, secondary.MovementFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock ledger unavailable")

	err = ledger.Create(ctx, &secondary.MovementRecord{ID: "MOV-001"})
	assert.ErrorIs(t, err, ledger.err)
}
