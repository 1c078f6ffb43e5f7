package sqlite

import (
	"context"

	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ctxutil"
	"github.com/example/stockroom/internal/ports/secondary"
)

// LedgerWriterAdapter implements secondary.LedgerWriter using LedgerRepository.
type LedgerWriterAdapter struct {
	ledgerRepo secondary.LedgerRepository
}

// NewLedgerWriterAdapter creates a new LedgerWriterAdapter.
func NewLedgerWriterAdapter(ledgerRepo secondary.LedgerRepository) *LedgerWriterAdapter {
	return &LedgerWriterAdapter{ledgerRepo: ledgerRepo}
}

// LogCreate records an added item.
func (w *LedgerWriterAdapter) LogCreate(ctx context.Context, item inventory.Record) error {
	return w.writeMovement(ctx, item, secondary.ActionAdd, "", "", "")
}

// LogUpdate records a change to one field of an item.
func (w *LedgerWriterAdapter) LogUpdate(ctx context.Context, item inventory.Record, action, fieldName, oldValue, newValue string) error {
	return w.writeMovement(ctx, item, action, fieldName, oldValue, newValue)
}

// LogDelete records a removed item.
func (w *LedgerWriterAdapter) LogDelete(ctx context.Context, item inventory.Record) error {
	return w.writeMovement(ctx, item, secondary.ActionRemove, "", "", "")
}

// writeMovement writes a ledger entry with common logic.
func (w *LedgerWriterAdapter) writeMovement(ctx context.Context, item inventory.Record, action, fieldName, oldValue, newValue string) error {
	id, err := w.ledgerRepo.GetNextID(ctx)
	if err != nil {
		return err
	}

	record := &secondary.MovementRecord{
		ID:         id,
		CheckoutID: ctxutil.CheckoutIDFromContext(ctx),
		Actor:      ctxutil.ActorFromContext(ctx),
		Action:     action,
		Category:   item.Category,
		Name:       item.Name,
		Colour:     item.Colour,
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	return w.ledgerRepo.Create(ctx, record)
}

// Ensure LedgerWriterAdapter implements the interface
var _ secondary.LedgerWriter = (*LedgerWriterAdapter)(nil)
