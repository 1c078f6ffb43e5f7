package app

import (
	"context"
	"fmt"

	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

// LedgerServiceImpl implements the LedgerService interface.
type LedgerServiceImpl struct {
	ledgerRepo secondary.LedgerRepository
}

// NewLedgerService creates a new LedgerService with injected dependencies.
func NewLedgerService(ledgerRepo secondary.LedgerRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
	}
}

// ListMovements retrieves ledger entries, newest first.
func (s *LedgerServiceImpl) ListMovements(ctx context.Context, filters primary.MovementFilters) ([]*primary.Movement, error) {
	records, err := s.ledgerRepo.List(ctx, secondary.MovementFilters{
		Name:   filters.Name,
		Colour: filters.Colour,
		Action: filters.Action,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	movements := make([]*primary.Movement, len(records))
	for i, r := range records {
		movements[i] = s.recordToMovement(r)
	}
	return movements, nil
}

// Helper methods

func (s *LedgerServiceImpl) recordToMovement(r *secondary.MovementRecord) *primary.Movement {
	return &primary.Movement{
		ID:         r.ID,
		CheckoutID: r.CheckoutID,
		Actor:      r.Actor,
		Action:     r.Action,
		Category:   r.Category,
		Name:       r.Name,
		Colour:     r.Colour,
		FieldName:  r.FieldName,
		OldValue:   r.OldValue,
		NewValue:   r.NewValue,
		CreatedAt:  r.CreatedAt,
	}
}

// Ensure LedgerServiceImpl implements the interface.
var _ primary.LedgerService = (*LedgerServiceImpl)(nil)
