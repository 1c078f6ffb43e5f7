package primary

import "context"

// LedgerService defines the primary port for reading the stock ledger.
type LedgerService interface {
	// ListMovements retrieves ledger entries, newest first.
	ListMovements(ctx context.Context, filters MovementFilters) ([]*Movement, error)
}

// MovementFilters contains filter options for querying the ledger.
type MovementFilters struct {
	Name   string
	Colour string
	Action string
	Limit  int
}

// Movement represents one ledger entry at the port boundary.
type Movement struct {
	ID         string
	CheckoutID string
	Actor      string
	Action     string
	Category   string
	Name       string
	Colour     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
