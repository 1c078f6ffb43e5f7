package secondary

import (
	"context"

	"github.com/example/stockroom/internal/core/inventory"
)

// InventorySnapshot is the full content of the inventory file.
type InventorySnapshot struct {
	Header  inventory.Header
	Records []inventory.Record
}

// InventoryRepository defines the secondary port for the flat-file record store.
type InventoryRepository interface {
	// Create writes a new inventory file holding only the header.
	// Fails if the file already exists.
	Create(ctx context.Context, header inventory.Header) error

	// Load reads the header and every record in file order.
	Load(ctx context.Context) (*InventorySnapshot, error)

	// Persist replaces the file content with the snapshot, rows in the given order.
	Persist(ctx context.Context, snapshot *InventorySnapshot) error
}

// Ledger actions.
const (
	ActionAdd      = "add"
	ActionRemove   = "remove"
	ActionPrice    = "price"
	ActionPurchase = "purchase"
)

// MovementRecord represents a ledger entry as stored in persistence.
type MovementRecord struct {
	ID         string
	CheckoutID string // Empty string means null
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

// MovementFilters contains filter options for querying the ledger.
type MovementFilters struct {
	Name   string
	Colour string
	Action string
	Limit  int
}

// LedgerRepository defines the secondary port for stock ledger persistence.
type LedgerRepository interface {
	// Create persists a new ledger entry.
	Create(ctx context.Context, movement *MovementRecord) error

	// List retrieves ledger entries matching the filters, newest first.
	List(ctx context.Context, filters MovementFilters) ([]*MovementRecord, error)

	// GetNextID returns the next available movement ID.
	GetNextID(ctx context.Context) (string, error)
}

// LedgerWriter records inventory mutations.
// Actor and checkout ID are taken from the context.
type LedgerWriter interface {
	// LogCreate records an added item.
	LogCreate(ctx context.Context, item inventory.Record) error

	// LogUpdate records a change to one field of an item.
	LogUpdate(ctx context.Context, item inventory.Record, action, fieldName, oldValue, newValue string) error

	// LogDelete records a removed item.
	LogDelete(ctx context.Context, item inventory.Record) error
}
