package primary

import "context"

// InventoryService defines the primary port for inventory operations.
// Every call loads the inventory file fresh and rewrites it after a mutation.
type InventoryService interface {
	// InitInventory creates an empty inventory file with the default header.
	InitInventory(ctx context.Context) error

	// AddItem adds a new record.
	AddItem(ctx context.Context, req AddItemRequest) (*Item, error)

	// RemoveItem removes the record for name and colour.
	RemoveItem(ctx context.Context, name, colour string) (*Item, error)

	// SetPrice changes the price of a record.
	SetPrice(ctx context.Context, req SetPriceRequest) (*ItemChange, error)

	// AdjustQuantity takes purchased items out of stock.
	AdjustQuantity(ctx context.Context, req AdjustQuantityRequest) (*ItemChange, error)

	// PurchaseItems takes every line out of stock in one write, or none of them.
	PurchaseItems(ctx context.Context, lines []PurchaseLine) ([]*ItemChange, error)

	// GetItem retrieves the record for name and colour.
	GetItem(ctx context.Context, name, colour string) (*Item, error)

	// GetPrice returns the unit price of a record.
	GetPrice(ctx context.Context, name, colour string) (int, error)

	// GetQuantity returns how many of a record are in stock.
	GetQuantity(ctx context.Context, name, colour string) (int, error)

	// ListItems returns the header and every record in file order.
	ListItems(ctx context.Context) (*Inventory, error)

	// ItemsByColour returns the names of all items in a colour.
	ItemsByColour(ctx context.Context, colour string) ([]string, error)

	// ColoursOfItem returns every colour an item comes in.
	ColoursOfItem(ctx context.Context, name string) ([]string, error)

	// LowStock returns "colour name" labels for items below threshold.
	LowStock(ctx context.Context, threshold int) ([]string, error)
}

// AddItemRequest contains parameters for adding a record.
type AddItemRequest struct {
	Category string
	Name     string
	Colour   string
	Price    int
	Quantity int
}

// SetPriceRequest contains parameters for a price change.
type SetPriceRequest struct {
	Name     string
	Colour   string
	NewPrice int
}

// AdjustQuantityRequest contains parameters for taking items out of stock.
type AdjustQuantityRequest struct {
	Name   string
	Colour string
	Amount int // items purchased
}

// PurchaseLine is one line of a multi-item purchase.
type PurchaseLine struct {
	Name     string
	Colour   string
	Quantity int
}

// Item represents an inventory record at the port boundary.
type Item struct {
	Category string
	Name     string
	Colour   string
	Price    int
	Quantity int
}

// ItemChange holds a record before and after a mutation.
type ItemChange struct {
	Before *Item
	After  *Item
}

// Inventory is the full content of the inventory file.
type Inventory struct {
	Header []string
	Items  []*Item
}
