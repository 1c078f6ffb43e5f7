package app

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/ports/secondary"
)

// InventoryServiceImpl implements the InventoryService interface.
// Each operation loads the file, works on the in-memory copy and persists it.
type InventoryServiceImpl struct {
	inventoryRepo secondary.InventoryRepository
	ledger        secondary.LedgerWriter
	logger        *zap.Logger
}

// NewInventoryService creates a new InventoryService with injected dependencies.
// ledger may be nil to skip the stock ledger.
func NewInventoryService(inventoryRepo secondary.InventoryRepository, ledger secondary.LedgerWriter, logger *zap.Logger) *InventoryServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryServiceImpl{
		inventoryRepo: inventoryRepo,
		ledger:        ledger,
		logger:        logger,
	}
}

// InitInventory creates an empty inventory file with the default header.
func (s *InventoryServiceImpl) InitInventory(ctx context.Context) error {
	if err := s.inventoryRepo.Create(ctx, inventory.DefaultHeader()); err != nil {
		return fmt.Errorf("failed to create inventory: %w", err)
	}
	return nil
}

// AddItem adds a new record.
func (s *InventoryServiceImpl) AddItem(ctx context.Context, req primary.AddItemRequest) (*primary.Item, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	record := inventory.Record{
		Category: req.Category,
		Name:     req.Name,
		Colour:   req.Colour,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if err := db.Add(record); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, db); err != nil {
		return nil, err
	}

	s.logger.Info("item added", zap.String("name", record.Name), zap.String("colour", record.Colour))
	s.recordMovement(secondary.ActionAdd, record, func() error { return s.ledger.LogCreate(ctx, record) })

	return recordToItem(record), nil
}

// RemoveItem removes the record for name and colour.
func (s *InventoryServiceImpl) RemoveItem(ctx context.Context, name, colour string) (*primary.Item, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	removed, err := db.Remove(name, colour)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, db); err != nil {
		return nil, err
	}

	s.logger.Info("item removed", zap.String("name", name), zap.String("colour", colour))
	s.recordMovement(secondary.ActionRemove, removed, func() error { return s.ledger.LogDelete(ctx, removed) })

	return recordToItem(removed), nil
}

// SetPrice changes the price of a record.
func (s *InventoryServiceImpl) SetPrice(ctx context.Context, req primary.SetPriceRequest) (*primary.ItemChange, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	before, err := db.SetPrice(req.Name, req.Colour, req.NewPrice)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, db); err != nil {
		return nil, err
	}

	after, _ := db.Find(req.Name, req.Colour)
	s.logger.Info("price updated",
		zap.String("name", req.Name),
		zap.String("colour", req.Colour),
		zap.Int("old_price", before.Price),
		zap.Int("new_price", after.Price),
	)
	s.recordMovement(secondary.ActionPrice, after, func() error {
		return s.ledger.LogUpdate(ctx, after, secondary.ActionPrice, "price",
			strconv.Itoa(before.Price), strconv.Itoa(after.Price))
	})

	return &primary.ItemChange{Before: recordToItem(before), After: recordToItem(after)}, nil
}

// AdjustQuantity takes purchased items out of stock.
func (s *InventoryServiceImpl) AdjustQuantity(ctx context.Context, req primary.AdjustQuantityRequest) (*primary.ItemChange, error) {
	changes, err := s.PurchaseItems(ctx, []primary.PurchaseLine{{
		Name:     req.Name,
		Colour:   req.Colour,
		Quantity: req.Amount,
	}})
	if err != nil {
		return nil, err
	}
	return changes[0], nil
}

// PurchaseItems takes every line out of stock in one write, or none of them.
func (s *InventoryServiceImpl) PurchaseItems(ctx context.Context, lines []primary.PurchaseLine) ([]*primary.ItemChange, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	befores := make([]inventory.Record, 0, len(lines))
	for i, line := range lines {
		before, err := db.Purchase(line.Name, line.Colour, line.Quantity)
		if err != nil {
			if len(lines) == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		befores = append(befores, before)
	}

	if err := s.persist(ctx, db); err != nil {
		return nil, err
	}

	changes := make([]*primary.ItemChange, 0, len(lines))
	for i, before := range befores {
		// quantities after this line only, so repeated lines read as steps
		after := before
		after.Quantity -= lines[i].Quantity

		s.logger.Info("stock purchased",
			zap.String("name", after.Name),
			zap.String("colour", after.Colour),
			zap.Int("amount", lines[i].Quantity),
			zap.Int("remaining", after.Quantity),
		)
		s.recordMovement(secondary.ActionPurchase, after, func() error {
			return s.ledger.LogUpdate(ctx, after, secondary.ActionPurchase, "quantity",
				strconv.Itoa(before.Quantity), strconv.Itoa(after.Quantity))
		})

		changes = append(changes, &primary.ItemChange{Before: recordToItem(before), After: recordToItem(after)})
	}

	return changes, nil
}

// GetItem retrieves the record for name and colour.
func (s *InventoryServiceImpl) GetItem(ctx context.Context, name, colour string) (*primary.Item, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := db.Find(name, colour)
	if !ok {
		return nil, fmt.Errorf("%w: %s", inventory.ErrNotFound, inventory.Key{Name: name, Colour: colour})
	}
	return recordToItem(record), nil
}

// GetPrice returns the unit price of a record.
func (s *InventoryServiceImpl) GetPrice(ctx context.Context, name, colour string) (int, error) {
	item, err := s.GetItem(ctx, name, colour)
	if err != nil {
		return 0, err
	}
	return item.Price, nil
}

// GetQuantity returns how many of a record are in stock.
func (s *InventoryServiceImpl) GetQuantity(ctx context.Context, name, colour string) (int, error) {
	item, err := s.GetItem(ctx, name, colour)
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

// ListItems returns the header and every record in file order.
func (s *InventoryServiceImpl) ListItems(ctx context.Context) (*primary.Inventory, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	records := db.Records()
	items := make([]*primary.Item, len(records))
	for i, r := range records {
		items[i] = recordToItem(r)
	}

	return &primary.Inventory{
		Header: db.Header(),
		Items:  items,
	}, nil
}

// ItemsByColour returns the names of all items in a colour.
func (s *InventoryServiceImpl) ItemsByColour(ctx context.Context, colour string) ([]string, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return db.ItemsByColour(colour), nil
}

// ColoursOfItem returns every colour an item comes in.
func (s *InventoryServiceImpl) ColoursOfItem(ctx context.Context, name string) ([]string, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return db.ColoursOfItem(name), nil
}

// LowStock returns "colour name" labels for items below threshold.
func (s *InventoryServiceImpl) LowStock(ctx context.Context, threshold int) ([]string, error) {
	db, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return db.LowStock(threshold), nil
}

// Helper methods

func (s *InventoryServiceImpl) load(ctx context.Context) (*inventory.Database, error) {
	snapshot, err := s.inventoryRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	s.logger.Debug("inventory loaded", zap.Int("records", len(snapshot.Records)))
	return inventory.NewDatabase(snapshot.Header, snapshot.Records), nil
}

func (s *InventoryServiceImpl) persist(ctx context.Context, db *inventory.Database) error {
	records := db.Records()
	inventory.SortByCategory(records)

	err := s.inventoryRepo.Persist(ctx, &secondary.InventorySnapshot{
		Header:  db.Header(),
		Records: records,
	})
	if err != nil {
		return fmt.Errorf("failed to persist inventory: %w", err)
	}

	s.logger.Debug("inventory persisted", zap.Int("records", len(records)))
	return nil
}

// recordMovement writes to the ledger. The inventory file is the source of
// truth, so a ledger failure is logged and the operation still succeeds.
func (s *InventoryServiceImpl) recordMovement(action string, r inventory.Record, write func() error) {
	if s.ledger == nil {
		return
	}
	if err := write(); err != nil {
		s.logger.Warn("failed to record stock movement",
			zap.String("action", action),
			zap.String("name", r.Name),
			zap.String("colour", r.Colour),
			zap.Error(err),
		)
	}
}

func recordToItem(r inventory.Record) *primary.Item {
	return &primary.Item{
		Category: r.Category,
		Name:     r.Name,
		Colour:   r.Colour,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}

// Ensure InventoryServiceImpl implements the interface.
var _ primary.InventoryService = (*InventoryServiceImpl)(nil)
