package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/stockroom/internal/core/checkout"
	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ctxutil"
	"github.com/example/stockroom/internal/ports/primary"
)

// CheckoutServiceImpl implements the CheckoutService interface.
type CheckoutServiceImpl struct {
	inventoryService primary.InventoryService
	logger           *zap.Logger
	newID            func() string
}

// NewCheckoutService creates a new CheckoutService with injected dependencies.
func NewCheckoutService(inventoryService primary.InventoryService, logger *zap.Logger) *CheckoutServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutServiceImpl{
		inventoryService: inventoryService,
		logger:           logger,
		newID:            uuid.NewString,
	}
}

// QuoteCart prices a cart against a budget without touching stock.
func (s *CheckoutServiceImpl) QuoteCart(ctx context.Context, req primary.CheckoutRequest) (*primary.Quote, error) {
	q, err := s.quote(ctx, req)
	if err != nil {
		return nil, err
	}

	return &primary.Quote{
		Budget:          q.Budget,
		Total:           q.Total,
		Affordable:      q.Affordable(),
		Change:          q.Change(),
		Shortfall:       q.Shortfall(),
		ConfirmPrompt:   q.ConfirmPrompt(),
		ShortMessage:    q.ShortMessage(),
		DeclinedMessage: checkout.DeclinedMessage,
	}, nil
}

// CompletePurchase re-quotes the cart and, when affordable, takes it out of stock.
func (s *CheckoutServiceImpl) CompletePurchase(ctx context.Context, req primary.CheckoutRequest) (*primary.Receipt, error) {
	q, err := s.quote(ctx, req)
	if err != nil {
		return nil, err
	}
	if !q.Affordable() {
		return nil, fmt.Errorf("%w: %s", checkout.ErrOverBudget, q.ShortMessage())
	}

	checkoutID := s.newID()
	ctx = ctxutil.WithCheckoutID(ctx, checkoutID)

	changes, err := s.inventoryService.PurchaseItems(ctx, req.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to complete purchase: %w", err)
	}

	s.logger.Info("checkout completed",
		zap.String("checkout_id", checkoutID),
		zap.Int("lines", len(req.Lines)),
		zap.Int("total", q.Total),
		zap.Int("change", q.Change()),
	)

	return &primary.Receipt{
		CheckoutID: checkoutID,
		Total:      q.Total,
		Change:     q.Change(),
		Message:    q.PurchasedMessage(),
		Changes:    changes,
	}, nil
}

func (s *CheckoutServiceImpl) quote(ctx context.Context, req primary.CheckoutRequest) (checkout.Quote, error) {
	inv, err := s.inventoryService.ListItems(ctx)
	if err != nil {
		return checkout.Quote{}, err
	}

	// first record wins for a key, matching inventory lookups
	prices := make(map[inventory.Key]int, len(inv.Items))
	for _, item := range inv.Items {
		key := inventory.Key{Name: item.Name, Colour: item.Colour}
		if _, seen := prices[key]; !seen {
			prices[key] = item.Price
		}
	}

	cart := make([]checkout.Line, len(req.Lines))
	for i, l := range req.Lines {
		cart[i] = checkout.Line{Item: l.Name, Colour: l.Colour, Quantity: l.Quantity}
	}

	total, err := checkout.Total(cart, func(item, colour string) (int, bool) {
		p, ok := prices[inventory.Key{Name: item, Colour: colour}]
		return p, ok
	})
	if err != nil {
		return checkout.Quote{}, err
	}

	q, err := checkout.NewQuote(req.Budget, total)
	if err != nil {
		return checkout.Quote{}, err
	}

	s.logger.Debug("cart quoted", zap.Int("budget", q.Budget), zap.Int("total", q.Total))
	return q, nil
}

// Ensure CheckoutServiceImpl implements the interface.
var _ primary.CheckoutService = (*CheckoutServiceImpl)(nil)
