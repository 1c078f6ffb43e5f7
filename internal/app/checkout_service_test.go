package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/stockroom/internal/core/checkout"
	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ctxutil"
	"github.com/example/stockroom/internal/ports/primary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// checkoutIDLedger captures the checkout ID carried on the context.
type checkoutIDLedger struct {
	mockLedgerWriter
	checkoutIDs []string
}

func (m *checkoutIDLedger) LogUpdate(ctx context.Context, item inventory.Record, action, fieldName, oldValue, newValue string) error {
	m.checkoutIDs = append(m.checkoutIDs, ctxutil.CheckoutIDFromContext(ctx))
	return m.mockLedgerWriter.LogUpdate(ctx, item, action, fieldName, oldValue, newValue)
}

// ============================================================================
// Test Helper
// ============================================================================

func newTestCheckoutService() (*CheckoutServiceImpl, *mockInventoryRepository, *checkoutIDLedger) {
	repo := newMockInventoryRepository(storeRecords()...)
	ledger := &checkoutIDLedger{}
	service := NewCheckoutService(NewInventoryService(repo, ledger, nil), nil)
	service.newID = func() string { return "chk-1" }
	return service, repo, ledger
}

func shoppingCart(budget int) primary.CheckoutRequest {
	return primary.CheckoutRequest{
		Budget: budget,
		Lines: []primary.PurchaseLine{
			{Name: "shirt", Colour: "white", Quantity: 1},
			{Name: "notebook", Colour: "black", Quantity: 2},
		},
	}
}

// ============================================================================
// QuoteCart Tests
// ============================================================================

func TestQuoteCart_Affordable(t *testing.T) {
	service, repo, _ := newTestCheckoutService()

	quote, err := service.QuoteCart(context.Background(), shoppingCart(100))
	if err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}
	if quote.Total != 50 || quote.Change != 50 || !quote.Affordable {
		t.Errorf("unexpected quote: %+v", quote)
	}
	if quote.ConfirmPrompt != "Yes, your total cost will be $50. Would you like to buy them? (Yes/No) " {
		t.Errorf("unexpected prompt %q", quote.ConfirmPrompt)
	}
	if quote.DeclinedMessage != "See you next time!" {
		t.Errorf("unexpected declined message %q", quote.DeclinedMessage)
	}
	if repo.persistCalls != 0 {
		t.Error("quoting must not touch stock")
	}
}

func TestQuoteCart_Short(t *testing.T) {
	service, _, _ := newTestCheckoutService()

	quote, err := service.QuoteCart(context.Background(), shoppingCart(40))
	if err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}
	if quote.Affordable {
		t.Error("expected cart to be unaffordable")
	}
	if quote.Shortfall != 10 || quote.ShortMessage != "No, you are $10 short" {
		t.Errorf("unexpected shortfall: %+v", quote)
	}
}

func TestQuoteCart_ExactBudget(t *testing.T) {
	service, _, _ := newTestCheckoutService()

	quote, err := service.QuoteCart(context.Background(), shoppingCart(50))
	if err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}
	if !quote.Affordable || quote.Change != 0 {
		t.Errorf("expected exact budget to be affordable with no change, got %+v", quote)
	}
}

func TestQuoteCart_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.CheckoutRequest
		wantErr error
	}{
		{
			name: "unknown item",
			req: primary.CheckoutRequest{
				Budget: 100,
				Lines:  []primary.PurchaseLine{{Name: "hat", Colour: "red", Quantity: 1}},
			},
			wantErr: inventory.ErrNotFound,
		},
		{
			name:    "negative budget",
			req:     primary.CheckoutRequest{Budget: -1},
			wantErr: inventory.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestCheckoutService()

			_, err := service.QuoteCart(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// ============================================================================
// CompletePurchase Tests
// ============================================================================

func TestCompletePurchase_Success(t *testing.T) {
	service, repo, ledger := newTestCheckoutService()
	ctx := context.Background()

	receipt, err := service.CompletePurchase(ctx, shoppingCart(100))
	if err != nil {
		t.Fatalf("CompletePurchase failed: %v", err)
	}
	if receipt.Message != "Thanks for your purchase! Your change is $50" {
		t.Errorf("unexpected message %q", receipt.Message)
	}
	if receipt.CheckoutID != "chk-1" || len(receipt.Changes) != 2 {
		t.Errorf("unexpected receipt: %+v", receipt)
	}
	if repo.persistCalls != 1 {
		t.Errorf("expected one persist, got %d", repo.persistCalls)
	}

	for _, r := range repo.snapshot.Records {
		switch r.Name {
		case "shirt":
			if r.Quantity != 119 {
				t.Errorf("expected 119 shirts, got %d", r.Quantity)
			}
		case "notebook":
			if r.Quantity != 28 {
				t.Errorf("expected 28 notebooks, got %d", r.Quantity)
			}
		}
	}

	for _, id := range ledger.checkoutIDs {
		if id != "chk-1" {
			t.Errorf("expected ledger rows tagged chk-1, got %q", id)
		}
	}
	if len(ledger.checkoutIDs) != 2 {
		t.Errorf("expected 2 ledger rows, got %d", len(ledger.checkoutIDs))
	}
}

func TestCompletePurchase_OverBudget(t *testing.T) {
	service, repo, _ := newTestCheckoutService()

	_, err := service.CompletePurchase(context.Background(), shoppingCart(10))
	if !errors.Is(err, checkout.ErrOverBudget) {
		t.Fatalf("expected ErrOverBudget, got %v", err)
	}
	if repo.persistCalls != 0 {
		t.Error("expected stock untouched when over budget")
	}
}

func TestCompletePurchase_InsufficientStock(t *testing.T) {
	service, repo, _ := newTestCheckoutService()

	_, err := service.CompletePurchase(context.Background(), primary.CheckoutRequest{
		Budget: 10000,
		Lines: []primary.PurchaseLine{
			{Name: "shirt", Colour: "white", Quantity: 1},
			{Name: "notebook", Colour: "black", Quantity: 31},
		},
	})
	if !errors.Is(err, inventory.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if repo.persistCalls != 0 {
		t.Error("expected no partial purchase")
	}
}
