package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ports/primary"
)

// mockCheckoutService prices every line at $10 a piece.
type mockCheckoutService struct {
	quoteErr error

	lastQuoteReq    primary.CheckoutRequest
	completeCalls   int
	lastCompleteReq primary.CheckoutRequest
}

func (m *mockCheckoutService) QuoteCart(ctx context.Context, req primary.CheckoutRequest) (*primary.Quote, error) {
	m.lastQuoteReq = req
	if m.quoteErr != nil {
		return nil, m.quoteErr
	}

	total := 0
	for _, l := range req.Lines {
		total += 10 * l.Quantity
	}
	return &primary.Quote{
		Budget:          req.Budget,
		Total:           total,
		Affordable:      req.Budget >= total,
		Change:          req.Budget - total,
		Shortfall:       total - req.Budget,
		ConfirmPrompt:   "Confirm? ",
		ShortMessage:    "too short",
		DeclinedMessage: "See you next time!",
	}, nil
}

func (m *mockCheckoutService) CompletePurchase(ctx context.Context, req primary.CheckoutRequest) (*primary.Receipt, error) {
	m.completeCalls++
	m.lastCompleteReq = req
	return &primary.Receipt{CheckoutID: "chk-1", Message: "Thanks for your purchase!"}, nil
}

func TestCheckoutAdapter_Run_Confirmed(t *testing.T) {
	mock := &mockCheckoutService{}
	in := strings.NewReader("shirt white 1\nnotebook black 2\nSTOP\nYes\n")
	var out bytes.Buffer
	adapter := NewCheckoutAdapter(mock, in, &out)

	receipt, err := adapter.Run(context.Background(), 100, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if receipt == nil || receipt.CheckoutID != "chk-1" {
		t.Fatalf("expected receipt, got %+v", receipt)
	}
	if mock.completeCalls != 1 {
		t.Errorf("expected one purchase, got %d", mock.completeCalls)
	}

	want := []primary.PurchaseLine{
		{Name: "shirt", Colour: "white", Quantity: 1},
		{Name: "notebook", Colour: "black", Quantity: 2},
	}
	if len(mock.lastCompleteReq.Lines) != 2 || mock.lastCompleteReq.Lines[0] != want[0] || mock.lastCompleteReq.Lines[1] != want[1] {
		t.Errorf("unexpected cart %+v", mock.lastCompleteReq.Lines)
	}
	if mock.lastCompleteReq.Budget != 100 {
		t.Errorf("expected budget 100, got %d", mock.lastCompleteReq.Budget)
	}

	output := out.String()
	if strings.Count(output, CartPrompt) != 3 {
		t.Errorf("expected 3 cart prompts, got output %q", output)
	}
	if !strings.Contains(output, "Confirm? ") || !strings.Contains(output, "Thanks for your purchase!") {
		t.Errorf("unexpected output %q", output)
	}
}

func TestCheckoutAdapter_Run_Declined(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{name: "no", answer: "No"},
		{name: "lowercase yes", answer: "yes"},
		{name: "end of input", answer: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCheckoutService{}
			in := strings.NewReader("shirt white 1\nSTOP\n" + tt.answer)
			var out bytes.Buffer
			adapter := NewCheckoutAdapter(mock, in, &out)

			receipt, err := adapter.Run(context.Background(), 100, false)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if receipt != nil {
				t.Errorf("expected no receipt, got %+v", receipt)
			}
			if mock.completeCalls != 0 {
				t.Error("expected no purchase")
			}
			if !strings.Contains(out.String(), "See you next time!") {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestCheckoutAdapter_Run_AssumeYes(t *testing.T) {
	mock := &mockCheckoutService{}
	in := strings.NewReader("shirt white 1\n")
	var out bytes.Buffer
	adapter := NewCheckoutAdapter(mock, in, &out)

	receipt, err := adapter.Run(context.Background(), 100, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if receipt == nil || mock.completeCalls != 1 {
		t.Error("expected purchase without confirmation")
	}
}

func TestCheckoutAdapter_Run_Short(t *testing.T) {
	mock := &mockCheckoutService{}
	in := strings.NewReader("shirt white 5\nSTOP\n")
	var out bytes.Buffer
	adapter := NewCheckoutAdapter(mock, in, &out)

	receipt, err := adapter.Run(context.Background(), 20, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if receipt != nil || mock.completeCalls != 0 {
		t.Error("expected no purchase when over budget")
	}
	if !strings.Contains(out.String(), "too short") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestCheckoutAdapter_Run_RepromptsOnBadLine(t *testing.T) {
	mock := &mockCheckoutService{}
	in := strings.NewReader("shirt white\n\nshirt white many\nshirt white 2\nSTOP\nNo\n")
	var out bytes.Buffer
	adapter := NewCheckoutAdapter(mock, in, &out)

	if _, err := adapter.Run(context.Background(), 100, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mock.lastQuoteReq.Lines) != 1 || mock.lastQuoteReq.Lines[0].Quantity != 2 {
		t.Errorf("expected only the valid line, got %+v", mock.lastQuoteReq.Lines)
	}
	if strings.Count(out.String(), "!") < 2 {
		t.Errorf("expected two warnings, got %q", out.String())
	}
}

func TestCheckoutAdapter_Run_EmptyCart(t *testing.T) {
	mock := &mockCheckoutService{}
	var out bytes.Buffer
	adapter := NewCheckoutAdapter(mock, strings.NewReader("STOP\n"), &out)

	receipt, err := adapter.Run(context.Background(), 100, false)
	if err != nil || receipt != nil {
		t.Fatalf("expected nothing to happen, got %+v, %v", receipt, err)
	}
	if !strings.Contains(out.String(), "Your shopping list is empty.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestCheckoutAdapter_Run_UnknownItem(t *testing.T) {
	mock := &mockCheckoutService{quoteErr: inventory.ErrNotFound}
	var out bytes.Buffer
	adapter := NewCheckoutAdapter(mock, strings.NewReader("hat red 1\nSTOP\n"), &out)

	_, err := adapter.Run(context.Background(), 100, false)
	if !errors.Is(err, inventory.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
