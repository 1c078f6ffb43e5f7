package primary

import "context"

// CheckoutService defines the primary port for the shopping flow.
type CheckoutService interface {
	// QuoteCart prices a cart against a budget without touching stock.
	QuoteCart(ctx context.Context, req CheckoutRequest) (*Quote, error)

	// CompletePurchase re-quotes the cart and, when affordable, takes it out of stock.
	CompletePurchase(ctx context.Context, req CheckoutRequest) (*Receipt, error)
}

// CheckoutRequest contains a cart and the shopper's budget.
type CheckoutRequest struct {
	Budget int
	Lines  []PurchaseLine
}

// Quote is the priced cart.
type Quote struct {
	Budget     int
	Total      int
	Affordable bool
	Change     int
	Shortfall  int

	// Messages shown to the shopper.
	ConfirmPrompt   string
	ShortMessage    string
	DeclinedMessage string
}

// Receipt is the result of a completed purchase.
type Receipt struct {
	CheckoutID string
	Total      int
	Change     int
	Message    string
	Changes    []*ItemChange
}
