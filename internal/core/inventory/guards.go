package inventory

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Kind    error // sentinel the refusal maps to
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// AddRecordContext provides context for add guards.
type AddRecordContext struct {
	Record    Record
	KeyExists bool
}

// SetPriceContext provides context for price update guards.
type SetPriceContext struct {
	Key      Key
	Exists   bool
	NewPrice int
}

// PurchaseContext provides context for purchase guards.
type PurchaseContext struct {
	Key     Key
	Exists  bool
	InStock int
	Amount  int
}

// CanAddRecord evaluates whether a record can be added.
// Rules:
// - Name and colour must be non-empty
// - Price and quantity must not be negative
// - The (name, colour) key must not already exist
func CanAddRecord(ctx AddRecordContext) GuardResult {
	r := ctx.Record
	if r.Name == "" || r.Colour == "" {
		return GuardResult{
			Reason: "name and colour are required",
			Kind:   ErrInvalidInput,
		}
	}

	if r.Price < 0 {
		return GuardResult{
			Reason: fmt.Sprintf("price %d is negative", r.Price),
			Kind:   ErrInvalidInput,
		}
	}

	if r.Quantity < 0 {
		return GuardResult{
			Reason: fmt.Sprintf("quantity %d is negative", r.Quantity),
			Kind:   ErrInvalidInput,
		}
	}

	if ctx.KeyExists {
		return GuardResult{
			Reason: fmt.Sprintf("%s is already in the inventory", r.Key()),
			Kind:   ErrDuplicate,
		}
	}

	return GuardResult{Allowed: true}
}

// CanSetPrice evaluates whether a price update is allowed.
// Rules:
// - Record must exist
// - New price must be greater than 0
func CanSetPrice(ctx SetPriceContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Reason: ctx.Key.String(),
			Kind:   ErrNotFound,
		}
	}

	if ctx.NewPrice <= 0 {
		return GuardResult{
			Reason: fmt.Sprintf("new price must be greater than 0 (got %d)", ctx.NewPrice),
			Kind:   ErrInvalidInput,
		}
	}

	return GuardResult{Allowed: true}
}

// CanPurchase evaluates whether items can be taken out of stock.
// Rules:
// - Record must exist
// - Amount must be greater than 0
// - Amount must not exceed the quantity in stock
func CanPurchase(ctx PurchaseContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Reason: ctx.Key.String(),
			Kind:   ErrNotFound,
		}
	}

	if ctx.Amount <= 0 {
		return GuardResult{
			Reason: fmt.Sprintf("purchase amount must be greater than 0 (got %d)", ctx.Amount),
			Kind:   ErrInvalidInput,
		}
	}

	if ctx.Amount > ctx.InStock {
		return GuardResult{
			Reason: fmt.Sprintf("%s has %d in stock, cannot take %d", ctx.Key, ctx.InStock, ctx.Amount),
			Kind:   ErrInsufficientStock,
		}
	}

	return GuardResult{Allowed: true}
}
