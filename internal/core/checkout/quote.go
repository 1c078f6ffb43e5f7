package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/stockroom/internal/core/inventory"
)

// ErrOverBudget reports a purchase attempt the budget does not cover.
var ErrOverBudget = errors.New("cart exceeds budget")

// Quote is the result of pricing a cart against a budget.
type Quote struct {
	Budget int
	Total  int
}

// NewQuote prices a cart total against a budget.
func NewQuote(budget, total int) (Quote, error) {
	if budget < 0 {
		return Quote{}, fmt.Errorf("%w: budget must not be negative (got %d)", inventory.ErrInvalidInput, budget)
	}
	return Quote{Budget: budget, Total: total}, nil
}

// Affordable reports whether the budget covers the total.
func (q Quote) Affordable() bool {
	return q.Budget >= q.Total
}

// Change is what is left of the budget after paying.
func (q Quote) Change() int {
	return q.Budget - q.Total
}

// Shortfall is how much the budget is missing.
func (q Quote) Shortfall() int {
	return q.Total - q.Budget
}

// ConfirmPrompt asks the shopper to go ahead with an affordable cart.
func (q Quote) ConfirmPrompt() string {
	return fmt.Sprintf("Yes, your total cost will be $%d. Would you like to buy them? (Yes/No) ", q.Total)
}

// PurchasedMessage is shown after a completed purchase.
func (q Quote) PurchasedMessage() string {
	return fmt.Sprintf("Thanks for your purchase! Your change is $%d", q.Change())
}

// ShortMessage is shown when the budget does not cover the cart.
func (q Quote) ShortMessage() string {
	return fmt.Sprintf("No, you are $%d short", q.Shortfall())
}

// DeclinedMessage is shown when an affordable purchase is not confirmed.
const DeclinedMessage = "See you next time!"

// Confirmed reports whether an answer confirms the purchase.
func Confirmed(answer string) bool {
	return strings.TrimSpace(answer) == ConfirmWord
}
