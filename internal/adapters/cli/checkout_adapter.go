package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/stockroom/internal/core/checkout"
	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ports/primary"
)

// CartPrompt asks for the next cart line.
const CartPrompt = "Enter an item followed by it's colour and quantity, enter STOP once you are done adding items to your shopping list: "

// CheckoutAdapter runs the shopping dialogue over a line-based console.
type CheckoutAdapter struct {
	service primary.CheckoutService
	in      *bufio.Scanner
	out     io.Writer
}

// NewCheckoutAdapter creates a new CheckoutAdapter reading answers from in.
func NewCheckoutAdapter(service primary.CheckoutService, in io.Reader, out io.Writer) *CheckoutAdapter {
	return &CheckoutAdapter{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run collects a cart, quotes it against budget and completes the purchase
// once the shopper confirms. assumeYes skips the confirmation question.
// The returned receipt is nil when nothing was bought.
func (a *CheckoutAdapter) Run(ctx context.Context, budget int, assumeYes bool) (*primary.Receipt, error) {
	lines, err := a.collectCart()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your shopping list is empty.")
		return nil, nil
	}

	req := primary.CheckoutRequest{Budget: budget, Lines: lines}
	quote, err := a.service.QuoteCart(ctx, req)
	if err != nil {
		return nil, err
	}

	if !quote.Affordable {
		fmt.Fprintln(a.out, color.New(color.FgRed).Sprint(quote.ShortMessage))
		return nil, nil
	}

	fmt.Fprint(a.out, quote.ConfirmPrompt)
	answer := checkout.ConfirmWord
	if assumeYes {
		fmt.Fprintln(a.out, answer)
	} else {
		answer, _ = a.readLine()
	}

	if !checkout.Confirmed(answer) {
		fmt.Fprintln(a.out, quote.DeclinedMessage)
		return nil, nil
	}

	receipt, err := a.service.CompletePurchase(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(a.out, color.New(color.FgGreen).Sprint(receipt.Message))
	return receipt, nil
}

// collectCart reads lines until the stop word or end of input.
// Malformed lines are reported and the shopper is asked again.
func (a *CheckoutAdapter) collectCart() ([]primary.PurchaseLine, error) {
	var lines []primary.PurchaseLine
	for {
		fmt.Fprint(a.out, CartPrompt)
		input, ok := a.readLine()
		if !ok {
			fmt.Fprintln(a.out)
			return lines, a.in.Err()
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		line, done, err := checkout.ParseLine(input)
		if errors.Is(err, inventory.ErrInvalidInput) {
			fmt.Fprintf(a.out, "  %s %v\n", color.New(color.FgYellow).Sprint("!"), err)
			continue
		}
		if err != nil {
			return nil, err
		}
		if done {
			return lines, nil
		}

		lines = append(lines, primary.PurchaseLine{
			Name:     line.Item,
			Colour:   line.Colour,
			Quantity: line.Quantity,
		})
	}
}

func (a *CheckoutAdapter) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}
