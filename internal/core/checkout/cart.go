// Package checkout contains the pure logic of the shopping flow: parsing cart
// lines, pricing a cart against a budget and phrasing the outcome.
package checkout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/example/stockroom/internal/core/inventory"
)

// StopWord ends cart entry.
const StopWord = "STOP"

// ConfirmWord is the only answer that completes a purchase.
const ConfirmWord = "Yes"

// Line is one cart entry.
type Line struct {
	Item     string
	Colour   string
	Quantity int
}

// ParseLine decodes "item colour quantity". done is true for the stop word.
func ParseLine(input string) (line Line, done bool, err error) {
	input = strings.TrimSpace(input)
	if input == StopWord {
		return Line{}, true, nil
	}

	fields := strings.Fields(input)
	if len(fields) != 3 {
		return Line{}, false, fmt.Errorf("%w: expected \"item colour quantity\", got %q", inventory.ErrInvalidInput, input)
	}

	qty, err := strconv.Atoi(fields[2])
	if err != nil {
		return Line{}, false, fmt.Errorf("%w: quantity %q is not an integer", inventory.ErrInvalidInput, fields[2])
	}
	if qty <= 0 {
		return Line{}, false, fmt.Errorf("%w: quantity must be greater than 0 (got %d)", inventory.ErrInvalidInput, qty)
	}

	return Line{Item: fields[0], Colour: fields[1], Quantity: qty}, false, nil
}

// PriceLookup resolves the unit price of an item.
type PriceLookup func(item, colour string) (int, bool)

// Total sums unit price times quantity over the cart.
func Total(cart []Line, price PriceLookup) (int, error) {
	total := 0
	for _, l := range cart {
		unit, ok := price(l.Item, l.Colour)
		if !ok {
			key := inventory.Key{Name: l.Item, Colour: l.Colour}
			return 0, fmt.Errorf("%w: %s", inventory.ErrNotFound, key)
		}
		if unit > 0 && l.Quantity > (math.MaxInt-total)/unit {
			return 0, fmt.Errorf("%w: cart total overflows", inventory.ErrInvalidInput)
		}
		total += unit * l.Quantity
	}
	return total, nil
}
