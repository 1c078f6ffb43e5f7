// Package inventory contains the pure business logic for the stock database.
// Nothing here touches the filesystem; adapters load and persist records.
package inventory

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Column positions in a stored row.
const (
	ColCategory = iota
	ColName
	ColColour
	ColPrice
	ColQuantity

	// NumColumns is the field count every row must have.
	NumColumns
)

// Header is the ordered list of column names at the top of the inventory file.
type Header []string

// DefaultHeader is written by init for a new inventory file.
func DefaultHeader() Header {
	return Header{"category", "name", "colour", "price", "quantity"}
}

// Key identifies a record.
type Key struct {
	Name   string
	Colour string
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%s)", k.Name, k.Colour)
}

// Record is one inventory line item.
type Record struct {
	Category string
	Name     string
	Colour   string
	Price    int
	Quantity int
}

// Key returns the record's identity.
func (r Record) Key() Key {
	return Key{Name: r.Name, Colour: r.Colour}
}

// Label is the "colour name" form used by the low stock report.
func (r Record) Label() string {
	return r.Colour + " " + r.Name
}

// Fields encodes the record in column order.
func (r Record) Fields() []string {
	return []string{
		r.Category,
		r.Name,
		r.Colour,
		strconv.Itoa(r.Price),
		strconv.Itoa(r.Quantity),
	}
}

// ParseRecord decodes one stored row.
func ParseRecord(fields []string) (Record, error) {
	if len(fields) != NumColumns {
		return Record{}, fmt.Errorf("%w: expected %d fields, got %d", ErrStorage, NumColumns, len(fields))
	}

	price, err := parseAmount("price", fields[ColPrice])
	if err != nil {
		return Record{}, err
	}
	quantity, err := parseAmount("quantity", fields[ColQuantity])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Category: fields[ColCategory],
		Name:     fields[ColName],
		Colour:   fields[ColColour],
		Price:    price,
		Quantity: quantity,
	}, nil
}

func parseAmount(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidInput, field, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d is negative", ErrInvalidInput, field, n)
	}
	return n, nil
}

// SortByCategory orders records by category, keeping file order within a category.
func SortByCategory(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.Category, b.Category)
	})
}
