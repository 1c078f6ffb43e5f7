package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/stockroom/internal/ports/primary"
)

// columnSeparator underlines each header cell in the table dump.
const columnSeparator = "------------"

// InventoryAdapter is a thin adapter that translates CLI operations to InventoryService calls.
type InventoryAdapter struct {
	service primary.InventoryService
	out     io.Writer
}

// NewInventoryAdapter creates a new InventoryAdapter with the given service.
func NewInventoryAdapter(service primary.InventoryService, out io.Writer) *InventoryAdapter {
	return &InventoryAdapter{
		service: service,
		out:     out,
	}
}

// Init creates an empty inventory file.
func (a *InventoryAdapter) Init(ctx context.Context, path string) error {
	if err := a.service.InitInventory(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created inventory %s\n", path)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Add your first item:")
	fmt.Fprintln(a.out, "  stockroom item add clothes shirt white 20 120")
	return nil
}

// Add adds a record and prints it.
func (a *InventoryAdapter) Add(ctx context.Context, req primary.AddItemRequest) (*primary.Item, error) {
	item, err := a.service.AddItem(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Added %s %s: $%d, %d in stock\n", item.Colour, item.Name, item.Price, item.Quantity)
	return item, nil
}

// Remove removes a record.
func (a *InventoryAdapter) Remove(ctx context.Context, name, colour string) (*primary.Item, error) {
	item, err := a.service.RemoveItem(ctx, name, colour)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Removed %s %s (%s)\n", item.Colour, item.Name, item.Category)
	return item, nil
}

// SetPrice changes a price and shows old and new values.
func (a *InventoryAdapter) SetPrice(ctx context.Context, req primary.SetPriceRequest) (*primary.ItemChange, error) {
	change, err := a.service.SetPrice(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Price of %s %s updated\n", change.After.Colour, change.After.Name)
	fmt.Fprintf(a.out, "  $%d → $%d\n", change.Before.Price, change.After.Price)
	return change, nil
}

// Purchase takes items out of stock.
func (a *InventoryAdapter) Purchase(ctx context.Context, req primary.AdjustQuantityRequest) (*primary.ItemChange, error) {
	change, err := a.service.AdjustQuantity(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Purchased %d %s %s\n", req.Amount, change.After.Colour, change.After.Name)
	fmt.Fprintf(a.out, "  stock %d → %d\n", change.Before.Quantity, change.After.Quantity)
	return change, nil
}

// Show displays a single record.
func (a *InventoryAdapter) Show(ctx context.Context, name, colour string) (*primary.Item, error) {
	item, err := a.service.GetItem(ctx, name, colour)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nItem: %s %s\n", item.Colour, item.Name)
	fmt.Fprintf(a.out, "Category: %s\n", item.Category)
	fmt.Fprintf(a.out, "Price:    $%d\n", item.Price)
	fmt.Fprintf(a.out, "Quantity: %d\n", item.Quantity)
	fmt.Fprintln(a.out)
	return item, nil
}

// List prints the whole inventory as a fixed-width table.
func (a *InventoryAdapter) List(ctx context.Context) (*primary.Inventory, error) {
	inv, err := a.service.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	separators := make([]string, len(inv.Header))
	for i := range separators {
		separators[i] = columnSeparator
	}

	a.writeRow(inv.Header)
	a.writeRow(separators)
	for _, item := range inv.Items {
		a.writeRow([]string{
			item.Category,
			item.Name,
			item.Colour,
			strconv.Itoa(item.Price),
			strconv.Itoa(item.Quantity),
		})
	}
	return inv, nil
}

// ItemsByColour prints the names of every item in a colour.
func (a *InventoryAdapter) ItemsByColour(ctx context.Context, colour string) ([]string, error) {
	names, err := a.service.ItemsByColour(ctx, colour)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		fmt.Fprintf(a.out, "No %s items.\n", colour)
		return names, nil
	}
	for _, name := range names {
		fmt.Fprintln(a.out, name)
	}
	return names, nil
}

// ColoursOfItem prints every colour an item comes in.
func (a *InventoryAdapter) ColoursOfItem(ctx context.Context, name string) ([]string, error) {
	colours, err := a.service.ColoursOfItem(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(colours) == 0 {
		fmt.Fprintf(a.out, "No colours found for %s.\n", name)
		return colours, nil
	}
	for _, colour := range colours {
		fmt.Fprintln(a.out, colour)
	}
	return colours, nil
}

// LowStock prints items with fewer than threshold in stock.
func (a *InventoryAdapter) LowStock(ctx context.Context, threshold int) ([]string, error) {
	labels, err := a.service.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}

	if len(labels) == 0 {
		fmt.Fprintf(a.out, "%s Nothing below %d in stock.\n", color.New(color.FgGreen).Sprint("✓"), threshold)
		return labels, nil
	}

	fmt.Fprintf(a.out, "Below %d in stock:\n", threshold)
	for _, label := range labels {
		fmt.Fprintf(a.out, "  %s %s\n", color.New(color.FgYellow).Sprint("!"), label)
	}
	return labels, nil
}

func (a *InventoryAdapter) writeRow(cells []string) {
	var b strings.Builder
	for _, cell := range cells {
		fmt.Fprintf(&b, "%-12s\t", cell)
	}
	fmt.Fprintln(a.out, b.String())
}
