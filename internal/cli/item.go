package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/core/inventory"
	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/wire"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage inventory records",
	Long:  "Add, remove, reprice, purchase and show records in the inventory file",
}

var itemAddCmd = &cobra.Command{
	Use:   "add [category] [name] [colour] [price] [quantity]",
	Short: "Add a new record",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		price, err := parseAmount("price", args[3])
		if err != nil {
			return err
		}
		quantity, err := parseAmount("quantity", args[4])
		if err != nil {
			return err
		}

		_, err = wire.InventoryAdapter().Add(ctx, primary.AddItemRequest{
			Category: args[0],
			Name:     args[1],
			Colour:   args[2],
			Price:    price,
			Quantity: quantity,
		})
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}
		return nil
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove [name] [colour]",
	Short: "Remove a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		if _, err := wire.InventoryAdapter().Remove(ctx, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}
		return nil
	},
}

var itemPriceCmd = &cobra.Command{
	Use:   "price [name] [colour] [new-price]",
	Short: "Change the price of a record",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		price, err := parseAmount("price", args[2])
		if err != nil {
			return err
		}

		_, err = wire.InventoryAdapter().SetPrice(ctx, primary.SetPriceRequest{
			Name:     args[0],
			Colour:   args[1],
			NewPrice: price,
		})
		if err != nil {
			return fmt.Errorf("failed to set price: %w", err)
		}
		return nil
	},
}

var itemPurchaseCmd = &cobra.Command{
	Use:   "purchase [name] [colour] [quantity]",
	Short: "Take purchased items out of stock",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		amount, err := parseAmount("quantity", args[2])
		if err != nil {
			return err
		}

		_, err = wire.InventoryAdapter().Purchase(ctx, primary.AdjustQuantityRequest{
			Name:   args[0],
			Colour: args[1],
			Amount: amount,
		})
		if err != nil {
			return fmt.Errorf("failed to purchase item: %w", err)
		}
		return nil
	},
}

var itemShowCmd = &cobra.Command{
	Use:   "show [name] [colour]",
	Short: "Show a single record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		if _, err := wire.InventoryAdapter().Show(ctx, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to show item: %w", err)
		}
		return nil
	},
}

// parseAmount converts a numeric argument, reporting which field was wrong.
func parseAmount(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", inventory.ErrInvalidInput, field, arg)
	}
	return n, nil
}

func init() {
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemCmd.AddCommand(itemPriceCmd)
	itemCmd.AddCommand(itemPurchaseCmd)
	itemCmd.AddCommand(itemShowCmd)
}

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	return itemCmd
}
