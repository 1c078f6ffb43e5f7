package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/wire"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Ask questions about the inventory",
}

var queryByColourCmd = &cobra.Command{
	Use:   "by-colour [colour]",
	Short: "List the names of every item in a colour",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		if _, err := wire.InventoryAdapter().ItemsByColour(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to query items: %w", err)
		}
		return nil
	},
}

var queryColoursCmd = &cobra.Command{
	Use:   "colours [name]",
	Short: "List every colour an item comes in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		if _, err := wire.InventoryAdapter().ColoursOfItem(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to query colours: %w", err)
		}
		return nil
	},
}

var queryLowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List items running low",
	Long:  "List items with fewer than --threshold in stock (default: min_stock from config)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		threshold := wire.Config().MinStock
		if cmd.Flags().Changed("threshold") {
			threshold, _ = cmd.Flags().GetInt("threshold")
		}

		if _, err := wire.InventoryAdapter().LowStock(ctx, threshold); err != nil {
			return fmt.Errorf("failed to query low stock: %w", err)
		}
		return nil
	},
}

func init() {
	queryLowStockCmd.Flags().IntP("threshold", "t", 0, "Report items with fewer than this many in stock")

	queryCmd.AddCommand(queryByColourCmd)
	queryCmd.AddCommand(queryColoursCmd)
	queryCmd.AddCommand(queryLowStockCmd)
}

// QueryCmd returns the query command
func QueryCmd() *cobra.Command {
	return queryCmd
}
