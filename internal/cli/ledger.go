package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/wire"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "View the stock ledger",
	Long:  "View the history of inventory changes (adds, removals, price changes, purchases)",
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent stock movements",
	Long:  "Show recent stock movements, newest first (default 50)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		name, _ := cmd.Flags().GetString("name")
		colour, _ := cmd.Flags().GetString("colour")
		action, _ := cmd.Flags().GetString("action")
		limit, _ := cmd.Flags().GetInt("limit")

		if limit <= 0 {
			limit = 50
		}

		_, err := wire.LedgerAdapter().List(ctx, primary.MovementFilters{
			Name:   name,
			Colour: colour,
			Action: action,
			Limit:  limit,
		})
		if err != nil {
			return fmt.Errorf("failed to list movements: %w", err)
		}
		return nil
	},
}

func init() {
	ledgerListCmd.Flags().String("name", "", "Filter by item name")
	ledgerListCmd.Flags().String("colour", "", "Filter by colour")
	ledgerListCmd.Flags().String("action", "", "Filter by action (add, remove, price, purchase)")
	ledgerListCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")

	ledgerCmd.AddCommand(ledgerListCmd)
}

// LedgerCmd returns the ledger command
func LedgerCmd() *cobra.Command {
	return ledgerCmd
}
