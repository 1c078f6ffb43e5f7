package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the inventory as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			if _, err := wire.InventoryAdapter().List(ctx); err != nil {
				return fmt.Errorf("failed to list inventory: %w", err)
			}
			return nil
		},
	}
}
