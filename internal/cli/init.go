package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty inventory file",
		Long: `Create a new inventory CSV holding only the header row
(category,name,colour,price,quantity). Refuses to overwrite an existing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			path := wire.InventoryPath()

			if err := wire.InventoryAdapter().Init(ctx, path); err != nil {
				return fmt.Errorf("failed to initialize inventory: %w", err)
			}
			return nil
		},
	}
}
