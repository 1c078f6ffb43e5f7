package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/wire"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Shop interactively against a budget",
	Long: `Enter cart lines as "item colour quantity", one per line, and STOP when done.
The cart is priced against --budget; if affordable you are asked to confirm with "Yes"
and the whole cart is taken out of stock in one write.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		budget, _ := cmd.Flags().GetInt("budget")
		yes, _ := cmd.Flags().GetBool("yes")

		if _, err := wire.CheckoutAdapter().Run(ctx, budget, yes); err != nil {
			return fmt.Errorf("failed to check out: %w", err)
		}
		return nil
	},
}

func init() {
	checkoutCmd.Flags().IntP("budget", "b", 0, "Money available to spend")
	checkoutCmd.Flags().BoolP("yes", "y", false, "Buy without asking for confirmation")
	_ = checkoutCmd.MarkFlagRequired("budget")
}

// CheckoutCmd returns the checkout command
func CheckoutCmd() *cobra.Command {
	return checkoutCmd
}
