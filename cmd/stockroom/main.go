package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/cli"
	"github.com/example/stockroom/internal/version"
)

func main() {
	var opts cli.BootstrapOptions

	rootCmd := &cobra.Command{
		Use:     "stockroom",
		Short:   "Stockroom - inventory records in a CSV file",
		Version: version.String(),
		Long: `Stockroom keeps a store's inventory in a CSV file keyed by item name and colour.
It adds, removes, reprices and sells records, runs an interactive checkout against a
budget and keeps a ledger of every stock movement.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.Bootstrap(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cli.Shutdown()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "Inventory CSV file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.QueryCmd())
	rootCmd.AddCommand(cli.CheckoutCmd())
	rootCmd.AddCommand(cli.LedgerCmd())
	rootCmd.AddCommand(cli.TextCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
