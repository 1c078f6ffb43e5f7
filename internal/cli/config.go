package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/stockroom/internal/config"
	"github.com/example/stockroom/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change stockroom settings",
	Long:  "View and change .stockroom/config.yaml in the current directory",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(wire.Config())
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetFileCmd = &cobra.Command{
	Use:   "set-file [path]",
	Short: "Set the inventory file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(cmd, func(cfg *config.Config) {
			cfg.InventoryFile = args[0]
		})
	},
}

var configSetMinStockCmd = &cobra.Command{
	Use:   "set-min-stock [n]",
	Short: "Set the default low-stock threshold",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseAmount("min stock", args[0])
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("min stock must not be negative (got %d)", n)
		}

		return updateConfig(cmd, func(cfg *config.Config) {
			cfg.MinStock = n
		})
	},
}

// updateConfig edits the config file as stored, without environment overrides.
func updateConfig(cmd *cobra.Command, edit func(cfg *config.Config)) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFile(dir)
	if err != nil {
		return err
	}
	edit(cfg)

	if err := config.SaveConfig(dir, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", config.Path(dir))
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetFileCmd)
	configCmd.AddCommand(configSetMinStockCmd)
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}
