package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/core/text"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Small string helpers",
}

var textVowelsCmd = &cobra.Command{
	Use:   "vowels [word]",
	Short: "Count the vowels in a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), text.CountVowels(args[0]))
		return nil
	},
}

var textDashesCmd = &cobra.Command{
	Use:   "dashes [word]",
	Short: "Put a dash between every letter of a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), text.DashSeparate(args[0]))
		return nil
	},
}

func init() {
	textCmd.AddCommand(textVowelsCmd)
	textCmd.AddCommand(textDashesCmd)
}

// TextCmd returns the text command
func TextCmd() *cobra.Command {
	return textCmd
}
