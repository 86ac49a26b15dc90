package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "money-samples",
		Short: "Format, parse and round money amounts",
		Long: `money-samples exercises the money formatting registry with the bundled
text provider and the default rounding provider.`,
		SilenceUsage: true,
	}
	root.AddCommand(newFormatCmd(), newParseCmd(), newStylesCmd(), newRoundCmd())

	root.PersistentFlags().String("config", "", "YAML file with format registry settings")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
