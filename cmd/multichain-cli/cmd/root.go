package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multichain-send/pkg/config"
	"multichain-send/pkg/logger"
	"multichain-send/pkg/monitor"
)

var configDir string

// rootCmd is the base command; it does nothing without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "multichain-cli",
	Short: "Offline transaction drafting tool",
	Long: `Drafts, builds and validates send transactions for non-EVM networks
without contacting a wallet service. Amounts on the command line are in base
units (satoshis for Bitcoin) unless a flag says otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configDir); err != nil {
			return err
		}
		logger.Init(config.Global.App.Env)
		if config.Global.Metrics.Enabled {
			monitor.InitBusinessMetrics()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")
}
