package commands

import (
	"context"
	"fmt"
	"os"

	"amazonorders/internal/entity"
	"amazonorders/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	debug      *bool
)

var rootCmd = &cobra.Command{
	Use:   "amazonorders-cli",
	Short: "amazonorders-cli extracts structured orders out of saved order history and order details pages.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*debug)
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "", "A json5 file with selector and url overrides.")
	debug = rootCmd.PersistentFlags().Bool("debug", false, "Log fallbacks and other debug output.")
}

// loadConfig returns the default config, or the defaults with the --config file merged on top.
func loadConfig() (*entity.Config, error) {
	if *configPath == "" {
		return entity.DefaultConfig(), nil
	}
	cfg, err := entity.LoadConfig(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", *configPath, err)
	}
	return cfg, nil
}

// ExecuteContext runs the root command, exiting with a non-zero status on failure.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
