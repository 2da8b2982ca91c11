// Package cmd implements CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/erratic/internal/config"
	"firestige.xyz/erratic/internal/errmodel/factory"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file without running a replay.

The model is actually constructed, so option errors (unknown model type,
bad unit token, unreadable trace file) surface here instead of at run time.

Examples:
  erratic validate -c config.yml`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidateCommand()
	},
}

func runValidateCommand() {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
		os.Exit(1)
	}

	model, err := factory.Build(factory.ModelConfig{
		Type:    cfg.Model.Type,
		Options: cfg.Model.Options,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("VALID: model %q (enabled=%v), replay source %q\n",
		cfg.Model.Type, model.IsEnabled(), cfg.Replay.Source)
}
