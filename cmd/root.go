// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "erratic",
	Short: "Erratic - pluggable packet error-decision engine",
	Long: `Erratic decides, per simulated network packet, whether the packet should be
treated as corrupted or lost by a link/channel model.

Models:
  - rate: probabilistic corruption at bit, byte or packet granularity
  - list: deterministic corruption of configured packet UIDs
  - composite: any-of chain over child models

Packets are driven through the configured model from a pcap capture or a
synthetic generator; decisions are logged and exported as Prometheus metrics.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "/etc/erratic/config.yml",
		"config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
