// Package cmd implements CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"firestige.xyz/erratic/internal/config"
	"firestige.xyz/erratic/internal/errmodel"
	"firestige.xyz/erratic/internal/errmodel/factory"
	"firestige.xyz/erratic/internal/log"
	"firestige.xyz/erratic/internal/metrics"
	"firestige.xyz/erratic/internal/replay"
)

var tracePath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive packets through the configured error model",
	Long: `Drive packets through the configured error model and report decisions.

The packet source and the model come from the config file. An optional UID
trace file adds a list model on top of the configured one, corrupting the
listed packets in addition to whatever the configured model decides.

Examples:
  erratic run -c config.yml
  erratic run -c config.yml --trace drops.yml`,
	Run: func(cmd *cobra.Command, args []string) {
		runReplayCommand()
	},
}

func init() {
	runCmd.Flags().StringVarP(&tracePath, "trace", "t", "",
		"YAML trace file of packet UIDs to corrupt in addition to the model")
}

func runReplayCommand() {
	cfg, err := config.Load(configFile)
	if err != nil {
		exitWithError("failed to load config", err)
	}
	if err := log.Init(cfg.Log); err != nil {
		exitWithError("failed to init logging", err)
	}

	model, err := buildModel(cfg)
	if err != nil {
		exitWithError("failed to build error model", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		srv := metrics.NewServer(cfg.Metrics.Listen, cfg.Metrics.Path)
		if err := srv.Start(ctx); err != nil {
			exitWithError("failed to start metrics server", err)
		}
		defer srv.Stop(context.Background())
	}

	src, err := openSource(cfg.Replay)
	if err != nil {
		exitWithError("failed to open packet source", err)
	}
	defer src.Close()

	runner := replay.NewRunner(cfg.Model.Type, model)
	stats, err := runner.Run(ctx, src)
	if err != nil {
		exitWithError("replay failed", err)
	}

	fmt.Printf("replayed %d packet(s), %d byte(s): %d corrupt (%.4f%%)\n",
		stats.Packets, stats.Bytes, stats.Corrupt, stats.CorruptRatio()*100)
}

// buildModel constructs the configured model, stacking a trace-driven list
// model on top when --trace was given.
func buildModel(cfg *config.GlobalConfig) (errmodel.ErrorModel, error) {
	model, err := factory.Build(factory.ModelConfig{
		Type:    cfg.Model.Type,
		Options: cfg.Model.Options,
	})
	if err != nil {
		return nil, err
	}

	if tracePath == "" {
		return model, nil
	}
	uids, err := factory.LoadTrace(tracePath)
	if err != nil {
		return nil, err
	}
	listed := errmodel.NewListErrorModel()
	listed.SetList(uids)
	return errmodel.NewCompositeErrorModel(model, listed), nil
}

func openSource(cfg config.ReplayConfig) (replay.Source, error) {
	switch cfg.Source {
	case "pcap":
		return replay.OpenPcap(cfg.Pcap.Path)
	case "synthetic":
		syn := cfg.Synthetic
		return replay.NewSyntheticSource(syn.Count, syn.MinSize, syn.MaxSize, syn.Seed), nil
	default:
		return nil, fmt.Errorf("unsupported replay source: %s", cfg.Source)
	}
}
