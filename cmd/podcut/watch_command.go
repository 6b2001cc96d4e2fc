package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/podcut/internal/processor"
	"github.com/nguyentantai21042004/podcut/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Analyze every .srt file dropped into the inbox folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger(cmd.ErrOrStderr())
			runCtx := cmd.Context()

			for _, dir := range cfg.Directories() {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			a, err := ctx.newAnalyzer(cfg, log)
			if err != nil {
				return err
			}
			proc := processor.New(cfg, a, log)

			w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(runCtx, "========================================")
			log.Info(runCtx, "PodCut pipeline is ready!")
			log.Info(runCtx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(runCtx, "Reports: %s", cfg.Paths.Output)
			log.Info(runCtx, "Archive: %s", cfg.Paths.Archived)
			log.Info(runCtx, "Model: %s (%d API keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
			log.Info(runCtx, "Concurrent: %d transcripts at once", cfg.Performance.MaxConcurrent)
			log.Info(runCtx, "Press Ctrl+C to stop")
			log.Info(runCtx, "========================================")

			err = w.Start(runCtx)
			if errors.Is(err, context.Canceled) {
				log.Info(runCtx, "PodCut pipeline stopped")
				return nil
			}
			return err
		},
	}
}
