package main

import (
	"github.com/nguyentantai21042004/podcut/internal/clipboard"
	"github.com/nguyentantai21042004/podcut/internal/config"
	"github.com/spf13/cobra"
)

const skipConfigAnnotation = "skipConfigLoad"

func newRootCommand() *cobra.Command {
	return buildRootCommand(geminiAnalyzer, clipboard.New())
}

func buildRootCommand(newAnalyzer analyzerFactory, cb clipboard.Writer) *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag, newAnalyzer, cb)

	rootCmd := &cobra.Command{
		Use:           "podcut",
		Short:         "Pick teaser segments and viral reels from podcast transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default "+config.DefaultPath+")")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newPromptCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}
