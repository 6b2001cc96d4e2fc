package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/podcut/internal/analyzer"
	"github.com/nguyentantai21042004/podcut/internal/controller"
	"github.com/nguyentantai21042004/podcut/internal/logger"
)

func newPromptCommand(ctx *commandContext) *cobra.Command {
	var instructions string

	cmd := &cobra.Command{
		Use:         "prompt <file.srt>",
		Short:       "Print the prompt that would be sent for a transcript",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", controller.ErrReadTranscript, err)
			}

			// Loading validates the file kind and decodes the text; no analysis runs.
			ctrl := controller.New(nil, ctx.clipboard, logger.Discard())
			if err := ctrl.LoadTranscript(data, filepath.Base(args[0])); err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), analyzer.BuildPrompt(ctrl.State().Transcript, instructions))
			return err
		},
	}

	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Extra instructions for the producer")
	return cmd
}
