package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/podcut/internal/controller"
	"github.com/nguyentantai21042004/podcut/internal/display"
	"github.com/nguyentantai21042004/podcut/internal/models"
	"github.com/nguyentantai21042004/podcut/internal/report"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var instructions string
	var tab string
	var docxPath string
	var copyReport bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze <file.srt>",
		Short: "Analyze one SRT transcript and print the teaser and reels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activeTab, err := models.ParseTab(tab)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger(cmd.ErrOrStderr())

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: %v", controller.ErrReadTranscript, err)
			}

			a, err := ctx.newAnalyzer(cfg, log)
			if err != nil {
				return err
			}
			ctrl := controller.New(a, ctx.clipboard, log)
			if err := ctrl.LoadTranscript(data, filepath.Base(path)); err != nil {
				return err
			}
			ctrl.SetUserInstructions(instructions)
			ctrl.SetActiveTab(activeTab)

			if !ctrl.Submit(cmd.Context()) {
				return errors.New("transcript is empty")
			}
			state := ctrl.State()

			if jsonOutput {
				if state.Result != nil {
					if err := writeJSON(cmd, state.Result); err != nil {
						return err
					}
				}
			} else if err := display.Render(cmd.OutOrStdout(), state, display.OptionsFor(cmd.OutOrStdout())); err != nil {
				return err
			}

			if state.Status != models.StatusComplete {
				return fmt.Errorf("analyze %s: %s", state.FileName, state.Error)
			}

			stderr := cmd.ErrOrStderr()
			if docxPath != "" {
				if err := report.WriteDocx(*state.Result, state.FileName, docxPath); err != nil {
					return err
				}
				fmt.Fprintf(stderr, "Wrote DOCX report to %s\n", docxPath)
			}
			if copyReport {
				if _, err := ctrl.CopyReport(); err != nil {
					fmt.Fprintf(stderr, "Could not copy report: %v\n", err)
				} else {
					fmt.Fprintln(stderr, "Report copied to clipboard.")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Extra instructions for the producer (e.g. topics to include)")
	cmd.Flags().StringVarP(&tab, "tab", "t", string(models.TabTeaser), "Result view to print: teaser or reels")
	cmd.Flags().StringVar(&docxPath, "docx", "", "Also write the report as a DOCX file at this path")
	cmd.Flags().BoolVar(&copyReport, "copy", false, "Copy the plain-text report to the clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw result as JSON")
	return cmd
}
