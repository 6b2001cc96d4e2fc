package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/nguyentantai21042004/podcut/internal/controller"
	"github.com/nguyentantai21042004/podcut/internal/models"
)

// FooterNote follows every result table.
const FooterNote = "*Timestamps are extracted directly from your SRT file."

const (
	defaultQuoteWidth = 60
	noBRoll           = "-"
)

// Options controls terminal rendering.
type Options struct {
	// Colorize enables the rounded table style and colored status lines.
	Colorize bool
	// QuoteWidth wraps long text columns; zero uses the default.
	QuoteWidth int
}

// OptionsFor picks options suited to w: styled output only on a terminal.
func OptionsFor(w io.Writer) Options {
	return Options{Colorize: IsTerminal(w), QuoteWidth: defaultQuoteWidth}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render writes a view of state to w. It never mutates state.
func Render(w io.Writer, state controller.State, opts Options) error {
	if opts.QuoteWidth <= 0 {
		opts.QuoteWidth = defaultQuoteWidth
	}

	var b strings.Builder
	b.WriteString(statusLine(state, opts.Colorize))
	b.WriteString("\n")

	switch state.Status {
	case models.StatusError:
		b.WriteString(paint(opts.Colorize, text.FgRed, "Error: "+state.Error))
		b.WriteString("\n")
	case models.StatusComplete:
		if state.Result != nil {
			b.WriteString("\n")
			b.WriteString(renderTab(*state.Result, state.ActiveTab, opts))
			b.WriteString("\n")
			b.WriteString(FooterNote)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func statusLine(state controller.State, colorize bool) string {
	if state.FileName == "" && state.Transcript == "" {
		return "No transcript loaded."
	}

	name := state.FileName
	if name == "" {
		name = "Transcript"
	}
	line := fmt.Sprintf("%s (%d chars)  Status: %s", name, state.CharacterCount(), state.Status)
	if state.Status == models.StatusAnalyzing {
		line += "  Analyzing..."
	}
	return paint(colorize, statusColor(state.Status), line)
}

func statusColor(s models.Status) text.Color {
	switch s {
	case models.StatusComplete:
		return text.FgGreen
	case models.StatusError:
		return text.FgRed
	case models.StatusAnalyzing:
		return text.FgYellow
	default:
		return text.FgBlue
	}
}

func paint(colorize bool, color text.Color, s string) string {
	if !colorize {
		return s
	}
	return text.Colors{color}.Sprint(s)
}

func renderTab(result models.AnalysisResult, tab models.Tab, opts Options) string {
	if tab == models.TabReels {
		return "VIRAL REELS SELECTION\n" + reelsTable(result.Reels, opts)
	}
	return "ROLLERCOASTER TEASER STRUCTURE\n" + teaserTable(result.Teaser, opts)
}

func teaserTable(segments []models.TeaserSegment, opts Options) string {
	tw := newWriter(opts)
	tw.AppendHeader(table.Row{"Phase", "Time", "Duration", "Quote", "B-Roll"})
	for _, seg := range segments {
		tw.AppendRow(table.Row{
			seg.Phase,
			seg.StartTime + " - " + seg.EndTime,
			seg.Duration,
			strconv.Quote(seg.ContentQuote),
			bRollCell(seg.BRoll),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: opts.QuoteWidth, WidthMaxEnforcer: text.WrapSoft},
		{Number: 5, WidthMax: opts.QuoteWidth / 2, WidthMaxEnforcer: text.WrapSoft},
	})
	return tw.Render()
}

func reelsTable(reels []models.ReelClip, opts Options) string {
	tw := newWriter(opts)
	tw.AppendHeader(table.Row{"#", "Time", "Duration", "Why", "Quote", "B-Roll"})
	for _, reel := range reels {
		tw.AppendRow(table.Row{
			reel.ReelNumber,
			reel.StartTime + " - " + reel.EndTime,
			reel.Duration,
			reel.Notes,
			strconv.Quote(reel.ContentQuote),
			bRollCell(reel.BRoll),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, WidthMax: opts.QuoteWidth / 2, WidthMaxEnforcer: text.WrapSoft},
		{Number: 5, WidthMax: opts.QuoteWidth, WidthMaxEnforcer: text.WrapSoft},
		{Number: 6, WidthMax: opts.QuoteWidth / 2, WidthMaxEnforcer: text.WrapSoft},
	})
	return tw.Render()
}

func newWriter(opts Options) table.Writer {
	tw := table.NewWriter()
	if opts.Colorize {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	return tw
}

func bRollCell(s string) string {
	if s == "" {
		return noBRoll
	}
	return s
}
