package report

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/podcut/internal/models"
)

const (
	reportTitle   = "🎙️ PODCUT PRO AI REPORT"
	teaserHeading = "🎢 ROLLERCOASTER TEASER STRUCTURE"
	teaserRule    = "================================="
	reelsHeading  = "🎬 VIRAL REELS SELECTION (TOP 5)"
	reelsRule     = "================================"
	bRollLabel    = "🎥 B-ROLL: "
	fallbackName  = "Transcript"
)

// Format renders result as the plain-text producer report. The output is
// deterministic and every time, duration and quote appears verbatim.
func Format(result models.AnalysisResult, fileName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nFile: %s\n\n", reportTitle, displayName(fileName))

	b.WriteString(teaserHeading + "\n")
	b.WriteString(teaserRule + "\n")
	for _, t := range result.Teaser {
		b.WriteString(TeaserLine(t) + "\n")
		if t.HasBRoll() {
			b.WriteString(bRollLabel + t.BRoll + "\n")
		}
		fmt.Fprintf(&b, "QUOTE: \"%s\"\n\n", t.ContentQuote)
	}

	b.WriteString("\n" + reelsHeading + "\n")
	b.WriteString(reelsRule + "\n")
	for _, r := range result.Reels {
		b.WriteString(ReelLine(r) + "\n")
		fmt.Fprintf(&b, "WHY: %s\n", r.Notes)
		if r.HasBRoll() {
			b.WriteString(bRollLabel + r.BRoll + "\n")
		}
		fmt.Fprintf(&b, "QUOTE: \"%s\"\n\n", r.ContentQuote)
	}

	return b.String()
}

// TeaserLine is the block heading for one teaser phase.
func TeaserLine(t models.TeaserSegment) string {
	return fmt.Sprintf("[%s] %s - %s (%s)", t.Phase, t.StartTime, t.EndTime, t.Duration)
}

// ReelLine is the block heading for one reel.
func ReelLine(r models.ReelClip) string {
	return fmt.Sprintf("REEL #%d | %s - %s (%s)", r.ReelNumber, r.StartTime, r.EndTime, r.Duration)
}

func displayName(fileName string) string {
	if fileName == "" {
		return fallbackName
	}
	return fileName
}
