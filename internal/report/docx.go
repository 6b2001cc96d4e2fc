package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/podcut/internal/models"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	titleSize   = 16
	headingSize = 15
	textColor   = "000000"
	quoteColor  = "444444"
)

// WriteDocx renders the same report as Format into a styled .docx file.
func WriteDocx(result models.AnalysisResult, fileName, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), reportTitle, true, titleSize)
	addStyledRun(doc.AddParagraph(""), "File: "+displayName(fileName), false, fontSize)

	addStyledRun(doc.AddParagraph(""), teaserHeading, true, headingSize)
	for _, t := range result.Teaser {
		addStyledRun(doc.AddParagraph(""), TeaserLine(t), true, fontSize)
		if t.HasBRoll() {
			addStyledRun(doc.AddParagraph(""), bRollLabel+t.BRoll, false, fontSize)
		}
		addQuote(doc.AddParagraph(""), t.ContentQuote)
	}

	addStyledRun(doc.AddParagraph(""), reelsHeading, true, headingSize)
	for _, r := range result.Reels {
		addStyledRun(doc.AddParagraph(""), ReelLine(r), true, fontSize)
		addLabeled(doc.AddParagraph(""), "WHY: ", r.Notes)
		if r.HasBRoll() {
			addStyledRun(doc.AddParagraph(""), bRollLabel+r.BRoll, false, fontSize)
		}
		addQuote(doc.AddParagraph(""), r.ContentQuote)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx %s: %w", outputPath, err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}

func addLabeled(p *docx.Paragraph, label, text string) {
	p.AddText(label).Font(fontName).Size(fontSize).Color(textColor).Bold(true)
	p.AddText(text).Font(fontName).Size(fontSize).Color(textColor)
}

func addQuote(p *docx.Paragraph, quote string) {
	p.AddText(`"` + quote + `"`).Font(fontName).Size(fontSize).Color(quoteColor)
}
