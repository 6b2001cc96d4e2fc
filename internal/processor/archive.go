package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/podcut/internal/models"
	"github.com/nguyentantai21042004/podcut/internal/report"
)

const (
	reportSuffix = ".report.txt"
	jsonSuffix   = ".json"
	docxSuffix   = ".docx"
)

// OutputBase strips the extension from a transcript file name.
func OutputBase(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// writeOutputs writes the plain-text report and, when enabled, the JSON and
// DOCX renditions. Only the text report is mandatory.
func (p *implProcessor) writeOutputs(ctx context.Context, result models.AnalysisResult, fileName string) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	base := filepath.Join(p.cfg.Paths.Output, OutputBase(fileName))

	reportPath := base + reportSuffix
	if err := os.WriteFile(reportPath, []byte(report.Format(result, fileName)), 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	outputs := []string{reportPath}

	if p.cfg.Report.WriteJSON {
		jsonPath := base + jsonSuffix
		if err := writeJSON(jsonPath, result); err != nil {
			p.logger.Warn(ctx, "Failed to write JSON result %s: %v", jsonPath, err)
		} else {
			outputs = append(outputs, jsonPath)
		}
	}

	if p.cfg.Report.WriteDocx {
		docxPath := base + docxSuffix
		if err := report.WriteDocx(result, fileName, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write DOCX report %s: %v", docxPath, err)
		} else {
			outputs = append(outputs, docxPath)
		}
	}

	return outputs, nil
}

func writeJSON(path string, result models.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// moveToArchived moves a processed transcript out of the inbox.
func (p *implProcessor) moveToArchived(ctx context.Context, srtPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0o755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(srtPath))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", srtPath, destPath)

	if err := os.Rename(srtPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
