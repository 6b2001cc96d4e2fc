package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/podcut/internal/controller"
	"github.com/nguyentantai21042004/podcut/internal/models"
)

// Process analyzes the transcript at srtPath, writes the report artifacts to
// the output directory and archives the source file.
func (p *implProcessor) Process(ctx context.Context, srtPath string) error {
	startTime := time.Now()
	fileName := filepath.Base(srtPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript analysis: %s", srtPath)
	p.logger.Info(ctx, "========================================")

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	ctrl := controller.New(p.analyzer, nil, p.logger)
	if err := ctrl.LoadTranscript(data, fileName); err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}
	if !ctrl.Submit(ctx) {
		return fmt.Errorf("%w: %s has no transcript text", ErrAnalysisFailed, fileName)
	}

	state := ctrl.State()
	if state.Status != models.StatusComplete || state.Result == nil {
		return fmt.Errorf("%w: %s", ErrAnalysisFailed, state.Error)
	}

	outputs, err := p.writeOutputs(ctx, *state.Result, fileName)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	if err := p.moveToArchived(ctx, srtPath); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed successfully!")
	for _, out := range outputs {
		p.logger.Info(ctx, "Output: %s", out)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}
