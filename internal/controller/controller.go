package controller

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"

	"github.com/nguyentantai21042004/podcut/internal/logger"
	"github.com/nguyentantai21042004/podcut/internal/models"
	"github.com/nguyentantai21042004/podcut/internal/report"
)

func (c *implController) LoadTranscript(data []byte, fileName string) error {
	if !strings.EqualFold(filepath.Ext(fileName), subtitleExt) {
		return fmt.Errorf("%w: %s", ErrInvalidFileKind, fileName)
	}

	// Same as a browser text read: drop a leading BOM, replace invalid UTF-8.
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTranscript, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.transcript = string(text)
	c.fileName = fileName
	c.result = nil
	c.errMsg = ""
	c.status = models.StatusIdle
	return nil
}

func (c *implController) SetUserInstructions(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instructions = text
}

func (c *implController) SetActiveTab(tab models.Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
}

func (c *implController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transcript = ""
	c.fileName = ""
	c.instructions = ""
	c.result = nil
	c.errMsg = ""
	c.status = models.StatusIdle
	c.activeTab = models.TabTeaser
	c.requestID = ""
}

func (c *implController) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if strings.TrimSpace(c.transcript) == "" || c.status == models.StatusAnalyzing {
		c.mu.Unlock()
		return false
	}

	id := uuid.NewString()
	c.requestID = id
	c.status = models.StatusAnalyzing
	c.result = nil
	c.errMsg = ""
	req := models.AnalysisRequest{
		Transcript:       c.transcript,
		UserInstructions: c.instructions,
	}
	name := c.fileName
	c.mu.Unlock()

	ctx = logger.WithRequestID(ctx, id)
	c.logger.Info(ctx, "Analyzing %s (%d bytes)", name, len(req.Transcript))

	result, err := c.analyze(ctx, req)
	c.complete(ctx, id, result, err)
	return true
}

// analyze shields the controller from a panicking analyzer so a submission
// always resolves.
func (c *implController) analyze(ctx context.Context, req models.AnalysisRequest) (result models.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()
	return c.analyzer.Analyze(ctx, req)
}

func (c *implController) complete(ctx context.Context, id string, result models.AnalysisResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != models.StatusAnalyzing || c.requestID != id {
		c.logger.Warn(ctx, "Discarding stale analysis outcome (state is %s)", c.status)
		return
	}

	if err != nil {
		c.status = models.StatusError
		c.result = nil
		c.errMsg = errorMessage(err)
		c.logger.Error(ctx, "Analysis failed: %s", c.errMsg)
		return
	}

	c.status = models.StatusComplete
	c.result = result.Clone()
	c.errMsg = ""
	c.logger.Info(ctx, "Analysis complete: %d teaser phases, %d reels", len(result.Teaser), len(result.Reels))
}

func (c *implController) CopyReport() (string, error) {
	c.mu.Lock()
	if c.status != models.StatusComplete || c.result == nil {
		c.mu.Unlock()
		return "", ErrNoResult
	}
	text := report.Format(*c.result, c.fileName)
	c.mu.Unlock()

	if err := c.clipboard.WriteAll(text); err != nil {
		return text, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return text, nil
}

func (c *implController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Transcript:       c.transcript,
		FileName:         c.fileName,
		UserInstructions: c.instructions,
		Status:           c.status,
		Result:           c.result.Clone(),
		Error:            c.errMsg,
		ActiveTab:        c.activeTab,
	}
}

func errorMessage(err error) string {
	if msg := err.Error(); strings.TrimSpace(msg) != "" {
		return msg
	}
	return FallbackErrorMessage
}
