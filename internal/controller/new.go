package controller

import (
	"sync"

	"github.com/nguyentantai21042004/podcut/internal/analyzer"
	"github.com/nguyentantai21042004/podcut/internal/clipboard"
	"github.com/nguyentantai21042004/podcut/internal/logger"
	"github.com/nguyentantai21042004/podcut/internal/models"
)

const subtitleExt = ".srt"

type implController struct {
	analyzer  analyzer.Analyzer
	clipboard clipboard.Writer
	logger    logger.Logger

	mu           sync.Mutex
	transcript   string
	fileName     string
	instructions string
	status       models.Status
	result       *models.AnalysisResult
	errMsg       string
	activeTab    models.Tab
	// requestID identifies the analysis currently in flight; a completion
	// whose ID no longer matches is stale and dropped.
	requestID string
}

// New creates a Controller in the Idle state. A nil clipboard falls back to
// the system clipboard.
func New(a analyzer.Analyzer, cb clipboard.Writer, log logger.Logger) Controller {
	if cb == nil {
		cb = clipboard.New()
	}
	return &implController{
		analyzer:  a,
		clipboard: cb,
		logger:    log,
		status:    models.StatusIdle,
		activeTab: models.TabTeaser,
	}
}
