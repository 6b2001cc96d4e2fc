package processor

import (
	"github.com/nguyentantai21042004/podcut/internal/analyzer"
	"github.com/nguyentantai21042004/podcut/internal/config"
	"github.com/nguyentantai21042004/podcut/internal/logger"
)

type implProcessor struct {
	cfg      *config.Config
	analyzer analyzer.Analyzer
	logger   logger.Logger
}

// New creates a Processor. Every Process call drives its own controller, so a
// single Processor may be shared by concurrent workers.
func New(cfg *config.Config, a analyzer.Analyzer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		analyzer: a,
		logger:   log,
	}
}
