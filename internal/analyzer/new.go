package analyzer

import (
	"github.com/nguyentantai21042004/podcut/internal/logger"
)

type implAnalyzer struct {
	generator Generator
	logger    logger.Logger
}

// New creates an Analyzer that formats requests for gen and decodes its replies.
func New(gen Generator, log logger.Logger) Analyzer {
	return &implAnalyzer{
		generator: gen,
		logger:    log,
	}
}
