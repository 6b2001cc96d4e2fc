package processor

import (
	"context"
	"errors"
)

// ErrAnalysisFailed wraps the controller's error message when a transcript
// could not be analyzed.
var ErrAnalysisFailed = errors.New("analysis failed")

// Processor turns one subtitle file into report artifacts.
type Processor interface {
	Process(ctx context.Context, srtPath string) error
}
