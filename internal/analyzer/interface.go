package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/podcut/internal/models"
	"google.golang.org/genai"
)

// Analyzer turns a transcript into teaser and reel suggestions.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
}

// Generator is the external model call: a prompt plus an output schema in,
// the raw JSON text out.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}
