package analyzer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/podcut/internal/models"
)

// Analyze builds the prompt, makes exactly one model call and decodes the
// reply. Model errors are returned unchanged so their message reaches the
// user as-is.
func (a *implAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	startTime := time.Now()
	prompt := BuildPrompt(req.Transcript, req.UserInstructions)

	a.logger.Debug(ctx, "Sending analysis request (%d prompt bytes, instructions: %t)",
		len(prompt), req.UserInstructions != "")

	text, err := a.generator.Generate(ctx, prompt, ResponseSchema())
	if err != nil {
		a.logger.Error(ctx, "Analysis failed: %v", err)
		return models.AnalysisResult{}, err
	}

	result, err := decodeResult(text)
	if err != nil {
		a.logger.Error(ctx, "Analysis failed: %v", err)
		return models.AnalysisResult{}, err
	}

	// Counts are a contract with the model, not something we correct.
	if len(result.Teaser) != models.ExpectedTeaserPhases || len(result.Reels) != models.ExpectedReels {
		a.logger.Warn(ctx, "Model returned %d teaser phases and %d reels (expected %d and %d)",
			len(result.Teaser), len(result.Reels), models.ExpectedTeaserPhases, models.ExpectedReels)
	}

	a.logger.Info(ctx, "Analysis completed in %s", time.Since(startTime).Round(time.Millisecond))
	return result, nil
}
