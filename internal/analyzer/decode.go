package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/podcut/internal/models"
)

const snippetLimit = 160

// wireResult keeps pointers so a missing or null array is distinguishable
// from an empty one.
type wireResult struct {
	Teaser *[]models.TeaserSegment `json:"teaser"`
	Reels  *[]models.ReelClip      `json:"reels"`
}

// decodeResult parses the model payload into a result. It checks shape only:
// an object carrying both arrays. Item counts and field contents pass through.
func decodeResult(text string) (models.AnalysisResult, error) {
	trimmed := strings.TrimSpace(stripCodeFence(text))
	if trimmed == "" {
		return models.AnalysisResult{}, ErrEmptyResponse
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(trimmed), &wire); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %v (payload snippet: %s)", ErrParseFailure, err, snippet(trimmed))
	}

	var missing []string
	if wire.Teaser == nil {
		missing = append(missing, "teaser")
	}
	if wire.Reels == nil {
		missing = append(missing, "reels")
	}
	if len(missing) > 0 {
		return models.AnalysisResult{}, fmt.Errorf("%w: missing required field(s): %s",
			ErrParseFailure, strings.Join(missing, ", "))
	}

	return models.AnalysisResult{Teaser: *wire.Teaser, Reels: *wire.Reels}, nil
}

func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return content
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.Index(trimmed, "\n"); nl >= 0 {
		// drop the language tag line, e.g. ```json
		trimmed = trimmed[nl+1:]
	}
	return strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
}

func snippet(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	if len(content) <= snippetLimit {
		return content
	}
	return content[:snippetLimit] + "..."
}
