package analyzer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/podcut/internal/config"
	"github.com/nguyentantai21042004/podcut/internal/logger"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

type implGemini struct {
	mu             sync.Mutex
	apiKeys        []string
	currentKey     int
	model          string
	thinkingBudget int32
	logger         logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API. Keys are used
// round-robin, one per call; a failed call is never retried with another key.
func NewGemini(cfg config.GeminiConfig, log logger.Logger) (Generator, error) {
	var keys []string
	for _, k := range cfg.APIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, ErrNoAPIKeys
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel
	}
	budget := cfg.ThinkingBudget
	if budget <= 0 {
		budget = config.DefaultThinkingBudget
	}

	return &implGemini{
		apiKeys:        keys,
		model:          model,
		thinkingBudget: int32(budget),
		logger:         log,
	}, nil
}

// Generate sends the prompt in JSON mode with the response schema attached and
// returns the concatenated text parts of the first candidate. An error from
// the API is returned as-is.
func (g *implGemini) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	keyIndex, key := g.nextKey()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	g.logger.Debug(ctx, "Calling %s with key %d/%d", g.model, keyIndex+1, len(g.apiKeys))

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		ResponseSchema:   schema,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(g.thinkingBudget),
		},
	})
	if err != nil {
		g.logger.Warn(ctx, "Gemini call failed with key %d: %v", keyIndex+1, err)
		return "", err
	}

	return responseText(result), nil
}

func (g *implGemini) nextKey() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.currentKey
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	return i, g.apiKeys[i]
}

// responseText joins the non-thought text parts of the first candidate.
func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}
	return text.String()
}
