package analyzer

import (
	"errors"
	"testing"

	"github.com/nguyentantai21042004/podcut/internal/config"
	"github.com/nguyentantai21042004/podcut/internal/logger"
	"google.golang.org/genai"
)

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(config.GeminiConfig{APIKeys: []string{"", "  "}}, logger.Discard())
	if !errors.Is(err, ErrNoAPIKeys) {
		t.Errorf("NewGemini() error = %v, want %v", err, ErrNoAPIKeys)
	}
}

func TestNewGeminiDefaults(t *testing.T) {
	gen, err := NewGemini(config.GeminiConfig{APIKeys: []string{"k"}}, logger.Discard())
	if err != nil {
		t.Fatalf("NewGemini() error = %v", err)
	}
	g := gen.(*implGemini)
	if g.model != config.DefaultModel {
		t.Errorf("model = %v, want %v", g.model, config.DefaultModel)
	}
	if g.thinkingBudget != config.DefaultThinkingBudget {
		t.Errorf("thinkingBudget = %v, want %v", g.thinkingBudget, config.DefaultThinkingBudget)
	}
}

func TestNextKeyRoundRobin(t *testing.T) {
	gen, err := NewGemini(config.GeminiConfig{APIKeys: []string{"a", "b", "c"}}, logger.Discard())
	if err != nil {
		t.Fatalf("NewGemini() error = %v", err)
	}
	g := gen.(*implGemini)

	var got []string
	for range 4 {
		_, key := g.nextKey()
		got = append(got, key)
	}
	want := []string{"a", "b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name   string
		result *genai.GenerateContentResponse
		want   string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{
			name: "joins text and skips thoughts",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{Text: "planning the arc", Thought: true},
						{Text: `{"teaser":`},
						nil,
						{Text: `[],"reels":[]}`},
					}},
				}},
			},
			want: `{"teaser":[],"reels":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.result); got != tt.want {
				t.Errorf("responseText() = %q, want %q", got, tt.want)
			}
		})
	}
}
