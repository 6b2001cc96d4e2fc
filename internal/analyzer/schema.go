package analyzer

import "google.golang.org/genai"

// ResponseSchema is the strict output contract handed to the model. It is the
// only structural validation of a result: counts and timestamp formats are
// requested in the prompt but never checked after decoding.
func ResponseSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}

	teaserItem := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"phase":        str("Name of the phase (e.g., The Incline)"),
			"startTime":    str("Timestamp start (SRT format)"),
			"endTime":      str("Timestamp end (SRT format)"),
			"duration":     str("Duration (e.g., '7s')"),
			"startWord":    str("First 3-5 words of the clip"),
			"endWord":      str("Last 3-5 words of the clip"),
			"contentQuote": str("The full text content of this segment"),
			"bRoll":        str("Artlist search query for B-Roll, or empty string if not needed."),
		},
		PropertyOrdering: []string{"phase", "startTime", "endTime", "duration", "startWord", "endWord", "contentQuote", "bRoll"},
		Required:         []string{"phase", "startTime", "endTime", "duration", "startWord", "endWord", "contentQuote"},
	}

	reelItem := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"reelNumber":   {Type: genai.TypeInteger},
			"startTime":    str("Timestamp start (SRT format)"),
			"endTime":      str("Timestamp end (SRT format)"),
			"duration":     str("Duration (e.g., '35s')"),
			"startWord":    str(""),
			"endWord":      str(""),
			"contentQuote": str(""),
			"notes":        str("Explanation of why this clip was chosen (Opening/Content analysis)."),
			"bRoll":        str("Artlist search query for B-Roll, or empty string if not needed."),
		},
		PropertyOrdering: []string{"reelNumber", "startTime", "endTime", "duration", "startWord", "endWord", "contentQuote", "notes", "bRoll"},
		Required:         []string{"reelNumber", "startTime", "endTime", "duration", "startWord", "endWord", "contentQuote", "notes"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"teaser": {
				Type:        genai.TypeArray,
				Description: "The 4 distinct phases of the rollercoaster teaser.",
				Items:       teaserItem,
			},
			"reels": {
				Type:        genai.TypeArray,
				Description: "5 viral reel selections.",
				Items:       reelItem,
			},
		},
		PropertyOrdering: []string{"teaser", "reels"},
		Required:         []string{"teaser", "reels"},
	}
}
