package models

// Teaser phase names the model is asked to use, in narrative order.
const (
	PhaseIncline = "The Incline"
	PhaseDrop    = "The Drop"
	PhaseRide    = "The Ride"
	PhaseEnd     = "The End"
)

// Expected cardinalities of a successful analysis. They are requested from
// the model, never enforced locally.
const (
	ExpectedTeaserPhases = 4
	ExpectedReels        = 5
)

// TeaserPhases lists the four phases in the order they appear in a teaser.
var TeaserPhases = []string{PhaseIncline, PhaseDrop, PhaseRide, PhaseEnd}

// AnalysisRequest is the input of a single analysis. It is passed by value
// so a submitted request cannot change while the call is in flight.
type AnalysisRequest struct {
	Transcript       string
	UserInstructions string
}

// TeaserSegment is one phase of the rollercoaster teaser.
type TeaserSegment struct {
	Phase        string `json:"phase"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Duration     string `json:"duration"`
	StartWord    string `json:"startWord"`
	EndWord      string `json:"endWord"`
	ContentQuote string `json:"contentQuote"`
	BRoll        string `json:"bRoll,omitempty"`
}

// HasBRoll reports whether the segment carries a B-roll suggestion.
// An empty value means "no suggestion", not a missing field.
func (s TeaserSegment) HasBRoll() bool {
	return s.BRoll != ""
}

// ReelClip is a standalone highlight clip candidate.
type ReelClip struct {
	ReelNumber   int    `json:"reelNumber"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Duration     string `json:"duration"`
	StartWord    string `json:"startWord"`
	EndWord      string `json:"endWord"`
	ContentQuote string `json:"contentQuote"`
	Notes        string `json:"notes"`
	BRoll        string `json:"bRoll,omitempty"`
}

// HasBRoll reports whether the reel carries a B-roll suggestion.
func (r ReelClip) HasBRoll() bool {
	return r.BRoll != ""
}

// AnalysisResult is the structured output of one analysis.
type AnalysisResult struct {
	Teaser []TeaserSegment `json:"teaser"`
	Reels  []ReelClip      `json:"reels"`
}

// Clone returns a deep copy so callers cannot mutate controller state
// through a snapshot.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	out := &AnalysisResult{}
	if r.Teaser != nil {
		out.Teaser = append([]TeaserSegment(nil), r.Teaser...)
	}
	if r.Reels != nil {
		out.Reels = append([]ReelClip(nil), r.Reels...)
	}
	return out
}
