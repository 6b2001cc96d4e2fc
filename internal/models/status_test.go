package models

import "testing"

func TestParseTab(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tab
		wantErr bool
	}{
		{"teaser", "teaser", TabTeaser, false},
		{"reels upper", "REELS", TabReels, false},
		{"padded", "  teaser ", TabTeaser, false},
		{"unknown", "clips", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTab(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTab() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTab() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusAnalyzing.String() != "ANALYZING" {
		t.Errorf("String() = %v, want ANALYZING", StatusAnalyzing.String())
	}
	if Status(9).String() != "Status(9)" {
		t.Errorf("String() = %v, want Status(9)", Status(9).String())
	}
}

func TestHasBRoll(t *testing.T) {
	if (TeaserSegment{}).HasBRoll() {
		t.Error("empty bRoll should count as absent")
	}
	if !(ReelClip{BRoll: "city night lapse"}).HasBRoll() {
		t.Error("non-empty bRoll should be present")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &AnalysisResult{
		Teaser: []TeaserSegment{{Phase: PhaseIncline}},
		Reels:  []ReelClip{{ReelNumber: 1}},
	}
	cp := orig.Clone()
	cp.Teaser[0].Phase = "changed"
	cp.Reels[0].ReelNumber = 7

	if orig.Teaser[0].Phase != PhaseIncline || orig.Reels[0].ReelNumber != 1 {
		t.Error("Clone() shares backing arrays with the original")
	}

	var nilResult *AnalysisResult
	if nilResult.Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}
