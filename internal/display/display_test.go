package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/podcut/internal/controller"
	"github.com/nguyentantai21042004/podcut/internal/models"
)

func completeState(tab models.Tab) controller.State {
	result := &models.AnalysisResult{
		Teaser: []models.TeaserSegment{
			{Phase: models.PhaseIncline, StartTime: "00:00:01,000", EndTime: "00:00:05,000", Duration: "4s", ContentQuote: "we almost quit", BRoll: "Empty office at night"},
			{Phase: models.PhaseDrop, StartTime: "00:01:00,000", EndTime: "00:01:06,000", Duration: "6s", ContentQuote: "then the call came"},
			{Phase: models.PhaseRide, StartTime: "00:02:00,000", EndTime: "00:02:07,000", Duration: "7s", ContentQuote: "everything changed"},
			{Phase: models.PhaseEnd, StartTime: "00:03:00,000", EndTime: "00:03:05,000", Duration: "5s", ContentQuote: "and that is why"},
		},
		Reels: []models.ReelClip{
			{ReelNumber: 1, StartTime: "00:04:00,000", EndTime: "00:04:45,000", Duration: "45s", ContentQuote: "money is a tool", Notes: "contrarian hook"},
			{ReelNumber: 2, StartTime: "00:05:00,000", EndTime: "00:05:30,000", Duration: "30s", ContentQuote: "hire slowly", Notes: "practical advice", BRoll: "Handshake close-up"},
		},
	}
	return controller.State{
		Transcript: "1\n00:00:01,000 --> 00:00:05,000\nwe almost quit\n",
		FileName:   "episode.srt",
		Status:     models.StatusComplete,
		Result:     result,
		ActiveTab:  tab,
	}
}

func render(t *testing.T, state controller.State) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, state, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestRenderTeaserTab(t *testing.T) {
	out := render(t, completeState(models.TabTeaser))

	for _, want := range []string{
		"episode.srt",
		"Status: COMPLETE",
		"ROLLERCOASTER TEASER STRUCTURE",
		"The Incline",
		"The Drop",
		"The Ride",
		"The End",
		"00:00:01,000 - 00:00:05,000",
		`"we almost quit"`,
		"Empty office at night",
		FooterNote,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "contrarian hook") {
		t.Error("teaser tab should not render reels")
	}
}

func TestRenderReelsTab(t *testing.T) {
	out := render(t, completeState(models.TabReels))

	for _, want := range []string{
		"VIRAL REELS SELECTION",
		"contrarian hook",
		`"hire slowly"`,
		"Handshake close-up",
		FooterNote,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "The Incline") {
		t.Error("reels tab should not render the teaser")
	}
}

func TestRenderStates(t *testing.T) {
	tests := []struct {
		name      string
		state     controller.State
		want      []string
		notWanted []string
	}{
		{
			name:      "empty",
			state:     controller.State{Status: models.StatusIdle},
			want:      []string{"No transcript loaded."},
			notWanted: []string{FooterNote},
		},
		{
			name:      "loaded",
			state:     controller.State{Transcript: "héllo", FileName: "a.srt", Status: models.StatusIdle},
			want:      []string{"a.srt (5 chars)", "Status: IDLE"},
			notWanted: []string{FooterNote},
		},
		{
			name:      "analyzing",
			state:     controller.State{Transcript: "x", FileName: "a.srt", Status: models.StatusAnalyzing},
			want:      []string{"Status: ANALYZING", "Analyzing..."},
			notWanted: []string{FooterNote},
		},
		{
			name:      "error",
			state:     controller.State{Transcript: "x", FileName: "a.srt", Status: models.StatusError, Error: "rate limited"},
			want:      []string{"Status: ERROR", "Error: rate limited"},
			notWanted: []string{FooterNote},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, tt.state)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, bad := range tt.notWanted {
				if strings.Contains(out, bad) {
					t.Errorf("output should not contain %q\n%s", bad, out)
				}
			}
		})
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	state := completeState(models.TabTeaser)
	before := state.Result.Teaser[1].BRoll

	render(t, state)

	if state.Result.Teaser[1].BRoll != before {
		t.Error("Render() changed the result")
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true, want false")
	}
	if opts := OptionsFor(&bytes.Buffer{}); opts.Colorize {
		t.Error("OptionsFor(buffer) should not colorize")
	}
}
