package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of the analysis controller.
type Status int

const (
	StatusIdle Status = iota
	StatusAnalyzing
	StatusComplete
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusAnalyzing:
		return "ANALYZING"
	case StatusComplete:
		return "COMPLETE"
	case StatusError:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Tab selects which half of a result is displayed.
type Tab string

const (
	TabTeaser Tab = "teaser"
	TabReels  Tab = "reels"
)

// ParseTab accepts "teaser" or "reels" in any case.
func ParseTab(value string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabTeaser:
		return TabTeaser, nil
	case TabReels:
		return TabReels, nil
	default:
		return "", fmt.Errorf("unknown tab %q (want teaser or reels)", value)
	}
}
