package controller

import (
	"context"
	"unicode/utf8"

	"github.com/nguyentantai21042004/podcut/internal/models"
)

// Controller owns the state of one transcript analysis session and drives the
// single external analysis call. It is safe for concurrent use; at most one
// analysis is in flight at a time.
type Controller interface {
	// LoadTranscript stores a subtitle file's text. Non-.srt names fail with
	// ErrInvalidFileKind and leave the current transcript untouched.
	LoadTranscript(data []byte, fileName string) error
	SetUserInstructions(text string)
	SetActiveTab(tab models.Tab)
	// Clear returns the controller to its initial empty state.
	Clear()
	// Submit runs one analysis and blocks until it resolves. It returns false
	// without calling the analyzer when the transcript is blank or another
	// analysis is already in flight.
	Submit(ctx context.Context) bool
	// CopyReport formats the current result and writes it to the clipboard.
	CopyReport() (string, error)
	State() State
}

// State is a point-in-time copy of the controller's fields.
type State struct {
	Transcript       string
	FileName         string
	UserInstructions string
	Status           models.Status
	Result           *models.AnalysisResult
	Error            string
	ActiveTab        models.Tab
}

// CharacterCount is the transcript length in characters.
func (s State) CharacterCount() int {
	return utf8.RuneCountInString(s.Transcript)
}
