package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmptyText is returned when asked to copy nothing.
var ErrEmptyText = errors.New("clipboard: text to copy must not be empty")

// Writer writes plain text to the system clipboard.
type Writer interface {
	WriteAll(text string) error
}

type implWriter struct{}

// New returns a Writer backed by the system clipboard.
func New() Writer {
	return implWriter{}
}

func (implWriter) WriteAll(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend exists on this machine.
func Available() bool {
	return !clipboard.Unsupported
}
