package clipboard

import (
	"errors"
	"testing"
)

func TestWriteAllRejectsEmpty(t *testing.T) {
	if err := New().WriteAll(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("WriteAll(\"\") error = %v, want %v", err, ErrEmptyText)
	}
}
