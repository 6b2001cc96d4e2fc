package controller

import "errors"

// FallbackErrorMessage is shown when a failed analysis carries no message.
const FallbackErrorMessage = "Failed to analyze transcript"

var (
	ErrInvalidFileKind = errors.New("please upload a valid .srt file")
	ErrReadTranscript  = errors.New("failed to read file")
	ErrNoResult        = errors.New("no completed analysis to report")
	ErrClipboard       = errors.New("copy report to clipboard")
)
