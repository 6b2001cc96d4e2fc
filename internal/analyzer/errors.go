package analyzer

import "errors"

var (
	// ErrEmptyResponse means the model call succeeded but returned no payload.
	ErrEmptyResponse = errors.New("no response generated")
	// ErrParseFailure means the payload was not JSON of the declared shape.
	ErrParseFailure = errors.New("parse analysis response")
	// ErrNoAPIKeys is returned by NewGemini when no key is configured.
	ErrNoAPIKeys = errors.New("gemini: no api keys configured")
)
