package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImage is returned when an image model answers without inline data.
	ErrNoImage = errors.New("model returned no image")

	// ErrEmptyCompletion is returned when the model produced no usable text.
	ErrEmptyCompletion = errors.New("model returned an empty completion")
)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// MalformedOutputError reports model text that is not valid JSON once the
// code fences are stripped. Sanitized is kept for diagnostics only and must
// never be sent back to the caller.
type MalformedOutputError struct {
	Sanitized string
	Err       error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// UpstreamError wraps transport failures and non-2xx answers from Gemini.
type UpstreamError struct {
	Model string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API error (model %s): %v", e.Model, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
