package core

import (
	"errors"
	"fmt"
)

// ErrMissingSheet indicates a workbook has no sheet at the expected position.
var ErrMissingSheet = errors.New("workbook has no sheet at position 1")

// ErrNoFile indicates a request arrived without a file payload.
var ErrNoFile = errors.New("no file provided")

// LoadError indicates the uploaded bytes are not a well-formed spreadsheet
// container. It is surfaced to the caller as a failed parse; never retried.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workbook: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// RenderError indicates the underlying document or spreadsheet encoding
// failed during export. Format is "docx" or "xlsx".
type RenderError struct {
	Format string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// GenerationError indicates the AI collaborator failed to produce a
// document. The whole request fails; there is no fallback document.
type GenerationError struct {
	Backend string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("ai generation (%s): %v", e.Backend, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
