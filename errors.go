package reportpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for report generation failure conditions.
var (
	// ErrMissingFont means no usable text-rendering font could be found.
	// It is fatal for the whole rendering call and is returned before any
	// output is produced.
	ErrMissingFont = errors.New("reportpdf: no usable font for rendering")
)

// RenderError represents an error that occurred during a specific rendering
// operation. It wraps an underlying error and includes the operation name
// for context.
type RenderError struct {
	Op  string // operation name, e.g. "Output", "AddFont"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reportpdf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("reportpdf.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// newRenderError creates a new RenderError wrapping the given error with
// operation context.
func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
