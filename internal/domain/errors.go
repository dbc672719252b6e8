package domain

import (
	"errors"
	"fmt"
	"strings"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

// Sentinel reasons a file is skipped by the line scanner.
var (
	ErrBinaryFile   = errors.New("binary file")
	ErrFileTooLarge = errors.New("file too large")
	ErrNotText      = errors.New("file is not valid text")
)

// ErrCoordinatorClosed is returned by Update after Close.
var ErrCoordinatorClosed = errors.New("coordinator closed")

// PatternCompileError reports a pattern that is not a valid regular expression.
type PatternCompileError struct {
	Pattern string
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Message())
}

// Message returns the syntax problem without the pattern prefix, suitable
// for showing next to the pattern field.
func (e *PatternCompileError) Message() string {
	if e.Err == nil {
		return "syntax error"
	}

	return strings.TrimPrefix(e.Err.Error(), "error parsing regexp: ")
}

func (e *PatternCompileError) Unwrap() error {
	return e.Err
}

// EnumerationError means none of the search roots could be used.
type EnumerationError struct {
	Missing []m.Path
	Errs    []error
}

func (e *EnumerationError) Error() string {
	if len(e.Missing) == 0 {
		return "no search paths given"
	}

	parts := make([]string, 0, len(e.Missing))
	for _, path := range e.Missing {
		parts = append(parts, string(path))
	}

	return "no valid search path: " + strings.Join(parts, ", ")
}

func (e *EnumerationError) Unwrap() []error {
	return e.Errs
}
