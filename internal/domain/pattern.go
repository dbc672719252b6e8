package domain

import (
	"regexp"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

// Compile turns pattern text into a matcher.
//
// Empty text is not an error: it returns a nil pattern meaning "no active
// search". Text that does not parse returns a *PatternCompileError.
func Compile(text string) (*m.Pattern, error) {
	if text == "" {
		return nil, nil
	}

	re, err := regexp.Compile(text)
	if err != nil {
		return nil, &PatternCompileError{Pattern: text, Err: err}
	}

	return m.NewPattern(text, re), nil
}
