package model

import "regexp"

// Pattern is a compiled search expression together with the text it was built from.
// A nil *Pattern means "no active search".
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// NewPattern wraps an already compiled expression.
func NewPattern(source string, re *regexp.Regexp) *Pattern {
	return &Pattern{source: source, re: re}
}

// Source returns the text the pattern was compiled from.
func (p *Pattern) Source() string {
	if p == nil {
		return ""
	}

	return p.source
}

// FindIndex returns the byte span of the leftmost match in line, or nil.
func (p *Pattern) FindIndex(line []byte) []int {
	if p == nil || p.re == nil {
		return nil
	}

	return p.re.FindIndex(line)
}

// String implements fmt.Stringer.
func (p *Pattern) String() string {
	return p.Source()
}
