package model

import "fmt"

// Match is a single matching line. Start and End are byte offsets of the
// first matched span within Text.
type Match struct {
	Path  Path
	Line  int
	Text  string
	Start int
	End   int
}

// String renders the match the way grep does: path:line:text.
func (mt Match) String() string {
	return fmt.Sprintf("%s:%d:%s", mt.Path, mt.Line, mt.Text)
}
