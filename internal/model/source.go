// Package model defines the data structures shared by the search engine and its front ends.
package model

// Path represents a file system path.
type Path string

// FileCandidate is a readable file discovered under one of the search roots.
// It is consumed once by a scanner and then dropped.
type FileCandidate struct {
	Path Path
	Root Path
	Size int64
}
