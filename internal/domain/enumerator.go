package domain

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"tgrep.dev/pkg/tgrep/internal/adapter"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

// vcsDirs are never descended into.
var vcsDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// EnumerateOptions controls which entries the enumerator yields.
type EnumerateOptions struct {
	// Exclude holds glob patterns matched against the slash-separated path
	// relative to its root and against the entry's base name.
	Exclude []string
	// Hidden includes dot-prefixed files and directories.
	Hidden bool
}

// FileEnumerator expands search roots into candidate files.
type FileEnumerator interface {
	// Enumerate validates roots and returns a lazy depth-first sequence of
	// regular files. It fails only when no root is usable.
	Enumerate(ctx context.Context, roots []m.Path) (iter.Seq[m.FileCandidate], error)
}

type fileEnumerator struct {
	fsAdapter adapter.SourceFSAdapter
	exclude   []glob.Glob
	hidden    bool
}

// walkState is shared by every root of one enumeration.
type walkState struct {
	// visited holds real paths of directories already walked.
	visited map[m.Path]struct{}
	// fileRoots holds real paths of roots that are plain files; they may
	// also be reached from a directory root and are yielded only once.
	fileRoots map[m.Path]struct{}
	emitted   map[m.Path]struct{}
}

func newWalkState(roots []searchRoot) *walkState {
	state := &walkState{
		visited:   make(map[m.Path]struct{}),
		fileRoots: make(map[m.Path]struct{}),
		emitted:   make(map[m.Path]struct{}),
	}

	for _, root := range roots {
		if !root.info.IsDir() {
			state.fileRoots[root.realPath] = struct{}{}
		}
	}

	return state
}

// claimFile reports whether the file at realPath should be yielded.
func (w *walkState) claimFile(realPath m.Path) bool {
	if _, ok := w.fileRoots[realPath]; !ok {
		return true
	}

	if _, ok := w.emitted[realPath]; ok {
		return false
	}

	w.emitted[realPath] = struct{}{}

	return true
}

type searchRoot struct {
	path     m.Path
	realPath m.Path
	info     fs.FileInfo
}

// NewFileEnumerator builds an enumerator backed by fsAdapter.
// It returns an error when one of the exclude globs does not compile.
func NewFileEnumerator(fsAdapter adapter.SourceFSAdapter, opts EnumerateOptions) (FileEnumerator, error) {
	excludes := make([]glob.Glob, 0, len(opts.Exclude))

	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, g)
	}

	return &fileEnumerator{
		fsAdapter: fsAdapter,
		exclude:   excludes,
		hidden:    opts.Hidden,
	}, nil
}

func (e *fileEnumerator) Enumerate(ctx context.Context, paths []m.Path) (iter.Seq[m.FileCandidate], error) {
	roots, err := e.resolveRoots(paths)
	if err != nil {
		return nil, err
	}

	return func(yield func(m.FileCandidate) bool) {
		state := newWalkState(roots)

		for _, root := range roots {
			if ctx.Err() != nil {
				return
			}

			if !root.info.IsDir() {
				if !root.info.Mode().IsRegular() {
					slog.Debug("skipping non-regular root", "path", root.path, "mode", root.info.Mode())
					continue
				}

				if !state.claimFile(root.realPath) {
					slog.Debug("skipping file root already searched", "path", root.path)
					continue
				}

				if !yield(m.FileCandidate{Path: root.path, Root: root.path, Size: root.info.Size()}) {
					return
				}

				continue
			}

			if !e.walkDir(ctx, root.path, root.path, root.realPath, state, yield) {
				return
			}
		}
	}, nil
}

// resolveRoots stats every root, drops duplicates and unusable ones, and
// fails only if nothing is left.
func (e *fileEnumerator) resolveRoots(paths []m.Path) ([]searchRoot, error) {
	roots := make([]searchRoot, 0, len(paths))
	seen := make(map[m.Path]struct{}, len(paths))

	var (
		missing []m.Path
		errs    []error
	)

	for _, path := range paths {
		info, err := e.fsAdapter.Stat(path)
		if err != nil {
			slog.Warn("skipping search path", "path", path, "error", err)

			missing = append(missing, path)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))

			continue
		}

		realPath, err := e.fsAdapter.EvalSymlinks(path)
		if err != nil {
			realPath = path
		}

		if _, dup := seen[realPath]; dup {
			slog.Debug("skipping duplicate search path", "path", path, "real", realPath)
			continue
		}

		seen[realPath] = struct{}{}

		roots = append(roots, searchRoot{path: path, realPath: realPath, info: info})
	}

	if len(roots) == 0 {
		return nil, &EnumerationError{Missing: missing, Errs: errs}
	}

	return roots, nil
}

// walkDir visits dir depth-first in lexicographic order. It returns false
// once the consumer stopped or ctx was cancelled.
func (e *fileEnumerator) walkDir(
	ctx context.Context,
	root, dir, realPath m.Path,
	state *walkState,
	yield func(m.FileCandidate) bool,
) bool {
	if _, ok := state.visited[realPath]; ok {
		slog.Debug("skipping already visited directory", "path", dir, "real", realPath)
		return true
	}

	state.visited[realPath] = struct{}{}

	entries, err := e.fsAdapter.ReadDir(dir)
	if err != nil {
		slog.Debug("skipping unreadable directory", "path", dir, "error", err)
		return true
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	for _, entry := range entries {
		if ctx.Err() != nil {
			return false
		}

		name := entry.Name()
		path := e.fsAdapter.JoinPath(string(dir), name)

		if e.skipName(name) || e.excluded(root, path, name) {
			continue
		}

		info, childReal, ok := e.describe(name, path, realPath)
		if !ok {
			continue
		}

		switch {
		case info.IsDir():
			if !e.walkDir(ctx, root, path, childReal, state, yield) {
				return false
			}
		case info.Mode().IsRegular():
			if !state.claimFile(childReal) {
				continue
			}

			if !yield(m.FileCandidate{Path: path, Root: root, Size: info.Size()}) {
				return false
			}
		}
	}

	return true
}

// describe returns the followed file info of an entry and its real path.
// Broken links and vanished entries report !ok.
func (e *fileEnumerator) describe(name string, path, parentReal m.Path) (fs.FileInfo, m.Path, bool) {
	linfo, err := e.fsAdapter.Lstat(path)
	if err != nil {
		slog.Debug("skipping unreadable entry", "path", path, "error", err)
		return nil, "", false
	}

	if linfo.Mode()&fs.ModeSymlink == 0 {
		return linfo, e.fsAdapter.JoinPath(string(parentReal), name), true
	}

	info, err := e.fsAdapter.Stat(path)
	if err != nil {
		slog.Debug("skipping broken link", "path", path, "error", err)
		return nil, "", false
	}

	realPath, err := e.fsAdapter.EvalSymlinks(path)
	if err != nil {
		if info.IsDir() {
			slog.Debug("skipping unresolvable link", "path", path, "error", err)
			return nil, "", false
		}

		realPath = path
	}

	return info, realPath, true
}

func (e *fileEnumerator) skipName(name string) bool {
	if _, ok := vcsDirs[name]; ok {
		return true
	}

	return !e.hidden && strings.HasPrefix(name, ".")
}

func (e *fileEnumerator) excluded(root, path m.Path, name string) bool {
	if len(e.exclude) == 0 {
		return false
	}

	rel, err := e.fsAdapter.RelPath(root, path)
	if err != nil {
		rel = path
	}

	relSlash := filepath.ToSlash(string(rel))

	for _, g := range e.exclude {
		if g.Match(relSlash) || g.Match(name) {
			return true
		}
	}

	return false
}
