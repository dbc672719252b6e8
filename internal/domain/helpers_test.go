package domain_test

import (
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	writeBytes(t, path, []byte(contents))
}

func writeBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, contents, 0o644))
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
}

// relPaths drains files and returns their paths relative to base, slash separated.
func relPaths(t *testing.T, base string, files iter.Seq[m.FileCandidate]) []string {
	t.Helper()

	var paths []string

	for file := range files {
		rel, err := filepath.Rel(base, string(file.Path))
		require.NoError(t, err)

		paths = append(paths, filepath.ToSlash(rel))
	}

	return paths
}

func matchLines(matches []m.Match) []string {
	lines := make([]string, 0, len(matches))
	for _, match := range matches {
		lines = append(lines, match.String())
	}

	return lines
}
