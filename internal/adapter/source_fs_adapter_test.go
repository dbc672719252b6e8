package adapter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

func TestLocalSourceFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.txt"), "b\n")
	writeTestFile(t, filepath.Join(root, "a.txt"), "a\n")
	mustMkdir(t, filepath.Join(root, "c"))

	entries, err := adapter.ReadDir(m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	want := []string{"a.txt", "b.txt", "c"}
	if len(names) != len(want) {
		t.Fatalf("ReadDir() = %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ReadDir()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestLocalSourceFSAdapter_Open(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "notes.txt")
	content := "foo\nbar\n"
	writeTestFile(t, path, content)

	rc, err := adapter.Open(m.Path(path))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	defer func() { _ = rc.Close() }()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("Open() read %q, want %q", string(got), content)
	}

	if _, err := adapter.Open(m.Path(filepath.Join(root, "missing.txt"))); !os.IsNotExist(err) {
		t.Fatalf("Open() on missing file error = %v, want not-exist", err)
	}
}

func TestLocalSourceFSAdapter_StatAndLstat(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link.txt")
	writeTestFile(t, target, "hello\n")

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	info, err := adapter.Stat(m.Path(link))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if !info.Mode().IsRegular() {
		t.Fatalf("Stat() mode = %v, want regular file", info.Mode())
	}

	linfo, err := adapter.Lstat(m.Path(link))
	if err != nil {
		t.Fatalf("Lstat() error = %v", err)
	}

	if linfo.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("Lstat() mode = %v, want symlink", linfo.Mode())
	}
}

func TestLocalSourceFSAdapter_EvalSymlinks(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	realDir := filepath.Join(root, "real")
	mustMkdir(t, realDir)

	link := filepath.Join(root, "alias")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	fromLink, err := adapter.EvalSymlinks(m.Path(link))
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}

	fromReal, err := adapter.EvalSymlinks(m.Path(realDir))
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}

	if fromLink != fromReal {
		t.Fatalf("EvalSymlinks() = %s, want %s", fromLink, fromReal)
	}

	if !filepath.IsAbs(string(fromLink)) {
		t.Fatalf("EvalSymlinks() = %s, want absolute path", fromLink)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/sub/dir/file.txt")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "file.txt") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "file.txt"))
	}

	joined := adapter.JoinPath("/tmp", "project", "sub", "file.txt")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "file.txt") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "sub", "file.txt"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
