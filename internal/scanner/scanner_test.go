package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestScanEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	s := New(Options{})
	tree, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestScanOrdersDirectoriesFirstThenLocaleAware(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zeta.go", "package z")
	writeFile(t, root, "alpha.go", "package a")
	writeFile(t, root, "beta/file.go", "package b")

	s := New(Options{})
	tree, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, tree, 3)

	assert.True(t, tree[0].IsDirectory)
	assert.Equal(t, "beta", tree[0].Name)
	assert.False(t, tree[1].IsDirectory)
	assert.Equal(t, "alpha.go", tree[1].Name)
	assert.False(t, tree[2].IsDirectory)
	assert.Equal(t, "zeta.go", tree[2].Name)
}

func TestScanSkipsIgnoredAndHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/pkg/index.js", "x")
	writeFile(t, root, ".git/HEAD", "x")
	writeFile(t, root, ".hidden/file.go", "x")
	writeFile(t, root, "src/main.go", "package main")

	s := New(Options{})
	tree, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "src", tree[0].Name)
}

func TestScanRootFailureReturnsError(t *testing.T) {
	s := New(Options{})
	_, err := s.Scan(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestFlattenOnlySupported(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/index.js", "console.log(1)")
	writeFile(t, root, "src/logo.png", "binary")

	s := New(Options{})
	tree, err := s.Scan(context.Background(), root)
	require.NoError(t, err)

	all := Flatten(tree, false)
	supported := Flatten(tree, true)
	assert.Len(t, all, 2)
	assert.Len(t, supported, 1)
	assert.Equal(t, "src/index.js", supported[0].Path)
}

func TestScanExtraIgnoreHook(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.go", "package a")
	writeFile(t, root, "skip.go", "package b")

	s := New(Options{ExtraIgnore: func(rel string) bool { return rel == "skip.go" }})
	tree, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "keep.go", tree[0].Name)
}

type recordingSink struct{ errs []string }

func (r *recordingSink) DirectoryReadError(path string, cause error) {
	r.errs = append(r.errs, path)
}

func TestScanDirectoryReadFailureIsRecovered(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	require.NoError(t, os.MkdirAll(blocked, 0o000))
	defer os.Chmod(blocked, 0o755) // allow cleanup

	sink := &recordingSink{}
	s := New(Options{Sink: sink})
	tree, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	// blocked dir contributes an empty child list, not a hard failure.
	require.Len(t, tree, 1)
	assert.True(t, tree[0].IsDirectory)
	assert.Empty(t, tree[0].Children)
}

func TestScanStopsIssuingBatchesOnCancellation(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 25; i++ {
		writeFile(t, root, string(rune('a'+i))+".go", "package src")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Options{BatchSize: 5})
	tree, err := s.Scan(ctx, root)
	require.NoError(t, err)
	// A pre-cancelled context lets the in-flight first batch complete but
	// never starts a second one, so well under the full 25 entries land in
	// the tree. The scanner itself never errors on cancellation: it is the
	// facade that turns this into a distinct outcome.
	assert.Less(t, len(tree), 25)
}
