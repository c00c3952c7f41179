// Package scanner walks a workspace root and produces a typed, ordered
// FileTree plus the flattened list of files eligible for dependency
// analysis. Traversal is recursive with bounded parallel fan-out so that
// open file descriptor count and peak memory stay predictable on very
// large trees.
package scanner

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ingo-eichhorst/projectmap/internal/classifier"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// DefaultIgnoreDirs is the authoritative ignore-directory set (spec.md §4.3
// / §6). Directories whose base name is in this set, or whose name begins
// with '.', are never descended into.
var DefaultIgnoreDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".vscode":      true,
	".idea":        true,
	"__pycache__":  true,
	"venv":         true,
	".env":         true,
	"coverage":     true,
	".nyc_output":  true,
	".cache":       true,
	"tmp":          true,
	"temp":         true,
}

// defaultBatchSize is the fixed directory-entry fan-out batch size from
// spec.md §4.3/§5: children of a directory are processed in batches of this
// size, each batch awaited before the next starts.
const defaultBatchSize = 10

// Sink receives notifications about recoverable scan failures. It mirrors
// the structured logging sink the ambient stack specifies; a nil Sink is
// treated as a no-op.
type Sink interface {
	DirectoryReadError(path string, cause error)
}

// Options configures a Scanner. The zero value uses DefaultIgnoreDirs and
// the spec-mandated batch size of 10, with no extra host-side filtering.
type Options struct {
	// IgnoreDirs overrides DefaultIgnoreDirs when non-nil.
	IgnoreDirs map[string]bool
	// BatchSize overrides defaultBatchSize when > 0.
	BatchSize int
	// ExtraIgnore is an optional host-supplied predicate, applied in
	// addition to IgnoreDirs/hidden-name filtering, on workspace-relative
	// paths (both directories and files). It is not part of the core's
	// default behavior: spec.md's invariant tests run with this nil.
	ExtraIgnore func(relPath string) bool
	Sink        Sink
}

// Scanner walks a workspace root and produces a FileTree.
type Scanner struct {
	ignoreDirs  map[string]bool
	batchSize   int
	extraIgnore func(string) bool
	sink        Sink
	collator    *collate.Collator
}

// New creates a Scanner from opts. A zero-value Options yields spec-default
// behavior.
func New(opts Options) *Scanner {
	ignore := opts.IgnoreDirs
	if ignore == nil {
		ignore = DefaultIgnoreDirs
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	return &Scanner{
		ignoreDirs:  ignore,
		batchSize:   batch,
		extraIgnore: opts.ExtraIgnore,
		sink:        opts.Sink,
		collator:    collate.New(language.Und),
	}
}

// Scan walks rootPath and returns the ordered FileTree. A failure to stat or
// open rootPath itself is returned as an error (root-level failure, per
// spec.md §4.3/§4.10); any deeper directory read failure is recovered
// locally (logged through Sink, contributes an empty child list).
func (s *Scanner) Scan(ctx context.Context, rootPath string) (types.FileTree, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "scan", Path: rootPath, Err: os.ErrInvalid}
	}
	root, err := os.Open(rootPath)
	if err != nil {
		return nil, err
	}
	root.Close()

	children, err := s.walkDir(ctx, rootPath, "")
	if err != nil {
		return nil, err
	}
	return types.FileTree(children), nil
}

// walkDir reads absDir's entries, recurses into kept subdirectories with
// bounded parallel fan-out, and returns the fully ordered children slice.
// relDir is the workspace-relative path of absDir ("" for the root).
func (s *Scanner) walkDir(ctx context.Context, absDir, relDir string) ([]*types.FileNode, error) {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		if s.sink != nil {
			s.sink.DirectoryReadError(relDir, err)
		}
		return nil, nil
	}

	kept := make([]os.DirEntry, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name != "." && len(name) > 0 && name[0] == '.' {
			continue
		}
		relPath := joinRel(relDir, name)
		if s.extraIgnore != nil && s.extraIgnore(relPath) {
			continue
		}
		if e.IsDir() && s.ignoreDirs[name] {
			continue
		}
		kept = append(kept, e)
	}

	var mu sync.Mutex
	nodes := make([]*types.FileNode, 0, len(kept))

	for start := 0; start < len(kept); start += s.batchSize {
		end := start + s.batchSize
		if end > len(kept) {
			end = len(kept)
		}
		batch := kept[start:end]

		var g errgroup.Group
		for _, entry := range batch {
			entry := entry
			g.Go(func() error {
				node, err := s.buildNode(ctx, absDir, relDir, entry)
				if err != nil || node == nil {
					return nil
				}
				mu.Lock()
				nodes = append(nodes, node)
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		// Cooperative cancellation (spec.md §5): let an in-flight batch run
		// to completion, then stop starting new ones. The caller (the
		// facade) detects ctx.Err() and returns types.ErrCancelled instead
		// of a partial tree.
		if ctx.Err() != nil {
			break
		}
	}

	sortNodes(nodes, s.collator)
	return nodes, nil
}

// buildNode stats a single directory entry and, for directories, recurses.
func (s *Scanner) buildNode(ctx context.Context, absDir, relDir string, entry os.DirEntry) (*types.FileNode, error) {
	name := entry.Name()
	absPath := filepath.Join(absDir, name)
	relPath := joinRel(relDir, name)

	if entry.IsDir() {
		children, err := s.walkDir(ctx, absPath, relPath)
		if err != nil {
			return nil, err
		}
		return &types.FileNode{
			Path:        relPath,
			FullPath:    absPath,
			Name:        name,
			IsDirectory: true,
			Children:    children,
		}, nil
	}

	info, err := entry.Info()
	if err != nil {
		if s.sink != nil {
			s.sink.DirectoryReadError(relPath, err)
		}
		return nil, nil
	}

	ext := path.Ext(name)
	return &types.FileNode{
		Path:         relPath,
		FullPath:     absPath,
		Name:         name,
		Extension:    ext,
		Size:         info.Size(),
		TypeTag:      classifier.TypeTagFor(ext),
		LastModified: info.ModTime(),
		IsDirectory:  false,
	}, nil
}

// sortNodes orders directories before files, each group by locale-aware
// name comparison, matching spec.md's FileTree invariant.
func sortNodes(nodes []*types.FileNode, collator *collate.Collator) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.IsDirectory != b.IsDirectory {
			return a.IsDirectory
		}
		return collator.CompareString(a.Name, b.Name) < 0
	})
}

func joinRel(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Flatten returns every non-directory node reachable from tree, in
// depth-first tree order. When onlySupported is true, only nodes whose
// extension is in the classifier's supported-extension set are included --
// this is the rule that produces ProjectStructure.Files.
func Flatten(tree types.FileTree, onlySupported bool) []*types.FileNode {
	var out []*types.FileNode
	var walk func(nodes []*types.FileNode)
	walk = func(nodes []*types.FileNode) {
		for _, n := range nodes {
			if n.IsDirectory {
				walk(n.Children)
				continue
			}
			if onlySupported && !classifier.IsSupported(n.Extension) {
				continue
			}
			out = append(out, n)
		}
	}
	walk(tree)
	return out
}
