package extract

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// defaultBatchSize is the fixed per-batch file count from spec.md §4.9/§5:
// the flattened supported-file list is processed in batches of 20,
// each batch awaited before the next starts.
const defaultBatchSize = 20

// ReadFunc reads a file's full content given its absolute path.
type ReadFunc func(fullPath string) ([]byte, error)

// Sink receives per-file extraction failures. A nil Sink is a no-op.
type Sink interface {
	AnalysisError(relPath string, cause error)
}

// Options configures Build. The zero value uses the spec-mandated batch
// size of 20.
type Options struct {
	BatchSize int
	Sink      Sink
}

// Result is the output of a DependencyBuilder pass: the deduplicated,
// sorted edge list and the per-run content cache keyed by workspace-relative
// path, populated during extraction and read-accessible afterward.
type Result struct {
	Dependencies []types.Dependency
	ContentCache map[string][]byte
}

// Build orchestrates the LanguageExtractor family, CommentExtractor,
// ElementExtractor, and DatabaseLinkExtractor across files (already
// filtered to the supported-extension set), reading content via read in
// batches of Options.BatchSize, and returns the deduplicated global edge
// list. Each file's FileNode is mutated in place with its recognized
// Comments/Functions/Variables/Classes. A read or extraction failure on one
// file is reported through Sink and contributes zero edges for that file;
// it never aborts the batch.
func Build(ctx context.Context, files []*types.FileNode, read ReadFunc, fileSet FileSet, opts Options) (*Result, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var mu sync.Mutex
	dedup := make(map[string]types.Dependency)
	cache := make(map[string][]byte, len(files))

	for start := 0; start < len(files); start += batchSize {
		end := start + batchSize
		if end > len(files) {
			end = len(files)
		}
		batch := files[start:end]

		var g errgroup.Group
		for _, f := range batch {
			f := f
			g.Go(func() error {
				edges := extractOne(f, read, fileSet, opts.Sink, &mu, cache)
				mu.Lock()
				for _, e := range edges {
					dedup[e.Key()] = e
				}
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		// See scanner.walkDir: in-flight batches finish, no new batch
		// starts once the caller's context is done. The facade turns this
		// into types.ErrCancelled.
		if ctx.Err() != nil {
			break
		}
	}

	deps := make([]types.Dependency, 0, len(dedup))
	for _, d := range dedup {
		deps = append(deps, d)
	}
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].From != deps[j].From {
			return deps[i].From < deps[j].From
		}
		if deps[i].To != deps[j].To {
			return deps[i].To < deps[j].To
		}
		return deps[i].Kind < deps[j].Kind
	})

	return &Result{Dependencies: deps, ContentCache: cache}, nil
}

// extractOne reads a single file's content and runs every applicable
// extractor, mutating node in place and returning its edges.
func extractOne(node *types.FileNode, read ReadFunc, fileSet FileSet, sink Sink, mu *sync.Mutex, cache map[string][]byte) []types.Dependency {
	content, err := read(node.FullPath)
	if err != nil {
		if sink != nil {
			sink.AnalysisError(node.Path, err)
		}
		return nil
	}

	mu.Lock()
	cache[node.Path] = content
	mu.Unlock()

	text := string(content)

	node.Comments = ExtractComments(node.Extension, text)
	if len(node.Comments) > 0 {
		node.Description = node.Comments[0]
	}
	elems := ExtractElements(node.Extension, text)
	node.Functions = elems.Functions
	node.Variables = elems.Variables
	node.Classes = elems.Classes

	var edges []types.Dependency
	if langExtractor := extractorFor(node.Extension); langExtractor != nil {
		failed := false
		func() {
			defer func() {
				if r := recover(); r != nil {
					failed = true
					if sink != nil {
						sink.AnalysisError(node.Path, panicError{r})
					}
				}
			}()
			edges = append(edges, langExtractor(node.Path, text, fileSet)...)
		}()
		if failed {
			return nil
		}
	}
	edges = append(edges, ExtractDatabaseLinks(node.Path, text)...)

	return edges
}

type panicError struct{ v interface{} }

func (p panicError) Error() string { return "panic during extraction" }
