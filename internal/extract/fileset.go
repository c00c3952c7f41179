// Package extract implements the lexical (regex-grade) recognizers that
// turn a single file's text into outgoing Dependency edges, plus the
// comment/element/database-link recognizers that enrich a FileNode.
// Nothing here performs AST construction, per spec.md's Non-goals.
package extract

import "github.com/ingo-eichhorst/projectmap/pkg/types"

// FileSet is the frozen snapshot of a project's file paths, taken after
// scanning completes and before extraction begins (spec.md §5: "the file
// map used to resolve imports is frozen ... so extractors read a fixed
// snapshot"). It lets extractors check whether a resolved path exists in
// the project and look up files by base name (for the Java extractor).
type FileSet struct {
	paths  map[string]struct{}
	byName map[string][]string
}

// NewFileSet builds a FileSet from the flattened, supported-extension file
// list produced by the Scanner.
func NewFileSet(files []*types.FileNode) FileSet {
	fs := FileSet{
		paths:  make(map[string]struct{}, len(files)),
		byName: make(map[string][]string),
	}
	for _, f := range files {
		fs.paths[f.Path] = struct{}{}
		fs.byName[f.Name] = append(fs.byName[f.Name], f.Path)
	}
	return fs
}

// Has reports whether path exists in the frozen file snapshot.
func (fs FileSet) Has(path string) bool {
	_, ok := fs.paths[path]
	return ok
}

// ByName returns every project file whose base name equals name, e.g.
// "C.java".
func (fs FileSet) ByName(name string) []string {
	return fs.byName[name]
}
