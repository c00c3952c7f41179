package extract

import (
	"regexp"
	"strings"

	"github.com/ingo-eichhorst/projectmap/internal/pathresolver"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var (
	pyFromImportRe = regexp.MustCompile(`(?m)^\s*from\s+(\.*[\w.]*)\s+import\b`)
	pyImportRe     = regexp.MustCompile(`(?m)^\s*import\s+(\.*[\w.]+)`)
)

// ExtractPython recognizes "from X import ..." and "import X". Only
// relative (dotted, leading '.') forms that resolve to an existing project
// file produce an edge; non-relative imports are not emitted at all (no
// [External] marker for Python, per spec.md §4.4).
func ExtractPython(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	emit := func(dotted string) {
		if !strings.HasPrefix(dotted, ".") {
			return
		}
		if seen[dotted] {
			return
		}
		seen[dotted] = true

		resolved := pathresolver.ResolvePythonDotted(fromPath, dotted)
		if target, ok := firstExistingVariant(resolved, files); ok {
			deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: types.KindImport})
		}
	}

	for _, m := range pyFromImportRe.FindAllStringSubmatch(content, -1) {
		emit(m[1])
	}
	for _, m := range pyImportRe.FindAllStringSubmatch(content, -1) {
		emit(m[1])
	}
	return deps
}
