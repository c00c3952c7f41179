package extract

import (
	"regexp"
	"strings"

	"github.com/ingo-eichhorst/projectmap/internal/pathresolver"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var (
	goImportBlockRe  = regexp.MustCompile(`import\s*\(([^)]*)\)`)
	goSingleImportRe = regexp.MustCompile(`import\s+"([^"]+)"`)
	goQuotedRe       = regexp.MustCompile(`"([^"]+)"`)
)

// ExtractGo recognizes single and grouped "import (...)" blocks. Only
// quoted paths beginning with "./" or "../" are treated as project-relative
// and resolved; matches that do not exist in the project are dropped (no
// [Missing] marker for Go, per spec.md §4.4).
func ExtractGo(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	emit := func(spec string) {
		if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
			return
		}
		if seen[spec] {
			return
		}
		seen[spec] = true

		resolved := pathresolver.ResolveRelative(fromPath, spec)
		if target, ok := firstExistingVariant(resolved, files); ok {
			deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: types.KindImport})
		}
	}

	for _, block := range goImportBlockRe.FindAllStringSubmatch(content, -1) {
		for _, q := range goQuotedRe.FindAllStringSubmatch(block[1], -1) {
			emit(q[1])
		}
	}
	for _, m := range goSingleImportRe.FindAllStringSubmatch(content, -1) {
		emit(m[1])
	}
	return deps
}
