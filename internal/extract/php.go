package extract

import (
	"regexp"
	"strings"

	"github.com/ingo-eichhorst/projectmap/internal/pathresolver"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var phpIncludeRe = regexp.MustCompile(`(?:include|require)(?:_once)?\s*\(?\s*['"]([^'"]+)['"]`)

// ExtractPHP recognizes include/require/include_once/require_once with a
// string argument containing "./" or "../" and emits "include" edges when
// the resolved path exists in the project.
func ExtractPHP(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	for _, m := range phpIncludeRe.FindAllStringSubmatch(content, -1) {
		spec := m[1]
		if !strings.Contains(spec, "./") && !strings.Contains(spec, "../") {
			continue
		}
		if seen[spec] {
			continue
		}
		seen[spec] = true

		resolved := pathresolver.ResolveRelative(fromPath, spec)
		if target, ok := firstExistingVariant(resolved, files); ok {
			deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: types.KindInclude})
		}
	}
	return deps
}
