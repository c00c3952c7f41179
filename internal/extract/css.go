package extract

import (
	"regexp"
	"strings"

	"github.com/ingo-eichhorst/projectmap/internal/pathresolver"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var cssImportRe = regexp.MustCompile(`@import\s+(?:url\(\s*)?["']([^"']+)["']\s*\)?`)

// ExtractCSS recognizes "@import "..."" and "@import url("...")", skipping
// absolute URLs, and emits "import" edges when the resolved path exists.
func ExtractCSS(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	for _, m := range cssImportRe.FindAllStringSubmatch(content, -1) {
		spec := m[1]
		if strings.HasPrefix(spec, "http") || strings.HasPrefix(spec, "//") {
			continue
		}
		if seen[spec] {
			continue
		}
		seen[spec] = true

		resolved := pathresolver.ResolveRelative(fromPath, spec)
		if target, ok := firstExistingVariant(resolved, files); ok {
			deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: types.KindImport})
		}
	}
	return deps
}
