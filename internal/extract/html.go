package extract

import (
	"regexp"
	"strings"

	"github.com/ingo-eichhorst/projectmap/internal/pathresolver"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var (
	htmlScriptRe = regexp.MustCompile(`<script[^>]*\ssrc=["']([^"']+)["'][^>]*>`)
	htmlLinkRe   = regexp.MustCompile(`<link[^>]*\shref=["']([^"']+)["'][^>]*>`)
)

// ExtractHTML recognizes <script src="..."> (emits "script") and
// <link href="..."> (emits "stylesheet"), skipping absolute URLs, and emits
// an edge only when the resolved path exists.
func ExtractHTML(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	deps = append(deps, matchHTML(fromPath, content, htmlScriptRe, types.KindScript, files)...)
	deps = append(deps, matchHTML(fromPath, content, htmlLinkRe, types.KindStylesheet, files)...)
	return deps
}

func matchHTML(fromPath, content string, re *regexp.Regexp, kind types.DependencyKind, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	for _, m := range re.FindAllStringSubmatch(content, -1) {
		spec := m[1]
		if strings.HasPrefix(spec, "http") || strings.HasPrefix(spec, "//") {
			continue
		}
		key := string(kind) + "\x00" + spec
		if seen[key] {
			continue
		}
		seen[key] = true

		resolved := pathresolver.ResolveRelative(fromPath, spec)
		if target, ok := firstExistingVariant(resolved, files); ok {
			deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: kind})
		}
	}
	return deps
}
