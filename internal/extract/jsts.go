package extract

import (
	"regexp"

	"github.com/ingo-eichhorst/projectmap/internal/pathresolver"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var (
	jsStaticImportRe = regexp.MustCompile(`import\s+(?:[^;'"\n]*?\sfrom\s+)?['"]([^'"]+)['"]`)
	jsRequireRe      = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
	jsDynamicImport  = regexp.MustCompile(`import\(\s*['"]([^'"]+)['"]\s*\)`)
)

// ExtractJSTS recognizes static import (named/namespace/default/bare),
// require(...), and dynamic import(...) specifiers in a JavaScript or
// TypeScript file. Relative specifiers are resolved and probed against
// files; unresolved relative specifiers become "[Missing] <path>" edges and
// bare specifiers become "[External] <raw>" edges.
func ExtractJSTS(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	emit := func(spec string) {
		if seen[spec] {
			return
		}
		seen[spec] = true

		if pathresolver.IsRelativeSpecifier(spec) {
			resolved := pathresolver.ResolveRelative(fromPath, spec)
			if target, ok := firstExistingVariant(resolved, files); ok {
				deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: types.KindImport})
			} else {
				deps = append(deps, types.Dependency{From: fromPath, To: "[Missing] " + resolved, Kind: types.KindImport})
			}
			return
		}
		deps = append(deps, types.Dependency{From: fromPath, To: "[External] " + spec, Kind: types.KindImport})
	}

	for _, re := range []*regexp.Regexp{jsStaticImportRe, jsRequireRe, jsDynamicImport} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			emit(m[1])
		}
	}
	return deps
}

// firstExistingVariant probes pathresolver.ExtensionVariants(base) in order
// and returns the first one present in files.
func firstExistingVariant(base string, files FileSet) (string, bool) {
	for _, v := range pathresolver.ExtensionVariants(base) {
		if files.Has(v) {
			return v, true
		}
	}
	return "", false
}
