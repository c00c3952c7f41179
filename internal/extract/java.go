package extract

import (
	"regexp"
	"strings"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var javaImportRe = regexp.MustCompile(`import\s+(?:static\s+)?([A-Za-z_][\w.]*)\s*;`)

// ExtractJava recognizes "import [static] a.b.C;" and emits an edge to
// every project file named "C.java" (there may be more than one). The
// file's own package declaration is not used for edge emission.
func ExtractJava(fromPath, content string, files FileSet) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	for _, m := range javaImportRe.FindAllStringSubmatch(content, -1) {
		fqcn := m[1]
		segments := strings.Split(fqcn, ".")
		className := segments[len(segments)-1]
		targetName := className + ".java"

		for _, target := range files.ByName(targetName) {
			key := target
			if seen[key] {
				continue
			}
			seen[key] = true
			deps = append(deps, types.Dependency{From: fromPath, To: target, Kind: types.KindImport})
		}
	}
	return deps
}
