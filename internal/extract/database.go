package extract

import (
	"regexp"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// dbSignatures pairs each connection-string shape with the database type tag it
// implies. Order does not matter: all matching signatures in a file each
// contribute their type, deduplicated per type.
var dbSignatures = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`mysql://`), "mysql"},
	{regexp.MustCompile(`mariadb://`), "mysql"},
	{regexp.MustCompile(`postgres(?:ql)?://`), "postgresql"},
	{regexp.MustCompile(`mongodb(?:\+srv)?://`), "mongodb"},
	{regexp.MustCompile(`redis://`), "redis"},
	{regexp.MustCompile(`sqlite3?:///?[^\s"']*`), "sqlite"},
	{regexp.MustCompile(`(?i)\bDB_HOST\s*=\s*["'][^"']+["']`), "generic"},
}

// ExtractDatabaseLinks scans arbitrary file content for known connection
// string shapes and emits exactly one "[DB:<type>]" edge per distinct type
// detected in the file.
func ExtractDatabaseLinks(fromPath, content string) []types.Dependency {
	var deps []types.Dependency
	seen := make(map[string]bool)

	for _, sig := range dbSignatures {
		if seen[sig.kind] {
			continue
		}
		if sig.re.MatchString(content) {
			seen[sig.kind] = true
			deps = append(deps, types.Dependency{
				From: fromPath,
				To:   "[DB:" + sig.kind + "]",
				Kind: types.KindDatabase,
			})
		}
	}
	return deps
}
