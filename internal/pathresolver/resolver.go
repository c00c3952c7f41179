// Package pathresolver implements pure string/path arithmetic over
// workspace-relative POSIX paths. It performs no I/O; callers probe the
// results against a frozen file-path set.
package pathresolver

import (
	"path"
	"strings"
)

// extensionOrder is the ordered set of extensions probed by ExtensionVariants
// when a spec has no extension of its own. Order is significant: the first
// variant present in the caller's file map wins.
var extensionOrder = []string{
	"ts", "js", "tsx", "jsx", "py", "java", "go", "php", "html", "htm", "css", "scss", "sql",
}

// indexModuleOrder is the ordered set of extensions probed for
// "<basePath>/index.<ext>" variants, after the direct extension variants.
var indexModuleOrder = []string{"ts", "js", "tsx", "jsx", "php", "html"}

// ResolveRelative interprets spec against the directory of fromFile,
// normalizes the result, and returns it using forward slashes.
func ResolveRelative(fromFile, spec string) string {
	dir := path.Dir(toSlash(fromFile))
	joined := path.Join(dir, toSlash(spec))
	return normalize(joined)
}

// ResolvePythonDotted strips exactly one leading '.' from dotted, splits the
// remainder on '.', and treats the segments as a path relative to fromFile's
// directory. A dotted value of "." or "" resolves to the directory itself.
func ResolvePythonDotted(fromFile, dotted string) string {
	dir := path.Dir(toSlash(fromFile))
	rest := strings.TrimPrefix(dotted, ".")
	if rest == "" {
		return normalize(dir)
	}
	segments := strings.Split(rest, ".")
	joined := path.Join(append([]string{dir}, segments...)...)
	return normalize(joined)
}

// ExtensionVariants returns, in priority order, the candidate paths to probe
// against the project's file map when basePath has no extension of its own:
// basePath itself, then basePath.<ext> for each extension in extensionOrder,
// then basePath/index.<ext> for each extension in indexModuleOrder. If
// basePath already carries an extension, only basePath itself is returned.
func ExtensionVariants(basePath string) []string {
	base := normalize(basePath)
	if path.Ext(base) != "" {
		return []string{base}
	}

	variants := make([]string, 0, 1+len(extensionOrder)+len(indexModuleOrder))
	variants = append(variants, base)
	for _, ext := range extensionOrder {
		variants = append(variants, base+"."+ext)
	}
	for _, ext := range indexModuleOrder {
		variants = append(variants, base+"/index."+ext)
	}
	return variants
}

// IsRelativeSpecifier reports whether spec should be treated as a relative
// module reference (begins with '.' or '/') as opposed to an external
// package name.
func IsRelativeSpecifier(spec string) bool {
	return strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/")
}

// normalize runs path.Clean and ensures forward slashes; it is idempotent.
func normalize(p string) string {
	return path.Clean(toSlash(p))
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
