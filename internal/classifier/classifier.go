// Package classifier maps file extensions to a closed set of language/type
// tags and governs which extensions enter dependency analysis. It performs
// no I/O.
package classifier

import (
	"strings"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// extensionTags is the closed extension -> TypeTag map. It intentionally
// covers more extensions than supportedExtensions: images, fonts and
// lockfiles get a TypeTag and appear in the tree, but are never flattened
// into ProjectStructure.Files, so they are absent from dependency analysis
// and the layer map. Some supported extensions (e.g. Rust, Swift, Kotlin
// sources) have no LanguageExtractor: they enter the layer map and can
// carry database-link edges, but never import edges (see spec's Open
// Question on classifier surface vs. extraction surface).
var extensionTags = map[string]types.TypeTag{
	".js":         types.TypeJavaScript,
	".jsx":        types.TypeJavaScript,
	".mjs":        types.TypeJavaScript,
	".cjs":        types.TypeJavaScript,
	".ts":         types.TypeTypeScript,
	".tsx":        types.TypeTypeScript,
	".html":       types.TypeHTML,
	".htm":        types.TypeHTML,
	".css":        types.TypeCSS,
	".scss":       types.TypeCSS,
	".sass":       types.TypeCSS,
	".less":       types.TypeCSS,
	".vue":        types.TypeVue,
	".svelte":     types.TypeSvelte,
	".astro":      types.TypeAstro,
	".php":        types.TypePHP,
	".py":         types.TypePython,
	".java":       types.TypeJava,
	".cs":         types.TypeCSharp,
	".cpp":        types.TypeCPP,
	".c":          types.TypeC,
	".h":          types.TypeC,
	".hpp":        types.TypeCPP,
	".go":         types.TypeGo,
	".rs":         types.TypeRust,
	".rb":         types.TypeRuby,
	".swift":      types.TypeSwift,
	".kt":         types.TypeKotlin,
	".scala":      types.TypeScala,
	".sql":        types.TypeSQL,
	".graphql":    types.TypeGraphQL,
	".gql":        types.TypeGraphQL,
	".json":       types.TypeJSON,
	".xml":        types.TypeXML,
	".yaml":       types.TypeYAML,
	".yml":        types.TypeYAML,
	".toml":       types.TypeTOML,
	".ini":        types.TypeINI,
	".env":        types.TypeEnv,
	".properties": types.TypeINI,
	".conf":       types.TypeConfig,
	".config":     types.TypeConfig,
	".md":         types.TypeMarkdown,
	".mdx":        types.TypeMarkdown,
	".rst":        types.TypeMarkdown,
	".txt":        types.TypeText,
	".sh":         types.TypeShell,
	".bash":       types.TypeShell,
	".zsh":        types.TypeShell,
	".ps1":        types.TypeShell,
	".bat":        types.TypeBatch,
	".cmd":        types.TypeBatch,
	".r":          types.TypeR,
	".m":          types.TypeMatlab,
	".dart":       types.TypeDart,
	".lua":        types.TypeLua,
	".pl":         types.TypePerl,
	".ex":         types.TypeElixir,
	".exs":        types.TypeElixir,
	// Classified-only extensions: appear in the tree but are not part of
	// the supported-extension surface, so they are in neither the
	// dependency analysis nor the layer map.
	".png":  types.TypeImage,
	".jpg":  types.TypeImage,
	".jpeg": types.TypeImage,
	".gif":  types.TypeImage,
	".svg":  types.TypeImage,
	".ico":  types.TypeImage,
	".woff": types.TypeFont,
	".ttf":  types.TypeFont,
	".lock": types.TypeLock,
}

// supportedExtensions is the authoritative set (spec.md §6) governing which
// files enter dependency analysis and are flattened into ProjectStructure's
// Files slice. It is a subset of extensionTags' keys.
var supportedExtensions = buildSupportedSet([]string{
	".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs",
	".html", ".htm", ".css", ".scss", ".sass", ".less",
	".vue", ".svelte", ".astro",
	".php", ".py", ".java", ".cs", ".cpp", ".c", ".h", ".hpp", ".go", ".rs", ".rb", ".swift", ".kt", ".scala",
	".sql", ".graphql", ".gql",
	".json", ".xml", ".yaml", ".yml", ".toml", ".ini", ".env", ".properties", ".conf", ".config",
	".md", ".mdx", ".rst", ".txt",
	".sh", ".bash", ".zsh", ".ps1", ".bat", ".cmd",
	".r", ".m", ".dart", ".lua", ".pl", ".ex", ".exs",
})

func buildSupportedSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[e] = struct{}{}
	}
	return set
}

// TypeTagFor returns the TypeTag for a lowercase extension (with leading
// dot), or TypeUnknown if the extension is not in the closed map. Directory
// nodes should not call this; they carry an empty extension and no tag.
func TypeTagFor(extension string) types.TypeTag {
	if tag, ok := extensionTags[strings.ToLower(extension)]; ok {
		return tag
	}
	return types.TypeUnknown
}

// IsSupported reports whether extension is in the authoritative
// supported-extension set that governs dependency analysis eligibility.
func IsSupported(extension string) bool {
	_, ok := supportedExtensions[strings.ToLower(extension)]
	return ok
}

// SupportedExtensions returns a copy of the authoritative supported
// extension set, mostly useful for tests and documentation.
func SupportedExtensions() []string {
	out := make([]string, 0, len(supportedExtensions))
	for e := range supportedExtensions {
		out = append(out, e)
	}
	return out
}
