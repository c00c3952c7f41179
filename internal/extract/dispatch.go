package extract

import (
	"strings"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// languageExtractor recognizes outgoing dependency edges in a single
// file's content.
type languageExtractor func(fromPath, content string, files FileSet) []types.Dependency

// extractorFor returns the LanguageExtractor registered for extension, or
// nil if no extractor recognizes that extension's syntax (the classifier
// may still know its TypeTag; see spec's classifier-vs-extraction gap).
func extractorFor(extension string) languageExtractor {
	switch strings.ToLower(extension) {
	case ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs":
		return ExtractJSTS
	case ".py":
		return ExtractPython
	case ".java":
		return ExtractJava
	case ".go":
		return ExtractGo
	case ".php":
		return ExtractPHP
	case ".css", ".scss", ".sass", ".less":
		return ExtractCSS
	case ".html", ".htm":
		return ExtractHTML
	default:
		return nil
	}
}
