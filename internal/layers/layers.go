// Package layers implements the deterministic layer-cascade classifier:
// every file lands in exactly one of the fixed architectural layers based
// on lower-cased path/name/extension signals, mirroring the first-match
// cascade style of the teacher's c3 architecture analyzer.
package layers

import (
	"strings"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var presentationPathHints = []string{"view", "component", "ui", "page", "screen", "widget", "template", "layout"}
var presentationExtensions = set(".vue", ".svelte", ".tsx", ".jsx", ".html", ".htm", ".css", ".scss", ".sass", ".less")

var businessPathHints = []string{"service", "business", "controller", "handler", "manager", "provider", "api", "route", "endpoint", "middleware"}

var dataPathHints = []string{"model", "data", "repository", "entity", "schema", "database", "migration", "seed"}
var dataExtensions = set(".sql", ".graphql", ".gql")

var utilsPathHints = []string{"util", "helper", "common", "shared", "lib", "tool", "constant", "enum"}

var configNames = set("package.json", "tsconfig.json", "webpack.config.js", "babel.config.js", ".env")
var configExtensions = set(".env", ".json", ".yaml", ".yml", ".xml", ".toml", ".ini", ".properties", ".conf")

var backendFallbackExtensions = set(".php", ".py", ".java", ".cs", ".go", ".rs")

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, i := range items {
		m[i] = true
	}
	return m
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// LayerOf runs the canonical cascade against a file's path, name, and
// lowercase extension. It is a pure function: the same input always
// yields the same layer, and evaluation never depends on any other file.
func LayerOf(path, name, extension string) types.Layer {
	lowerPath := strings.ToLower(path)
	lowerName := strings.ToLower(name)
	ext := strings.ToLower(extension)

	switch {
	case containsAny(lowerPath, presentationPathHints) || presentationExtensions[ext]:
		return types.LayerPresentation
	case containsAny(lowerPath, businessPathHints):
		return types.LayerBusiness
	case containsAny(lowerPath, dataPathHints) || dataExtensions[ext]:
		return types.LayerData
	case containsAny(lowerPath, utilsPathHints):
		return types.LayerUtils
	case strings.Contains(lowerPath, "config") || strings.Contains(lowerName, "config") ||
		configNames[lowerName] || configExtensions[ext]:
		return types.LayerConfig
	case backendFallbackExtensions[ext]:
		return types.LayerBusiness
	default:
		return types.LayerUtils
	}
}

// Assign partitions every non-directory file in files into the fixed
// layer set, returning the populated LayerMap in AllLayers order.
func Assign(files []*types.FileNode) types.LayerMap {
	m := make(types.LayerMap, len(types.AllLayers))
	for _, l := range types.AllLayers {
		m[l] = nil
	}
	for _, f := range files {
		if f.IsDirectory {
			continue
		}
		layer := LayerOf(f.Path, f.Name, f.Extension)
		m[layer] = append(m[layer], f.Path)
	}
	return m
}
