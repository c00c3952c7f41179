package extract

import (
	"regexp"
	"strings"
)

const (
	maxComments    = 5
	minCommentSize = 10 // comments of this length or shorter are discarded
)

var (
	blockCommentRe = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	lineCommentRe  = regexp.MustCompile(`(?m)//[^\n]*`)
	hashCommentRe  = regexp.MustCompile(`(?m)#[^\n]*`)
	dashCommentRe  = regexp.MustCompile(`(?m)--[^\n]*`)
	pyTripleDQRe   = regexp.MustCompile(`(?s)"""(.*?)"""`)
	pyTripleSQRe   = regexp.MustCompile(`(?s)'''(.*?)'''`)
	rubyBlockRe    = regexp.MustCompile(`(?ms)^=begin.*?^=end`)
	htmlCommentRe  = regexp.MustCompile(`(?s)<!--(.*?)-->`)
)

// cFamily, pyFamily, etc. group extensions by comment syntax.
var (
	cFamily    = set(".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".java", ".go", ".cs", ".cpp", ".c", ".h", ".hpp", ".swift", ".kt", ".scala", ".dart", ".rs")
	pyFamily   = set(".py")
	phpFamily  = set(".php")
	rubyFamily = set(".rb")
	htmlFamily = set(".html", ".htm", ".vue", ".svelte", ".astro")
	cssFamily  = set(".css")
	scssFamily = set(".scss", ".sass", ".less")
	sqlFamily  = set(".sql")
)

func set(exts ...string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[e] = true
	}
	return m
}

// ExtractComments recognizes the leading-documentation comment forms for
// extension's language family and returns at most maxComments normalized,
// deduplicated comments longer than minCommentSize characters.
func ExtractComments(extension, content string) []string {
	ext := strings.ToLower(extension)

	var raw []string
	switch {
	case cFamily[ext]:
		raw = append(raw, extractAll(blockCommentRe, content, stripBlockDelims)...)
		raw = append(raw, extractAll(lineCommentRe, content, stripLinePrefix("//"))...)
	case pyFamily[ext]:
		raw = append(raw, extractAllGroup(pyTripleDQRe, content)...)
		raw = append(raw, extractAllGroup(pyTripleSQRe, content)...)
		raw = append(raw, extractAll(hashCommentRe, content, stripLinePrefix("#"))...)
	case phpFamily[ext]:
		raw = append(raw, extractAll(blockCommentRe, content, stripBlockDelims)...)
		raw = append(raw, extractAll(lineCommentRe, content, stripLinePrefix("//"))...)
		raw = append(raw, extractAll(hashCommentRe, content, stripLinePrefix("#"))...)
	case rubyFamily[ext]:
		raw = append(raw, extractAll(rubyBlockRe, content, stripRubyBlock)...)
		raw = append(raw, extractAll(hashCommentRe, content, stripLinePrefix("#"))...)
	case htmlFamily[ext]:
		raw = append(raw, extractAllGroup(htmlCommentRe, content)...)
	case cssFamily[ext]:
		raw = append(raw, extractAll(blockCommentRe, content, stripBlockDelims)...)
	case scssFamily[ext]:
		raw = append(raw, extractAll(blockCommentRe, content, stripBlockDelims)...)
		raw = append(raw, extractAll(lineCommentRe, content, stripLinePrefix("//"))...)
	case sqlFamily[ext]:
		raw = append(raw, extractAll(blockCommentRe, content, stripBlockDelims)...)
		raw = append(raw, extractAll(dashCommentRe, content, stripLinePrefix("--"))...)
	default:
		return nil
	}

	return normalizeComments(raw)
}

func extractAll(re *regexp.Regexp, content string, normalize func(string) string) []string {
	matches := re.FindAllString(content, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, normalize(m))
	}
	return out
}

func extractAllGroup(re *regexp.Regexp, content string) []string {
	matches := re.FindAllStringSubmatch(content, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func stripBlockDelims(s string) string {
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	return stripLeadingStars(s)
}

func stripLinePrefix(prefix string) func(string) string {
	return func(s string) string {
		return strings.TrimPrefix(s, prefix)
	}
}

func stripRubyBlock(s string) string {
	s = strings.TrimPrefix(s, "=begin")
	if idx := strings.LastIndex(s, "=end"); idx >= 0 {
		s = s[:idx]
	}
	return s
}

func stripLeadingStars(s string) string {
	lines := strings.Split(normalizeNewlines(s), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		lines[i] = strings.TrimPrefix(trimmed, "*")
	}
	return strings.Join(lines, "\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// normalizeComments trims whitespace, drops comments at or below
// minCommentSize characters, deduplicates, and caps the result at
// maxComments.
func normalizeComments(raw []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range raw {
		c := strings.TrimSpace(normalizeNewlines(r))
		if len(c) <= minCommentSize {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) == maxComments {
			break
		}
	}
	return out
}
