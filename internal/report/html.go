package report

import (
	"html/template"
	"io"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// reportTemplate is a minimal self-contained report: no external CSS/JS
// dependencies, everything inlined, mirroring the teacher's
// "self-contained HTML, viewable offline" constraint without its
// chart-rendering machinery (dropped along with the scoring pipeline it
// served; see DESIGN.md).
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Project map: {{.RootPath}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
td, th { padding: 0.25rem 0.75rem; border-bottom: 1px solid #ddd; text-align: left; }
</style>
</head>
<body>
<h1>{{.RootPath}}</h1>
<p>{{.Stats.TotalFiles}} files, {{.Stats.TotalDependencies}} dependencies, {{printf "%.1f" .Stats.DependencyRatioPercent}}% ratio</p>
<h2>Layers</h2>
<table>
<tr><th>Layer</th><th>Files</th></tr>
{{range $layer, $paths := .Layers}}<tr><td>{{$layer}}</td><td>{{len $paths}}</td></tr>
{{end}}
</table>
<h2>Dependencies</h2>
<table>
<tr><th>From</th><th>To</th><th>Kind</th></tr>
{{range .Dependencies}}<tr><td>{{.From}}</td><td>{{.To}}</td><td>{{.Kind}}</td></tr>
{{end}}
</table>
</body>
</html>
`

var parsedTemplate = template.Must(template.New("report").Parse(reportTemplate))

// RenderHTML writes a self-contained HTML report of structure to w.
func RenderHTML(w io.Writer, structure types.ProjectStructure) error {
	return parsedTemplate.Execute(w, structure)
}
