// Package report renders a ProjectStructure as JSON, as a self-contained
// HTML report, and as a colorized terminal summary; it has no PNG renderer
// for the remaining types.ExportFormat. It is adapted from the teacher's internal/output package (terminal/JSON/HTML
// renderers for a ScoredResult) onto this engine's ProjectStructure shape.
package report

import (
	"encoding/json"
	"io"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// RenderJSON writes structure as pretty-printed JSON to w.
func RenderJSON(w io.Writer, structure types.ProjectStructure) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(structure)
}
