package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// Display thresholds for terminal coloring of the dependency ratio, in the
// same "green above a floor, yellow above a lower floor, else red" shape
// the teacher's terminal renderer uses for composite scores.
const (
	ratioGreenMin  = 20.0
	ratioYellowMin = 5.0
)

// RenderTerminal writes a human-readable summary of structure to w,
// colorizing the dependency ratio. Whether color codes are emitted is
// decided by the fatih/color package's color.NoColor (NO_COLOR, or stdout
// not being a terminal), not by w itself.
func RenderTerminal(w io.Writer, structure types.ProjectStructure) {
	fmt.Fprintf(w, "Project: %s\n", structure.RootPath)
	fmt.Fprintf(w, "Files analyzed: %d (%d directories)\n", structure.Stats.TotalFiles, structure.Stats.TotalDirectories)
	fmt.Fprintf(w, "Dependencies: %d\n", structure.Stats.TotalDependencies)

	ratioColor := ratioColorFor(structure.Stats.DependencyRatioPercent)
	fmt.Fprintf(w, "Dependency ratio: %s\n", ratioColor.Sprintf("%.1f%%", structure.Stats.DependencyRatioPercent))

	fmt.Fprintln(w, "\nLayers:")
	for _, layer := range types.AllLayers {
		fmt.Fprintf(w, "  %-13s %d files\n", layer, len(structure.Layers[layer]))
	}

	renderTypeBreakdown(w, structure.Stats.FilesByType)
}

func ratioColorFor(ratio float64) *color.Color {
	switch {
	case ratio >= ratioGreenMin:
		return color.New(color.FgGreen)
	case ratio >= ratioYellowMin:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func renderTypeBreakdown(w io.Writer, byType map[types.TypeTag]int) {
	if len(byType) == 0 {
		return
	}
	fmt.Fprintln(w, "\nBy type:")

	tags := make([]types.TypeTag, 0, len(byType))
	for tag := range byType {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	for _, tag := range tags {
		fmt.Fprintf(w, "  %-12s %d\n", tag, byType[tag])
	}
}
