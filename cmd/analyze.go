package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/fzipp/gocyclo"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"

	"github.com/ingo-eichhorst/projectmap/internal/analyzer"
	"github.com/ingo-eichhorst/projectmap/internal/config"
	"github.com/ingo-eichhorst/projectmap/internal/logging"
	"github.com/ingo-eichhorst/projectmap/internal/report"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

var (
	jsonOutput      bool
	htmlOutputPath  string
	respectGitignore bool
	complexityReport bool
	complexityTop    int
)

var analyzeCmd = &cobra.Command{
	Use:          "analyze <directory>",
	Short:        "Analyze a project directory and render a structural report",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "render the report as JSON instead of a terminal summary")
	analyzeCmd.Flags().StringVar(&htmlOutputPath, "html", "", "write a self-contained HTML report to this path")
	analyzeCmd.Flags().BoolVar(&respectGitignore, "respect-gitignore", false, "exclude paths matched by the project's .gitignore, in addition to the default ignore set")
	analyzeCmd.Flags().BoolVar(&complexityReport, "complexity", false, "print a cyclomatic complexity report over the project's .go files")
	analyzeCmd.Flags().IntVar(&complexityTop, "complexity-top", 10, "number of highest-complexity functions to list with --complexity")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("cannot resolve path: %w", err)
	}
	if err := validateDirectory(dir); err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	var logSink logging.Sink = logging.NopSink{}
	if verbose {
		logSink = logging.NewWriterSink(os.Stderr)
	}

	spinner := logging.NewSpinner(os.Stderr)
	host := &spinnerHostAdapter{spinner: spinner, out: cmd.ErrOrStderr()}

	opts := []analyzer.Option{
		analyzer.WithConfig(cfg),
		analyzer.WithLogSink(logSink),
		analyzer.WithHostAdapter(host),
	}

	if respectGitignore {
		matcher, err := loadGitignore(dir)
		if err != nil {
			return fmt.Errorf("load .gitignore: %w", err)
		}
		if matcher != nil {
			opts = append(opts, analyzer.WithExtraIgnore(func(relPath string) bool {
				return matcher.MatchesPath(relPath)
			}))
		}
	}

	a := analyzer.New(opts...)

	spinner.Start("scanning " + dir)
	structure, err := a.Analyze(context.Background(), dir)
	spinner.Stop("")
	if err != nil {
		return fmt.Errorf("analyze %s: %w", dir, err)
	}

	host.flushNotices()

	out := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		if err := report.RenderJSON(out, structure); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
	default:
		report.RenderTerminal(out, structure)
	}

	if htmlOutputPath != "" {
		f, err := os.Create(htmlOutputPath)
		if err != nil {
			return fmt.Errorf("create html output: %w", err)
		}
		defer f.Close()
		if err := report.RenderHTML(f, structure); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		fmt.Fprintf(out, "\nHTML report written to %s\n", htmlOutputPath)
	}

	if complexityReport {
		renderComplexity(out, dir, complexityTop)
	}

	return nil
}

// validateDirectory checks that dir exists and is a directory.
func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory not found: %s", dir)
	}
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	return nil
}

// loadGitignore compiles dir's .gitignore, if present. A missing file is
// not an error: analyze proceeds with the core's default ignore set only.
func loadGitignore(dir string) (*ignore.GitIgnore, error) {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return ignore.CompileIgnoreFile(path)
}

// renderComplexity reports cyclomatic complexity over dir's .go files.
// This sits outside the core analysis model entirely (Go-only, AST-based,
// unlike the lexical regex extractors): an optional host-side add-on, not
// a ProjectStructure field.
func renderComplexity(w io.Writer, dir string, top int) {
	stats := gocyclo.Analyze([]string{dir}, regexp.MustCompile(`_test\.go$`))
	sort.Sort(stats)

	if len(stats) == 0 {
		fmt.Fprintln(w, "\nComplexity: no .go files found")
		return
	}
	if top > 0 && top < len(stats) {
		stats = stats[:top]
	}

	fmt.Fprintln(w, "\nComplexity (highest first):")
	for _, s := range stats {
		fmt.Fprintf(w, "  %-3d %s %s:%d\n", s.Complexity, s.FuncName, s.Pos.Filename, s.Pos.Line)
	}
}

// spinnerHostAdapter drives the terminal spinner from progress events and
// buffers non-fatal notices (circular dependencies, memory warnings) for
// display after the spinner stops, mirroring the teacher's
// spinner-plus-deferred-error-print pattern in cmd/scan.go.
type spinnerHostAdapter struct {
	spinner *logging.Spinner
	out     io.Writer
	notices []string
}

func (h *spinnerHostAdapter) OnProgress(e types.ProgressEvent) {
	h.spinner.Update(e.Message)
}

func (h *spinnerHostAdapter) OnError(e types.ErrorEvent) {
	switch e.Kind {
	case types.ErrCircularDependent:
		h.notices = append(h.notices, "circular dependency: "+e.Suggestion)
	case types.ErrMemoryWarning:
		h.notices = append(h.notices, "warning: memory usage high")
	case types.ErrDirectoryRead, types.ErrAnalysis:
		h.notices = append(h.notices, fmt.Sprintf("warning: %s failed on %s", e.Kind, e.Path))
	}
}

func (h *spinnerHostAdapter) flushNotices() {
	for _, n := range h.notices {
		fmt.Fprintln(h.out, n)
	}
}
