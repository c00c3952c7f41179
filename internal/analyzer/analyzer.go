// Package analyzer implements ProjectAnalyzer: the single-entry-point
// facade that orchestrates Scanner, the extractor family, LayerAssigner,
// and GraphAnalyzer into one ProjectStructure, mirroring the teacher's
// pipeline package's stage-by-stage orchestration with progress callbacks.
package analyzer

import (
	"context"
	"os"
	"runtime"

	"github.com/ingo-eichhorst/projectmap/internal/classifier"
	"github.com/ingo-eichhorst/projectmap/internal/config"
	"github.com/ingo-eichhorst/projectmap/internal/extract"
	"github.com/ingo-eichhorst/projectmap/internal/graph"
	"github.com/ingo-eichhorst/projectmap/internal/layers"
	"github.com/ingo-eichhorst/projectmap/internal/logging"
	"github.com/ingo-eichhorst/projectmap/internal/scanner"
	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// ProjectAnalyzer is the facade's single entry point: Analyze(ctx, rootPath)
// runs the full pipeline and returns an immutable ProjectStructure.
type ProjectAnalyzer struct {
	cfg  config.EngineConfig
	log  logging.Sink
	host types.HostAdapter

	scanExtraIgnore func(relPath string) bool

	contentCache map[string][]byte
}

// Option configures a ProjectAnalyzer at construction time.
type Option func(*ProjectAnalyzer)

// WithConfig overrides the engine defaults (batch sizes, memory threshold).
func WithConfig(cfg config.EngineConfig) Option {
	return func(a *ProjectAnalyzer) { a.cfg = cfg }
}

// WithLogSink injects a structured logging sink. The default is a no-op.
func WithLogSink(sink logging.Sink) Option {
	return func(a *ProjectAnalyzer) { a.log = sink }
}

// WithHostAdapter injects the progress/error notification target. The
// default is types.NopHostAdapter.
func WithHostAdapter(host types.HostAdapter) Option {
	return func(a *ProjectAnalyzer) { a.host = host }
}

// WithExtraIgnore installs a host-side filename filter (e.g. a
// gitignore-backed predicate) applied in addition to the Scanner's default
// ignore set. Not part of the core's default, spec-tested behavior.
func WithExtraIgnore(fn func(relPath string) bool) Option {
	return func(a *ProjectAnalyzer) { a.scanExtraIgnore = fn }
}

// New builds a ProjectAnalyzer. With no options it uses engine defaults, a
// no-op log sink, and a no-op host adapter.
func New(opts ...Option) *ProjectAnalyzer {
	a := &ProjectAnalyzer{
		cfg:  config.Default(),
		log:  logging.NopSink{},
		host: types.NopHostAdapter{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// scanSinkAdapter and extractSinkAdapter translate scanner/extract package
// failure callbacks into structured log records plus host ErrorEvents.
type scanSinkAdapter struct {
	log  logging.Sink
	host types.HostAdapter
}

func (s scanSinkAdapter) DirectoryReadError(path string, cause error) {
	s.log.Warn("directory read failed", map[string]interface{}{"path": path, "cause": cause.Error()})
	s.host.OnError(types.ErrorEvent{Kind: types.ErrDirectoryRead, Path: path, Cause: cause})
}

type extractSinkAdapter struct {
	log  logging.Sink
	host types.HostAdapter
}

func (s extractSinkAdapter) AnalysisError(relPath string, cause error) {
	s.log.Warn("extraction failed", map[string]interface{}{"path": relPath, "cause": cause.Error()})
	s.host.OnError(types.ErrorEvent{Kind: types.ErrAnalysis, Path: relPath, Cause: cause})
}

// Analyze runs Scanner -> extractors -> GraphAnalyzer -> LayerAssigner ->
// ProjectStats over rootPath, reporting progress at scan-start, scan-done,
// deps-start, deps-done, and done. A root-level scan failure returns a
// zeroed ProjectStructure and the underlying error (spec.md §4.10); any
// deeper failure is recovered and surfaced only through the host adapter.
func (a *ProjectAnalyzer) Analyze(ctx context.Context, rootPath string) (types.ProjectStructure, error) {
	a.host.OnProgress(types.ProgressEvent{Stage: types.StageScanStart, Message: "scanning " + rootPath})
	a.log.Info("scan starting", map[string]interface{}{"root": rootPath})

	sc := scanner.New(scanner.Options{
		IgnoreDirs:  mergedIgnoreDirs(a.cfg.ExtraIgnoreDirs),
		BatchSize:   a.cfg.ScanBatchSize,
		ExtraIgnore: a.scanExtraIgnore,
		Sink:        scanSinkAdapter{log: a.log, host: a.host},
	})

	tree, err := sc.Scan(ctx, rootPath)
	if err != nil {
		a.log.Error("scan failed", map[string]interface{}{"root": rootPath, "cause": err.Error()})
		return types.ProjectStructure{RootPath: rootPath}, err
	}
	if ctx.Err() != nil {
		a.log.Info("scan cancelled", map[string]interface{}{"root": rootPath})
		return types.ProjectStructure{RootPath: rootPath}, types.ErrCancelled
	}

	a.host.OnProgress(types.ProgressEvent{Stage: types.StageScanDone, Message: "scan complete"})

	allFiles := scanner.Flatten(tree, false)
	supportedFiles := scanner.Flatten(tree, true)

	a.host.OnProgress(types.ProgressEvent{Stage: types.StageDepsStart, Message: "extracting dependencies"})

	fileSet := extract.NewFileSet(supportedFiles)
	result, err := extract.Build(ctx, supportedFiles, readFile, fileSet, extract.Options{
		BatchSize: a.cfg.ExtractBatchSize,
		Sink:      extractSinkAdapter{log: a.log, host: a.host},
	})
	if err != nil {
		a.log.Error("dependency extraction failed", map[string]interface{}{"cause": err.Error()})
		return types.ProjectStructure{RootPath: rootPath}, err
	}
	if ctx.Err() != nil {
		a.log.Info("dependency extraction cancelled", map[string]interface{}{"root": rootPath})
		return types.ProjectStructure{RootPath: rootPath}, types.ErrCancelled
	}
	a.contentCache = result.ContentCache

	a.host.OnProgress(types.ProgressEvent{Stage: types.StageDepsDone, Message: "dependency extraction complete"})

	a.checkMemory()

	graphResult := graph.Analyze(supportedFiles, result.Dependencies)
	applyGraphResult(supportedFiles, graphResult)
	reportCycles(a.host, graphResult.Cycles)

	layerMap := layers.Assign(supportedFiles)

	stats := computeStats(tree, allFiles, supportedFiles, result.Dependencies)

	structure := types.ProjectStructure{
		RootPath:     rootPath,
		Files:        supportedFiles,
		FileTree:     tree,
		Dependencies: result.Dependencies,
		Layers:       layerMap,
		Stats:        stats,
	}

	a.host.OnProgress(types.ProgressEvent{Stage: types.StageDone, Message: "analysis complete"})
	a.log.Info("analysis complete", map[string]interface{}{
		"files":        stats.TotalFiles,
		"dependencies": stats.TotalDependencies,
	})

	return structure, nil
}

// Content returns the cached raw content of a supported file, read during
// the most recent Analyze call. The second return is false if the path was
// never read (not a supported file, or Analyze has not run).
func (a *ProjectAnalyzer) Content(relPath string) ([]byte, bool) {
	if a.contentCache == nil {
		return nil, false
	}
	c, ok := a.contentCache[relPath]
	return c, ok
}

func readFile(fullPath string) ([]byte, error) {
	return os.ReadFile(fullPath)
}

// mergedIgnoreDirs returns nil when extra is empty, letting the Scanner
// fall back to its own DefaultIgnoreDirs; otherwise it returns a copy of
// that default set widened with the project-config overrides.
func mergedIgnoreDirs(extra []string) map[string]bool {
	if len(extra) == 0 {
		return nil
	}
	merged := make(map[string]bool, len(scanner.DefaultIgnoreDirs)+len(extra))
	for k, v := range scanner.DefaultIgnoreDirs {
		merged[k] = v
	}
	for _, dir := range extra {
		merged[dir] = true
	}
	return merged
}

func applyGraphResult(files []*types.FileNode, result graph.Result) {
	for _, f := range files {
		f.ReferenceCount = result.ReferenceCount[f.Path]
		f.IsUsed = result.IsUsed[f.Path]
	}
}

func reportCycles(host types.HostAdapter, cycles [][]string) {
	for _, cycle := range cycles {
		if len(cycle) == 0 {
			continue
		}
		host.OnError(types.ErrorEvent{
			Kind:       types.ErrCircularDependent,
			Path:       cycle[0],
			Suggestion: "circular dependency: " + joinCycle(cycle),
		})
	}
}

func joinCycle(cycle []string) string {
	out := ""
	for i, n := range cycle {
		if i > 0 {
			out += " -> "
		}
		out += n
	}
	return out
}

func computeStats(tree types.FileTree, allFiles, supportedFiles []*types.FileNode, deps []types.Dependency) types.ProjectStats {
	stats := types.ProjectStats{
		FilesByType: make(map[types.TypeTag]int),
	}

	var dirCount int
	var countDirs func(nodes []*types.FileNode)
	countDirs = func(nodes []*types.FileNode) {
		for _, n := range nodes {
			if n.IsDirectory {
				dirCount++
				countDirs(n.Children)
			}
		}
	}
	countDirs(tree)

	var totalSize int64
	for _, f := range allFiles {
		totalSize += f.Size
		stats.FilesByType[classifier.TypeTagFor(f.Extension)]++
	}

	stats.TotalFiles = len(supportedFiles)
	stats.TotalDirectories = dirCount
	stats.TotalSize = totalSize
	stats.TotalDependencies = len(deps)

	if len(allFiles) > 0 {
		stats.AverageFileSize = float64(totalSize) / float64(len(allFiles))
	}
	if stats.TotalFiles > 0 {
		stats.AverageDependenciesPerFile = float64(stats.TotalDependencies) / float64(stats.TotalFiles)
		stats.DependencyRatioPercent = stats.AverageDependenciesPerFile * 100
	}

	return stats
}

// checkMemory samples heap usage and surfaces a MemoryWarning through the
// host adapter when it exceeds the configured threshold (spec.md §5).
func (a *ProjectAnalyzer) checkMemory() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	usedMB := m.HeapAlloc / (1024 * 1024)
	if int(usedMB) < a.cfg.MemoryWarnMB {
		return
	}
	a.log.Warn("memory usage high", map[string]interface{}{"heapAllocMB": usedMB})
	a.host.OnError(types.ErrorEvent{
		Kind:       types.ErrMemoryWarning,
		Suggestion: "heap allocation exceeds configured threshold",
	})
}
