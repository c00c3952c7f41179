package types

// Stage is one of the recognized progress milestones the core reports to a
// host adapter during analyze().
type Stage string

const (
	StageScanStart Stage = "scan-start"
	StageScanDone  Stage = "scan-done"
	StageDepsStart Stage = "deps-start"
	StageDepsDone  Stage = "deps-done"
	StageDone      Stage = "done"
)

// ProgressEvent is emitted to the host adapter at each recognized Stage.
// Percent is nil when the stage has no meaningful completion fraction.
type ProgressEvent struct {
	Stage   Stage
	Message string
	Percent *float64
}

// ErrorKind classifies a structured error surfaced to the host adapter.
type ErrorKind string

const (
	ErrFileRead          ErrorKind = "FileReadError"
	ErrDirectoryRead     ErrorKind = "DirectoryReadError"
	ErrAnalysis          ErrorKind = "AnalysisError"
	ErrWebview           ErrorKind = "WebviewError"
	ErrMemoryWarning     ErrorKind = "MemoryWarning"
	ErrPerformanceWarn   ErrorKind = "PerformanceWarning"
	ErrCircularDependent ErrorKind = "CircularDependency"
	ErrFileSave          ErrorKind = "FileSaveError"
)

// ErrorEvent is a structured, non-fatal error or informational notice
// surfaced to the host adapter. CircularDependency and the two warning
// kinds are informational, not failures.
type ErrorEvent struct {
	Kind       ErrorKind
	Path       string
	Cause      error
	Suggestion string
}

// HostAdapter receives progress and error notifications from the core. It
// never blocks analyze(); both methods should return quickly.
type HostAdapter interface {
	OnProgress(ProgressEvent)
	OnError(ErrorEvent)
}

// NopHostAdapter discards every notification. Useful as a default when the
// caller does not need progress/error visibility.
type NopHostAdapter struct{}

func (NopHostAdapter) OnProgress(ProgressEvent) {}
func (NopHostAdapter) OnError(ErrorEvent)       {}

// ExportFormat enumerates the export formats recognized by the host side of
// the current renderer. They are not part of the analysis core's contract,
// but define the shape consumers may request when serializing a
// ProjectStructure.
type ExportFormat string

const (
	ExportPNG  ExportFormat = "png"
	ExportJSON ExportFormat = "json"
	ExportHTML ExportFormat = "html"
)

// HostCommand is a closed, tagged variant over the renderer-to-core command
// set, replacing the source repository's untyped {command, data} envelope
// (see Design Notes, "Dynamic message dispatch at the host boundary").
type HostCommand interface {
	isHostCommand()
}

// GetFileContentCommand requests the content of a workspace-relative path.
type GetFileContentCommand struct{ Path string }

// SaveFileContentCommand requests that Content be written at Path.
type SaveFileContentCommand struct {
	Path    string
	Content string
}

// OpenFileCommand requests that the host open Path in an editor.
type OpenFileCommand struct{ Path string }

// ExportCommand requests an export of the current ProjectStructure.
type ExportCommand struct {
	Format  ExportFormat
	Payload []byte
}

func (GetFileContentCommand) isHostCommand()  {}
func (SaveFileContentCommand) isHostCommand() {}
func (OpenFileCommand) isHostCommand()        {}
func (ExportCommand) isHostCommand()          {}

// CoreMessage is the closed, tagged variant over the core-to-renderer
// message set.
type CoreMessage interface {
	isCoreMessage()
}

// LoadDataMessage delivers a freshly computed ProjectStructure to the
// renderer.
type LoadDataMessage struct{ Data ProjectStructure }

// FileContentMessage delivers the result of a GetFileContentCommand.
type FileContentMessage struct {
	Path    string
	Content string
	Err     error
}

func (LoadDataMessage) isCoreMessage()    {}
func (FileContentMessage) isCoreMessage() {}
