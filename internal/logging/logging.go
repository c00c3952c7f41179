// Package logging provides the injected logging Sink the facade writes
// structured records through, replacing the teacher's process-wide
// logger with an explicit dependency passed at construction time. Color
// encoding and TTY detection follow the teacher's internal/output
// terminal rendering (github.com/fatih/color gated by
// github.com/mattn/go-isatty), but there is no global singleton here.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level identifies a log record's severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Record is a single structured log entry: a message plus arbitrary
// key/value fields (file paths, durations, counts).
type Record struct {
	Level   Level
	Message string
	Fields  map[string]interface{}
}

// Sink receives structured log records. The facade accepts a Sink at
// construction time instead of reaching for a package-level logger.
type Sink interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NopSink discards every record. Useful as a default for library callers
// who don't want log output.
type NopSink struct{}

func (NopSink) Debug(string, map[string]interface{}) {}
func (NopSink) Info(string, map[string]interface{})  {}
func (NopSink) Warn(string, map[string]interface{})  {}
func (NopSink) Error(string, map[string]interface{}) {}

// WriterSink writes records as a single line per record to w, colorizing
// the level tag when w is a TTY.
type WriterSink struct {
	w      io.Writer
	color  bool
	debug  *color.Color
	info   *color.Color
	warn   *color.Color
	errlvl *color.Color
}

// NewWriterSink builds a WriterSink over w. Colorization is enabled only
// when w is *os.File and refers to a terminal.
func NewWriterSink(w io.Writer) *WriterSink {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &WriterSink{
		w:      w,
		color:  tty,
		debug:  color.New(color.FgHiBlack),
		info:   color.New(color.FgCyan),
		warn:   color.New(color.FgYellow),
		errlvl: color.New(color.FgRed),
	}
}

func (s *WriterSink) Debug(msg string, fields map[string]interface{}) {
	s.emit(LevelDebug, s.debug, msg, fields)
}

func (s *WriterSink) Info(msg string, fields map[string]interface{}) {
	s.emit(LevelInfo, s.info, msg, fields)
}

func (s *WriterSink) Warn(msg string, fields map[string]interface{}) {
	s.emit(LevelWarn, s.warn, msg, fields)
}

func (s *WriterSink) Error(msg string, fields map[string]interface{}) {
	s.emit(LevelError, s.errlvl, msg, fields)
}

func (s *WriterSink) emit(level Level, c *color.Color, msg string, fields map[string]interface{}) {
	tag := fmt.Sprintf("[%s]", level)
	if s.color {
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(s.w, "%s %s%s\n", tag, msg, formatFields(fields))
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		out += fmt.Sprintf(" %s=%v", k, fields[k])
	}
	return out
}
