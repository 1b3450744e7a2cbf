// Package logger provides the diagnostic log. It is separate from the
// console output the user sees and is silent unless a destination is given.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Logger writes timestamped lines to one or more destinations.
type Logger struct {
	w    io.Writer
	file *os.File
	now  func() time.Time
}

// New creates a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Open creates a logger that appends to the file at path and mirrors every
// line to also when it is non-nil.
func Open(path string, also io.Writer) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	var w io.Writer = f
	if also != nil {
		w = io.MultiWriter(also, f)
	}
	return &Logger{w: w, file: f, now: time.Now}, nil
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return &Logger{w: io.Discard, now: time.Now}
}

// LogPath returns the path of the log file, or "" when not logging to a file.
func (l *Logger) LogPath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Write implements io.Writer by forwarding to the underlying writer.
func (l *Logger) Write(p []byte) (n int, err error) {
	return l.w.Write(p)
}

// Printf writes a formatted, timestamped line to the log.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.w, "%s "+format+"\n", append([]any{l.now().Format("15:04:05.000")}, args...)...)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
