// Package debuglog writes diagnostic output to an append-only file.
//
// stdout carries the hook response and stderr is shown to the user by Claude
// Code, so debug output goes to a file instead. A disabled or nil Logger
// discards everything.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Logger is a file-backed debug logger. The zero value and nil are disabled.
type Logger struct {
	mu     sync.Mutex
	logger *log.Logger
	closer io.Closer
}

// Open returns a Logger appending to path when enabled is true. A file that
// cannot be opened yields a disabled Logger and the open error.
func Open(path string, enabled bool) (*Logger, error) {
	if !enabled {
		return Disabled(), nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Disabled(), fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Disabled(), fmt.Errorf("opening debug log %s: %w", path, err)
	}

	l := New(f)
	l.closer = f
	return l, nil
}

// New returns an enabled Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

// Disabled returns a Logger that discards all output.
func Disabled() *Logger {
	return &Logger{}
}

// Enabled reports whether output is written anywhere.
func (l *Logger) Enabled() bool {
	return l != nil && l.logger != nil
}

// Printf writes one line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf(format, args...)
}

// Write logs p as one entry, so a Logger can collect the stderr of child
// processes. It always reports the full length as written.
func (l *Logger) Write(p []byte) (int, error) {
	if text := strings.TrimRight(string(p), "\n"); text != "" {
		l.Printf("%s", text)
	}
	return len(p), nil
}

// WithPrefix returns a function that logs with a "[component] " prefix.
// Example: logf := log.WithPrefix("dispatch"); logf("ran %d handlers", n)
func (l *Logger) WithPrefix(component string) func(format string, args ...any) {
	prefix := "[" + component + "] "
	return func(format string, args ...any) {
		l.Printf(prefix+format, args...)
	}
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.closer.Close()
	l.closer = nil
	l.logger = nil
	return err
}
