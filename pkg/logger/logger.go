// Package logger provides the small logging interface used across
// cookieparse. The parser itself logs nothing unless a Logger is attached;
// the CLI attaches a StandardLogger on stderr in verbose mode.
package logger

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger is implemented by every log backend in cookieparse.
// Messages use fmt.Sprintf formatting.
type Logger interface {
	// Info logs an informational message (e.g., "imported 12 cookies from Firefox").
	Info(format string, args ...interface{})

	// Warning logs a recoverable problem (e.g., a cookie dropped by the decoder).
	Warning(format string, args ...interface{})

	// Error logs a failure (e.g., "cannot open cookie store").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger.
	// Safe to call multiple times.
	Close() error
}

// New returns a StandardLogger writing to w when verbose is set, and a
// NopLogger otherwise.
func New(w io.Writer, verbose bool) Logger {
	if !verbose {
		return NewNopLogger()
	}
	return NewStandardLogger(log.New(w, "", log.LstdFlags))
}

// StandardLogger wraps a stdlib *log.Logger and tags each line with its level.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// Info logs with an [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs with a [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs with an [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close is a no-op; the underlying writer belongs to the caller.
func (s *StandardLogger) Close() error {
	return nil
}

// FileLogger is a StandardLogger that owns its writer, typically a log
// file, and closes it on Close.
type FileLogger struct {
	*StandardLogger
	closer io.Closer
	once   sync.Once
	err    error
}

// NewFileLogger creates a logger writing to wc with standard flags.
func NewFileLogger(wc io.WriteCloser) *FileLogger {
	return &FileLogger{
		StandardLogger: NewStandardLogger(log.New(wc, "", log.LstdFlags)),
		closer:         wc,
	}
}

// Close closes the underlying writer once. Later calls return the same error.
func (f *FileLogger) Close() error {
	f.once.Do(func() {
		f.err = f.closer.Close()
	})
	return f.err
}

// NopLogger discards all messages. It is the parser's default.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*FileLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger records formatted messages for tests. It is safe for use by
// several goroutines, so it can sit behind a shared Parser.
type MockLogger struct {
	mu           sync.Mutex
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
	return nil
}

// Warnings returns a copy of the recorded warning messages.
func (m *MockLogger) Warnings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.WarningCalls...)
}

var _ Logger = (*MockLogger)(nil)
