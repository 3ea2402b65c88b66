package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// Sentinel errors for reading a header file.
var (
	// ErrInputFileNotFound is returned when the header file does not exist.
	ErrInputFileNotFound = errors.New("header file not found")
	// ErrInputFilePermission is returned when the header file cannot be read due to permissions.
	ErrInputFilePermission = errors.New("permission denied reading header file")
	// ErrInputFileEmpty is returned when the header file holds no header text.
	ErrInputFileEmpty = errors.New("header file is empty")
)

// InputFileError wraps header file errors with the offending path.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Path)
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}

// NewInputFileError creates a new InputFileError with the given path and error.
func NewInputFileError(path string, err error) *InputFileError {
	return &InputFileError{Path: path, Err: err}
}

// ReadHeaderFile reads a Cookie header from path on fsys.
//
// Each non-empty line is one header value. Lines starting with # are
// comments, and a leading "Cookie:" field name is dropped. Several lines
// are joined with "; " so they parse as one header.
func ReadHeaderFile(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", wrapInputFileError(path, err)
	}
	header := joinHeaderLines(string(data))
	if header == "" {
		return "", NewInputFileError(path, ErrInputFileEmpty)
	}
	return header, nil
}

func joinHeaderLines(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line = trimHeader(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "; ")
}

// trimHeader strips surrounding space and an optional "Cookie:" prefix, so
// a header line copied from a request dump can be used as is.
func trimHeader(s string) string {
	s = strings.TrimSpace(s)
	const prefix = "cookie:"
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		s = strings.TrimSpace(s[len(prefix):])
	}
	return s
}

func wrapInputFileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewInputFileError(path, ErrInputFileNotFound)
	case errors.Is(err, fs.ErrPermission):
		return NewInputFileError(path, ErrInputFilePermission)
	default:
		return NewInputFileError(path, err)
	}
}
