package lint

import (
	"errors"
	"fmt"
)

// Error categories for failures that prevent a file from being analyzed.
var (
	// ErrIO indicates the file could not be read.
	ErrIO = errors.New("io failure")

	// ErrParse indicates no usable syntax tree could be produced.
	ErrParse = errors.New("parse failure")

	// ErrInvalidInput indicates a missing path or an unsupported file type.
	ErrInvalidInput = errors.New("invalid input")
)

// ParseError carries the best-effort location of a syntax error.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap ties ParseError to ErrParse for errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// FileError records a failure to analyze one file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsFileError checks if err is one of the known file failure categories.
func IsFileError(err error) bool {
	return errors.Is(err, ErrIO) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrInvalidInput)
}
