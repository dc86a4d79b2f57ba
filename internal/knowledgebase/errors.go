package knowledgebase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments indicates a missing or malformed input; nothing was read or written.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrFileNotFound indicates the document to analyze does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// IOError reports a read or write failure on a document.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArguments, fmt.Sprintf(format, args...))
}
