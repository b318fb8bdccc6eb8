package pattern

import (
	"errors"
	"fmt"
)

// Compilation errors. Search never fails; every error is reported here.
var (
	// ErrInvalidPattern indicates an empty or malformed query.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidDistance indicates a threshold outside [0, len(query)).
	ErrInvalidDistance = errors.New("invalid distance")
)

// CompileError wraps a compilation failure with the offending query.
type CompileError struct {
	Query string
	Err   error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("seeq: cannot compile %q: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("seeq: cannot compile pattern: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// SyntaxError reports a malformed DNA expression. It matches
// ErrInvalidPattern under errors.Is.
type SyntaxError struct {
	Pos    int  // byte offset in the query
	Char   byte // offending byte, 0 at end of input
	Reason string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%v: %s at end of expression", ErrInvalidPattern, e.Reason)
	}
	return fmt.Sprintf("%v: %s at offset %d (%q)", ErrInvalidPattern, e.Reason, e.Pos, e.Char)
}

// Unwrap returns ErrInvalidPattern
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidPattern
}
