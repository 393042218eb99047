package format

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySpec is returned when the format spec is an empty string.
	ErrEmptySpec = errors.New("empty format spec")

	// ErrUnmatchedBracket is returned when a truncation bracket is never closed.
	ErrUnmatchedBracket = errors.New("unmatched truncation bracket")

	// ErrBadTruncation is returned when bracket content is not a positive integer.
	ErrBadTruncation = errors.New("truncation must be a positive integer")

	// ErrBadSuffix is returned when a numeric suffix does not fit in an int.
	ErrBadSuffix = errors.New("numeric suffix out of range")

	// ErrMultipleSuffixes is returned when a spec declares more than one numeric suffix.
	ErrMultipleSuffixes = errors.New("multiple numeric suffixes")
)

// CompileError reports why a format spec failed to compile. It wraps one of
// the sentinel errors above, so errors.Is can classify the failure, and keeps
// the full spec together with the substring that broke parsing.
type CompileError struct {
	Spec      string
	Offending string
	err       error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Offending == "" {
		return fmt.Sprintf("compile %q: %s", e.Spec, e.err)
	}
	return fmt.Sprintf("compile %q: %s at %q", e.Spec, e.err, e.Offending)
}

// Unwrap exposes the sentinel cause to errors.Is/As.
func (e *CompileError) Unwrap() error {
	return e.err
}

func compileError(spec, offending string, cause error) error {
	return &CompileError{Spec: spec, Offending: offending, err: cause}
}
