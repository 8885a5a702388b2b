package github

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrParse matches any ParseError
	ErrParse = errors.New("invalid JSON input")
	// ErrShape matches any ShapeError
	ErrShape = errors.New("unexpected payload shape")
)

// ParseError is returned when the input is not syntactically valid JSON
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON input: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ShapeError is returned when valid JSON lacks a key on the expected access path,
// or holds a value of the wrong type there.
type ShapeError struct {
	// Path is the dotted location of the offending key, e.g. "data.repository".
	Path   string
	Reason string
	Err    error
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("unexpected payload shape: %s %s", e.Reason, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ShapeError) Unwrap() error { return e.Err }

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

func missingKey(path string) error {
	return &ShapeError{Path: path, Reason: "missing key"}
}
