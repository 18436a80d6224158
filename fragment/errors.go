package fragment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by errors reporting absent fragment templates.
	ErrNotFound = errors.New("fragment not found")

	// ErrMalformedOverride is matched by errors reporting attribute
	// overrides not following "target.attribute=value" syntax.
	ErrMalformedOverride = errors.New("malformed attribute override")
)

// NotFoundError is returned by a Source when template for the requested
// fragment does not exist.
type NotFoundError struct {
	ID   string
	Path string
}

func (e *NotFoundError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("fragment '%s' does not exist", e.ID)
	}
	return fmt.Sprintf("fragment '%s' does not exist (%s)", e.ID, e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReadError is returned by a Source when template exists but could not be
// read.
type ReadError struct {
	ID   string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read fragment '%s' (%s): %v", e.ID, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when template markup cannot be parsed.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse fragment '%s': %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedOverrideError lists every entry of an "attr" parameter which
// could not be parsed. Err combines per entry errors.
type MalformedOverrideError struct {
	Entries []string
	Err     error
}

func (e *MalformedOverrideError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedOverride, strings.Join(e.Entries, ", "))
}

func (e *MalformedOverrideError) Is(target error) bool {
	return target == ErrMalformedOverride
}

func (e *MalformedOverrideError) Unwrap() error {
	return e.Err
}
