package quotes

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is wrapped by MalformedLineError.
	ErrMalformedLine = errors.New("malformed line")
	// ErrInvalidRange is returned by range queries whose start is not before their end.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNoData is wrapped by every query error caused by missing bars.
	ErrNoData = errors.New("no data")
	// ErrEmptyRange is returned by range queries when no bar falls in the range.
	ErrEmptyRange = fmt.Errorf("%w: empty range", ErrNoData)
	// ErrMissingBoundary is returned by range queries when the first or last day has no bar.
	ErrMissingBoundary = fmt.Errorf("%w: missing boundary", ErrNoData)
	// ErrDocumentExists is returned when converting a text file would replace an existing document.
	ErrDocumentExists = errors.New("document already exists")
	// ErrVerify is returned when a written document does not read back as the series it was written from.
	ErrVerify = errors.New("verification failed")
)

// MalformedLineError reports a record line without the expected number of fields.
type MalformedLineError struct {
	Line   string // the raw line
	Fields int    // number of fields found
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: got %d fields want %d", e.Line, e.Fields, FieldCount)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// ParseError reports a record field that cannot be read.
type ParseError struct {
	Field string // name of the field, e.g. "high"
	Kind  string // expected kind of value, e.g. "decimal"
	Text  string // offending text
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: field %s: %q is not a valid %s: %v", e.Field, e.Text, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LineError locates an error within a text file.
type LineError struct {
	Line int // 1-based line number
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// IOError reports a failed file system operation.
type IOError struct {
	Op   string // e.g. "open", "write", "remove"
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("io error: cannot %s %q: %v", e.Op, e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }
