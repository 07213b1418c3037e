package ir

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes load and decode errors.
type ErrorCode string

const (
	// ErrCodeMalformedBinary indicates a blob whose length is not a
	// multiple of its record size.
	ErrCodeMalformedBinary ErrorCode = "MALFORMED_BINARY"

	// ErrCodeMissingStringEntry indicates an index past the end of a label
	// array or of the object list.
	ErrCodeMissingStringEntry ErrorCode = "MISSING_STRING_ENTRY"

	// ErrCodeUnknownKind indicates an unrecognized action kind byte.
	// Non-fatal: the action renders with an empty kind.
	ErrCodeUnknownKind ErrorCode = "UNKNOWN_KIND"

	// ErrCodeUnknownAlterType indicates an unrecognized alter code.
	// Non-fatal, same as ErrCodeUnknownKind: what renders empty.
	ErrCodeUnknownAlterType ErrorCode = "UNKNOWN_ALTER_TYPE"

	// ErrCodeMissingLevel indicates a session level absent from the
	// reachability manifest.
	ErrCodeMissingLevel ErrorCode = "MISSING_LEVEL"

	// ErrCodeInvalidDocument indicates a manifest or session document that
	// cannot be parsed or has wrongly typed fields.
	ErrCodeInvalidDocument ErrorCode = "INVALID_DOCUMENT"
)

// NoIndex marks an Error that is not about a particular record.
const NoIndex = -1

// Error is a load-time failure or notice with enough context to locate the
// offending input.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Path is the input file, when known.
	Path string

	// Index is the record or label position, or NoIndex.
	Index int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Index != NoIndex {
		msg = fmt.Sprintf("%s (index=%d)", msg, e.Index)
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is, or wraps, an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// WithPath returns err with its Path set if err is an *Error lacking one.
// Other errors are wrapped with the path.
func WithPath(err error, path string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Path == "" {
			e.Path = path
		}
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}

// NewMalformedBinaryError reports a blob that does not split into whole
// records.
func NewMalformedBinaryError(size, recordSize int) *Error {
	return &Error{
		Code: ErrCodeMalformedBinary,
		Message: fmt.Sprintf("%d bytes is not a multiple of the %d-byte record size (%d trailing)",
			size, recordSize, size%recordSize),
		Index: NoIndex,
	}
}

// NewMissingStringEntryError reports an index past the end of a table.
func NewMissingStringEntryError(table string, index, length int) *Error {
	return &Error{
		Code:    ErrCodeMissingStringEntry,
		Message: fmt.Sprintf("%s has %d entries", table, length),
		Index:   index,
	}
}

// NewMissingLevelError reports a session level the manifest does not know.
func NewMissingLevelError(level int) *Error {
	return &Error{
		Code:    ErrCodeMissingLevel,
		Message: fmt.Sprintf("level %d is not in the reachability manifest", level),
		Index:   NoIndex,
	}
}
