package statserr

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeMalformedRecord  = "MALFORMED_RECORD"
	CodeTransientStorage = "TRANSIENT_STORAGE"
)

var (
	// ErrNotFound is returned by point reads when the record does not exist.
	// Callers looking up dependent records treat it as "absent", not as a failure.
	ErrNotFound = New(CodeNotFound, false, "record not found with given parameters")

	// ErrMalformedRecord is returned when a change event or one of its snapshots
	// cannot be decoded or fails validation. Redelivering it will not help.
	ErrMalformedRecord = New(CodeMalformedRecord, false, "malformed record: change event could not be decoded or is invalid")

	// ErrTransientStorage is returned when a read or write against the store
	// failed in a way that a later redelivery may succeed.
	ErrTransientStorage = New(CodeTransientStorage, true, "transient storage error")
)

type Extras map[string]any

type Error struct {
	Code      string
	Message   string
	Retryable bool
	Extras    *Extras

	cause error
}

func New(code string, retryable bool, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: retryable,
	}
}

func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

// Wrap returns a copy of e carrying err as its cause.
func (e Error) Wrap(err error) *Error {
	e.cause = err
	return &e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors of the same code, so copies produced by Msg, WithExtras
// or Wrap still satisfy errors.Is against the sentinel they came from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Transient wraps a storage error as retryable. nil stays nil.
func Transient(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return ErrTransientStorage.Msg("transient storage error: %s", op).Wrap(err)
}

// IsRetryable reports whether redelivering the change event that produced err
// may succeed. Unclassified errors are assumed retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return true
}
