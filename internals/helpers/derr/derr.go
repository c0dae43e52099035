// file: internals/helpers/derr/derr.go
package derr

import (
	"errors"
	"fmt"
)

// Kind identifies a domain error category. Kinds are stable API: controllers
// map them to HTTP statuses and clients may switch on the error_code.
type Kind string

const (
	KindValidation             Kind = "VALIDATION_ERROR"
	KindNotFound               Kind = "NOT_FOUND"
	KindInvalidTransition      Kind = "INVALID_TRANSITION"
	KindMakeupChainNotAllowed  Kind = "MAKEUP_CHAIN_NOT_ALLOWED"
	KindSessionNotTaught       Kind = "SESSION_NOT_TAUGHT"
	KindUnknownStudent         Kind = "UNKNOWN_STUDENT"
	KindInvalidJustification   Kind = "INVALID_JUSTIFICATION"
	KindUnmappedWeek           Kind = "UNMAPPED_WEEK"
	KindInconsistentWeights    Kind = "INCONSISTENT_WEIGHTS"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindStorageUnavailable     Kind = "STORAGE_UNAVAILABLE"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error { return &Error{Kind: kind, Msg: msg} }

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind carried by err, or "" for non-domain errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// Storage classifies an unexpected persistence failure as retryable.
// Domain errors pass through untouched so services can bubble both through
// one return path.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindStorageUnavailable, Msg: "storage operation failed", Err: err}
}

// Retryable reports whether the caller may safely retry the whole operation
// after reacquiring current state.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindConcurrentModification, KindStorageUnavailable:
		return true
	}
	return false
}
