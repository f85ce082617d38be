package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError blocks the operation locally; nothing downstream is
// called while Fields is non-empty. Fields is keyed "<index>-<field>"
// for per-passenger errors, or just "<field>" for single-value checks.
type ValidationError struct {
	Field  string
	Msg    string
	Fields map[string]string
	Err    error
}

func (e ValidationError) Error() string {
	switch {
	case len(e.Fields) > 0:
		return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError covers rejected state changes: toggling an occupied
// seat, exceeding the selection limit, illegal flow transitions.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// RemoteError surfaces a failed store operation. It is always
// recoverable by retrying the last action.
type RemoteError struct {
	Op  string
	Err error
}

func (e RemoteError) Error() string {
	if e.Op == "" {
		return "store operation failed"
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e RemoteError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsRemote(err error) bool {
	var target RemoteError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// FieldErrors extracts the per-field error map when err wraps a
// ValidationError carrying one.
func FieldErrors(err error) map[string]string {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Fields
	}
	return nil
}
