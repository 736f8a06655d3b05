package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers classify with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidState      = errors.New("invalid state")
	ErrNotFound          = errors.New("not found")
	ErrReferenceConflict = errors.New("booking reference already exists")
)

// Error carries a client-facing message together with its kind. Error()
// returns the message alone so transports can surface it verbatim.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) error {
	return &Error{Kind: ErrInvalidState, Message: fmt.Sprintf(format, args...)}
}

// IsClientError reports whether err should be shown to the caller as is.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidState)
}
