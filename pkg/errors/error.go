package errors

import (
	"errors"
	"fmt"
)

var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error is implemented by every error that carries a code.
type Error interface {
	error
	Code() string
	Unwrap() error
}

// AppError is the default coded error.
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError creates a new coded error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap wraps err with message, keeping the code of the first coded error in
// the chain. Uncoded errors become ErrInternal.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if code := CodeOf(err); code != "" {
		return NewAppError(code, message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of the first coded error in the chain, or "".
func CodeOf(err error) string {
	var coded Error
	if As(err, &coded) {
		return coded.Code()
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return CodeOf(err) == code
}
