// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for simplevector.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrOutOfRange         = fmt.Errorf("index out of range")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
	ErrPreconditionFailed = fmt.Errorf("precondition violated")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeInvalidArgument
	ErrCodePrecondition
	ErrCodeInternal
)

// sentinels maps codes onto the package-level errors for errors.Is.
var sentinels = map[ErrorCode]error{
	ErrCodeOutOfRange:      ErrOutOfRange,
	ErrCodeInvalidArgument: ErrInvalidArgument,
	ErrCodePrecondition:    ErrPreconditionFailed,
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel matching the error code, if any.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal when err
// is not a structured *Error. A nil err yields ErrCodeOK.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
