package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code of an
// inner AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    GetCode(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code of the nearest AppError in the chain,
// otherwise CodeInternalError
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// Error codes. Config and transport failures abort the whole run, format
// failures abort only on numeric coercion, row-not-found is isolated per
// campaign.
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeFormatError      = "FORMAT_ERROR"
	CodeColumnResolution = "COLUMN_RESOLUTION"
	CodeRowNotFound      = "ROW_NOT_FOUND"
	CodeTransportError   = "TRANSPORT_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func FormatError(message string) *AppError {
	return New(CodeFormatError, message)
}

func FormatErrorf(format string, args ...interface{}) *AppError {
	return New(CodeFormatError, fmt.Sprintf(format, args...))
}

func ColumnResolution(label string, dayIndex int) *AppError {
	return New(CodeColumnResolution,
		fmt.Sprintf("no column for label %q at day index %d", label, dayIndex))
}

func RowNotFound(campaign string) *AppError {
	return New(CodeRowNotFound,
		fmt.Sprintf("campaign %q and its alternatives not found in the sheet", campaign))
}

func Transport(operation string, cause error) *AppError {
	return &AppError{
		Code:    CodeTransportError,
		Message: fmt.Sprintf("sheet store %s failed", operation),
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
