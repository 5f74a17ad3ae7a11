package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeValidation,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// Validation builds a ValidationError with a caller-supplied message.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// RequiredField reports a missing required field by its humanized name.
func RequiredField(field string) *AppError {
	return Validation(fmt.Sprintf("%s is required", field))
}

// InvalidField reports a field that is present but out of domain.
func InvalidField(field string) *AppError {
	return Validation(fmt.Sprintf("%s is invalid", field))
}

// IO wraps a persistence or file-decoding failure. The operation is not
// retried; the caller reports it and leaves prior in-memory state untouched.
func IO(err error) *AppError {
	return Wrap(err, CodeIOError, "Storage operation failed", http.StatusBadGateway)
}
