package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks the required capability.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState indicates an operation was attempted from a state that does not permit it,
// e.g. approving a pending action that has already reached a terminal status.
var ErrInvalidState = errors.New("invalid state for requested operation")

// ErrInternal wraps unexpected persistence or infrastructure failures with a user-safe message.
var ErrInternal = errors.New("internal error")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP-ish status code alongside a message and an optional cause.
// Repositories use it to translate low-level driver errors at the boundary so nothing
// below the persistence layer leaks across an operation boundary.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates a 400 AppError with no underlying cause.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

// ValidationError is an ErrValidation carrying a field -> message map so handlers can
// bind failures directly to form fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Is makes errors.Is(err, ErrValidation) true for ValidationError values.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
