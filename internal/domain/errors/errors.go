// Package errors provides domain-specific error types.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for domain errors.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeAuthentication  = "AUTHENTICATION_FAILED"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeUpstream        = "UPSTREAM_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error.
type DomainError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	// UpstreamStatus is the status code returned by the remote API, if any.
	UpstreamStatus int   `json:"-"`
	Err            error `json:"-"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, details string) *DomainError {
	return &DomainError{
		Code:       ErrCodeValidation,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUnauthorizedError creates a new unauthorized error.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewAuthenticationError reports a login the remote API rejected.
func NewAuthenticationError(status int) *DomainError {
	return &DomainError{
		Code:           ErrCodeAuthentication,
		Message:        fmt.Sprintf("login failed: status %d", status),
		HTTPStatus:     http.StatusUnauthorized,
		UpstreamStatus: status,
	}
}

// NewTooManyRequestsError creates a new throttling error.
func NewTooManyRequestsError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeTooManyRequests,
		Message:    message,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// NewUpstreamError reports a non-2xx response from the remote API.
func NewUpstreamError(status int) *DomainError {
	message := fmt.Sprintf("request failed: status %d", status)
	if text := http.StatusText(status); text != "" {
		message += ": " + text
	}
	return &DomainError{
		Code:           ErrCodeUpstream,
		Message:        message,
		HTTPStatus:     http.StatusInternalServerError,
		UpstreamStatus: status,
	}
}

// NewPollTimeoutError reports a report execution that exhausted its retry budget.
func NewPollTimeoutError(attempts int) *DomainError {
	return &DomainError{
		Code:       ErrCodeTimeout,
		Message:    fmt.Sprintf("report execution timed out after %d attempts", attempts),
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *DomainError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       ErrCodeInternal,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// GetDomainError extracts the domain error from an error.
func GetDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// HasCode reports whether err is a domain error with the given code.
func HasCode(err error, code string) bool {
	domainErr, ok := GetDomainError(err)
	return ok && domainErr.Code == code
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	return HasCode(err, ErrCodeValidation)
}

// IsAuthenticationError checks if the remote API rejected a login.
func IsAuthenticationError(err error) bool {
	return HasCode(err, ErrCodeAuthentication)
}

// IsUpstreamError checks if the error came from a non-2xx remote response.
func IsUpstreamError(err error) bool {
	return HasCode(err, ErrCodeUpstream)
}

// IsTimeout checks if the error is a poll timeout.
func IsTimeout(err error) bool {
	return HasCode(err, ErrCodeTimeout)
}
