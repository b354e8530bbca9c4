package deployment

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHTML is returned when the request carries no HTML content
	ErrNoHTML = errors.New("no HTML file")

	// ErrMissingToken is returned when no deployment credential is configured
	ErrMissingToken = errors.New("deployment token not found")

	// ErrMethodNotAllowed is returned for any method other than POST or OPTIONS
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInvalidStatusTransition is returned when a deployment is completed twice
	ErrInvalidStatusTransition = errors.New("invalid deployment status transition")

	// ErrIncompleteResponse is returned when the platform omits the deployment id or url
	ErrIncompleteResponse = errors.New("deployment platform returned an incomplete response")
)

// DefaultFailureMessage is reported when a failure carries no message of its own
const DefaultFailureMessage = "an unexpected error occurred"

// DefaultRejectionMessage is reported when the platform rejects a deployment without saying why
const DefaultRejectionMessage = "failed to deploy to Vercel"

const (
	CodePlatformRejected    = "PLATFORM_REJECTED"
	CodePlatformUnavailable = "PLATFORM_UNAVAILABLE"
)

// DomainError carries a caller-facing message alongside the underlying cause
type DomainError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ErrPlatformRejected reports a non-2xx answer from the deployment platform
func ErrPlatformRejected(statusCode int, message string, err error) *DomainError {
	if message == "" {
		message = DefaultRejectionMessage
	}
	return &DomainError{
		Code:       CodePlatformRejected,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ErrPlatformUnavailable reports a transport or decoding failure talking to the platform
func ErrPlatformUnavailable(err error) *DomainError {
	message := DefaultFailureMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &DomainError{
		Code:    CodePlatformUnavailable,
		Message: message,
		Err:     err,
	}
}
