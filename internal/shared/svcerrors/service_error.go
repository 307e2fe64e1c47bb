package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryTransientRemote = "transient_remote"
	categoryPermanentRemote = "permanent_remote"
	categoryConfiguration   = "configuration"
	categoryLocalStore      = "local_store"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

// NewTransientRemoteError creates a ServiceError for a remote failure that is
// safe to retry (rate limit, 5xx, network-level failure).
func NewTransientRemoteError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryTransientRemote,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewPermanentRemoteError creates a ServiceError for a remote failure that must
// not be retried (any non-retriable HTTP status).
func NewPermanentRemoteError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryPermanentRemote,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewConfigurationError creates a ServiceError for missing or unusable
// configuration or credentials. Never retried.
func NewConfigurationError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryConfiguration,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewLocalStoreError creates a ServiceError for a failed local store operation.
func NewLocalStoreError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryLocalStore,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewInternalError creates a ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
	}
}

// NewInternalErrorUndefined creates a ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // transient_remote, permanent_remote, configuration, local_store or internal
	Code     string // service-owned stable code (e.g. CRM_5000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether the error is a transient remote failure. The
// retry policy only replays operations failing with a transient error.
func (e *ServiceError) IsTransient() bool {
	return e.Category == categoryTransientRemote
}

// IsTransient reports whether err wraps a transient remote ServiceError.
func IsTransient(err error) bool {
	svcErr, ok := AsServiceError(err)
	return ok && svcErr.IsTransient()
}
