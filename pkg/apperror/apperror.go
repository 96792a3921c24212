package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrConflict         = errors.New("conflict")
	ErrInternal         = errors.New("internal server error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrTooManyRequests  = errors.New("too many requests")
)

// Kind classifies an error by its sentinel base.
type Kind string

const (
	KindNone             Kind = ""
	KindNotFound         Kind = "not_found"
	KindValidationFailed Kind = "validation_failed"
	KindStoreUnavailable Kind = "store_unavailable"
	KindConflict         Kind = "conflict"
	KindUnauthorized     Kind = "unauthorized"
	KindTooManyRequests  Kind = "too_many_requests"
	KindInternal         Kind = "internal"
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.BaseError, e.Err}
	}
	return []error{e.BaseError}
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewStoreUnavailable(details string, err error) *AppError {
	return NewAppError(ErrStoreUnavailable, "Store is unavailable", details, err)
}

func NewConflict(resource, field, value string) *AppError {
	msg := fmt.Sprintf("%s conflict", resource)
	details := fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)
	return NewAppError(ErrConflict, msg, details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func NewUnauthorized(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, "Invalid credentials", details, err)
}

func NewTooManyRequests(details string) *AppError {
	return NewAppError(ErrTooManyRequests, "Too many requests", details, nil)
}

// KindOf classifies err by the base of its outermost AppError, so a cause of
// another kind never overrides it. Errors without an AppError fall back to the
// sentinel chain; unclassified errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.BaseError != nil {
		return kindOfSentinel(appErr.BaseError)
	}
	return kindOfSentinel(err)
}

func kindOfSentinel(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindValidationFailed
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrTooManyRequests):
		return KindTooManyRequests
	default:
		return KindInternal
	}
}

func ToHTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
