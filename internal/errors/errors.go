package errors

import (
	"errors"
	"fmt"
)

// ValidationError carries an internal validation code such as
// "POST_THREAD.TITLE_LIMIT_CHAR". Codes are translated to user-facing
// messages by Translate.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

// NotFoundError covers a missing entity, a mismatched relationship
// (comment not on the requested thread) and an already soft-deleted row.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError means the caller is not the owner of the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ErrorWithStatusCode is for infrastructure-level failures that already
// know their HTTP status (bad credentials, taken username, invalid token).
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NewValidation(code string) *ValidationError {
	return &ValidationError{Code: code}
}

func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func NewAuthorization(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
