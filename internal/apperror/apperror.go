// Package apperror defines the typed failure taxonomy shared by the
// analysis pipeline and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies one failure category surfaced to API clients.
type Code string

const (
	CodeInvalidRequest          Code = "INVALID_REQUEST"
	CodeInvalidURL              Code = "INVALID_URL"
	CodeUnauthorized            Code = "UNAUTHORIZED"
	CodeNotFound                Code = "NOT_FOUND"
	CodeTweetNotFound           Code = "TWEET_NOT_FOUND"
	CodeTweetPrivate            Code = "TWEET_PRIVATE"
	CodeXAPIUnauthorized        Code = "X_API_UNAUTHORIZED"
	CodeProviderUnavailable     Code = "PROVIDER_UNAVAILABLE"
	CodeLanguageDetectionFailed Code = "LANGUAGE_DETECTION_FAILED"
	CodeExtractionFailed        Code = "EXTRACTION_FAILED"
	CodeTranslationFailed       Code = "TRANSLATION_FAILED"
	CodeInsufficientWords       Code = "INSUFFICIENT_WORDS"
	CodeInternal                Code = "INTERNAL_ERROR"
)

// Error carries a taxonomy code, a user-facing message and the wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error without a wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an Error wrapping the original cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the taxonomy code from err, or CodeInternal when err is
// not an *Error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-facing message from err. Provider internals
// never leak: a non-taxonomy error yields a generic message.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "unexpected error"
}

// HTTPStatus maps a taxonomy code to its HTTP response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidRequest, CodeInvalidURL, CodeInsufficientWords:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeTweetPrivate:
		return http.StatusForbidden
	case CodeNotFound, CodeTweetNotFound:
		return http.StatusNotFound
	case CodeProviderUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
