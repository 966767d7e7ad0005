package jobscrape

import (
	"errors"
	"fmt"
)

// Error codes. The first five classify scrape failures; the rest are used by
// supporting services (storage, CLI) that are not part of a scrape.
const (
	ENETWORK   = "network"
	EBLOCKED   = "blocked"
	ENOCONTENT = "no_content"
	EPARSE     = "parse"
	ECONFIG    = "config"

	EINVALID  = "invalid"
	EINTERNAL = "internal"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string `json:"kind"`

	// Human-readable error message.
	Message string `json:"message"`

	// URL being scraped when the error occurred, if any.
	URL string `json:"url,omitempty"`

	// Attempts is the number of fetch attempts made before giving up.
	Attempts int `json:"attempts,omitempty"`

	// Final reports that repeating the request cannot change the outcome.
	Final bool `json:"-"`

	// Err is the underlying cause, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("jobscrape error: code=%s url=%s message=%s", e.Code, e.URL, e.Message)
	}
	return fmt.Sprintf("jobscrape error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// IsFinal reports whether err is an application error marked as final.
func IsFinal(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Final
}

// AsError converts err into an application error, wrapping foreign errors
// with the given fallback code.
func AsError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: code, Message: err.Error(), Err: err}
}
