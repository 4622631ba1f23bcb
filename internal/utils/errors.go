package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is an error that carries the HTTP status it should be reported with.
type StatusError struct {
	Code    int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error { return e.Err }

func New(code int, message string) error {
	return &StatusError{Code: code, Message: message}
}

// Wrap attaches a status to err.
func Wrap(code int, message string, err error) error {
	return &StatusError{Code: code, Message: message, Err: err}
}

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return http.StatusInternalServerError
}

// MessageOf returns the public message for err. Errors without a status get
// the generic status text so internal details are not leaked.
func MessageOf(err error) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return http.StatusText(StatusOf(err))
}
