package utils

import "net/http"

// CustomError carries an HTTP status code alongside the message
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// NewUnauthenticatedError signals a request with no signed-in actor
func NewUnauthenticatedError() *CustomError {
	return &CustomError{StatusCode: http.StatusUnauthorized, Message: "You must be signed in"}
}

// NewNotFoundError signals a missing entity
func NewNotFoundError(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusNotFound, Message: message}
}

// IsUnauthenticated reports whether err is a 401 CustomError
func IsUnauthenticated(err error) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 CustomError
func IsNotFound(err error) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.StatusCode == http.StatusNotFound
}
