package apperror

import "net/http"

type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Err     error             `json:"-"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation is a 400 carrying per-field messages.
func Validation(message string, fields map[string]string) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Fields = fields
	return e
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

func Unavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

// Internal hides err from the client behind a generic message.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", err)
}
