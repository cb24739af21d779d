package pkg

import "net/http"

// AppError is the error envelope returned by every HTTP handler.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return NewDomainError(code, message, nil, status)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

var (
	ErrUnauthorized = NewDomainErrorSimple("UNAUTHORIZED", "Admin login required", http.StatusUnauthorized)
	ErrInvalidInput = NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)
