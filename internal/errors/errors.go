// Package errors provides the application error types for the admin API.
// Handlers render AppError values so responses keep a stable shape and never
// carry internal error objects to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// wrapped copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// ErrInternalServer is the fallback for errors that carry no AppError.
var ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrUpstream           = &AppError{Code: "UPSTREAM_ERROR", Message: "Upstream service request failed", StatusCode: http.StatusInternalServerError}
)

// Report errors.
var (
	ErrReportSave     = &AppError{Code: "REPORT_SAVE_FAILED", Message: "An error occurred while saving the report.", StatusCode: http.StatusInternalServerError}
	ErrReportGenerate = &AppError{Code: "REPORT_GENERATE_FAILED", Message: "An error occurred while generating the report.", StatusCode: http.StatusInternalServerError}
)
