package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - type for application error codes
type ErrorCode string

// AppError - the application error structure carried from services up to the
// transport boundary. HTTPCode and the wrapped Err never leave the process.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New constructs an AppError.
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap constructs an AppError around an underlying error.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// MarshalJSON hides the wrapped error and HTTP code from the response body.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - wrapper over the standard errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - wrapper over the standard errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication. ErrInvalidCredentials is deliberately generic: a missing
	// account and a wrong password must be indistinguishable to the caller.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrAccountDisabled    = New(CodeAccountDisabled, "Account has been disabled", http.StatusForbidden)

	// Accounts
	ErrUserNotFound         = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists   = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrEmailAlreadyVerified = New(CodeEmailAlreadyVerified, "Email is already verified", http.StatusBadRequest)
	ErrInvalidResetToken    = New(CodeInvalidResetToken, "Invalid or expired reset token", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidEmail     = New(CodeInvalidEmail, "Invalid email format", http.StatusBadRequest)
	ErrWeakPassword     = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrPasswordMismatch = New(CodePasswordMismatch, "Passwords do not match", http.StatusBadRequest)
	ErrTermsNotAccepted = New(CodeTermsNotAccepted, "You must accept the terms of service", http.StatusBadRequest)
	ErrInvalidUserRole  = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
)

// Helpers for errors with details

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}
