package appErrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"
	CodeTermsNotAccepted ErrorCode = "TERMS_NOT_ACCEPTED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Accounts
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists   ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeEmailAlreadyVerified ErrorCode = "EMAIL_ALREADY_VERIFIED"
	CodeInvalidResetToken    ErrorCode = "INVALID_RESET_TOKEN"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
