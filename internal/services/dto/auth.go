package dto

// RegisterRequest - registration payload
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`

	Phone           string   `json:"phone,omitempty"`
	Specializations []string `json:"specializations,omitempty"`

	AcceptTerms      bool `json:"accept_terms"`
	AcceptNewsletter bool `json:"accept_newsletter"`
}

// RegisterResponse - registration result
type RegisterResponse struct {
	Success              bool     `json:"success"`
	Message              string   `json:"message"`
	User                 *UserDTO `json:"user,omitempty"`
	RequiresVerification bool     `json:"requires_verification"`
}

// LoginRequest - login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - session result, also returned from a token refresh
type LoginResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	User         *UserDTO `json:"user,omitempty"`
	AccessToken  string   `json:"access_token,omitempty"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	ExpiresIn    int64    `json:"expires_in,omitempty"`
}

// RefreshTokenRequest - token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest - password reset request payload
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest - password reset confirmation payload
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// VerifyEmailRequest - email verification payload
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResendVerificationRequest - verification resend payload
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest - authenticated password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ApiResponse - generic result envelope
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmailCheckResponse - email availability result
type CheckEmailQuery struct {
	Email string `form:"email" binding:"required,email"`
}

type EmailCheckResponse struct {
	Exists bool `json:"exists"`
}
