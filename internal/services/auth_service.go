package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit_backend/internal/appErrors"
	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/email"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/services/dto"
)

// resetTokenTTL - lifetime of a password reset token.
const resetTokenTTL = 1 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout() *dto.ApiResponse
	CheckEmailExists(db *gorm.DB, email string) (bool, error)
	RequestPasswordReset(db *gorm.DB, email string) error
	ResetPassword(db *gorm.DB, token, password, confirmPassword string) error
	VerifyEmail(db *gorm.DB, token string) error
	ResendVerification(db *gorm.DB, email string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Register - creates a new, unverified account. Pure-input checks run before
// the store is consulted; the unique index on email remains the authority for
// a racing duplicate insert.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(db, req.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	verificationToken := generateRecoveryToken()

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Phone:             req.Phone,
		Role:              models.UserRoleClient,
		IsActive:          true,
		IsEmailVerified:   false,
		VerificationToken: verificationToken,
	}

	if len(req.Specializations) > 0 {
		user.Specializations = encodeStringList(req.Specializations)
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return &dto.RegisterResponse{
		Success:              true,
		Message:              "Account created successfully. Please check your email to verify your account.",
		User:                 dto.NewUserDTO(user),
		RequiresVerification: true,
	}, nil
}

// Login - verifies credentials and mints an access/refresh token pair.
// A missing account and a wrong password both surface as ErrInvalidCredentials
// so the caller cannot enumerate registered emails.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	// Only the active flag gates login. Unverified accounts may log in; the
	// verified flag is carried in the user projection for the frontend.
	if !user.IsActive {
		return nil, appErrors.ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(db, user.ID); err != nil {
		logger.Warn("Failed to update last login", "user_id", user.ID, "error", err)
	}
	now := time.Now()
	user.LastLogin = &now

	return s.buildSessionResponse(user, "Login successful")
}

// RefreshToken - validates a refresh token and mints a fresh pair (rotation).
// Every verification failure collapses to the generic invalid-token error.
func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.tokens.ParseToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(db, claims.Subject)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, appErrors.ErrAccountDisabled
	}

	return s.buildSessionResponse(user, "Token refreshed successfully")
}

// Logout - no server-side effect under the stateless token design. This is
// the insertion point for a token denylist if revocation is ever needed.
func (s *AuthServiceImpl) Logout() *dto.ApiResponse {
	return &dto.ApiResponse{
		Success: true,
		Message: "Logged out successfully",
	}
}

// CheckEmailExists - availability hint for the registration form. Does not
// distinguish inactive accounts from active ones.
func (s *AuthServiceImpl) CheckEmailExists(db *gorm.DB, email string) (bool, error) {
	exists, err := s.userRepo.ExistsByEmail(db, email)
	if err != nil {
		return false, appErrors.InternalError(err)
	}
	return exists, nil
}

// RequestPasswordReset - issues a single-use reset token valid for one hour.
// Returns nil whether or not the account exists; the caller's response must
// be identical in both cases.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return appErrors.InternalError(err)
	}

	resetToken := generateRecoveryToken()
	resetTokenExp := time.Now().Add(resetTokenTTL)

	// Overwrites any previous reset token: one live token per purpose.
	user.ResetToken = resetToken
	user.ResetTokenExp = &resetTokenExp

	if err := s.userRepo.Update(db, user); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)

	return nil
}

// ResetPassword - consumes a reset token. The token and its expiry are cleared
// in the same update that writes the new hash, so a replay with the same token
// fails.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, password, confirmPassword string) error {
	if password != confirmPassword {
		return appErrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(password); err != nil {
		return appErrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrInvalidResetToken
		}
		return appErrors.InternalError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		// Stale token: clear it on detection so repeated lookups stop matching.
		user.ResetToken = ""
		user.ResetTokenExp = nil
		if err := s.userRepo.Update(db, user); err != nil {
			logger.Warn("Failed to clear expired reset token", "user_id", user.ID, "error", err)
		}
		return appErrors.ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return appErrors.InternalError(err)
	}

	logger.Info("Password reset completed", "user_id", user.ID)

	return nil
}

// VerifyEmail - consumes an email-verification token.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrInvalidToken
		}
		return appErrors.InternalError(err)
	}

	user.IsEmailVerified = true
	user.VerificationToken = ""

	if err := s.userRepo.Update(db, user); err != nil {
		return appErrors.InternalError(err)
	}

	logger.Info("Email verified", "user_id", user.ID)

	return nil
}

// ResendVerification - reissues the verification token. The previous token is
// overwritten and becomes permanently unusable.
func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return appErrors.ErrEmailAlreadyVerified
	}

	verificationToken := generateRecoveryToken()
	user.VerificationToken = verificationToken

	if err := s.userRepo.Update(db, user); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if !isValidEmail(req.Email) {
		return appErrors.ErrInvalidEmail
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return appErrors.ValidationError("first_name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return appErrors.ValidationError("last_name is required")
	}
	if req.Password != req.ConfirmPassword {
		return appErrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return appErrors.ErrWeakPassword
	}
	if !req.AcceptTerms {
		return appErrors.ErrTermsNotAccepted
	}
	return nil
}

func (s *AuthServiceImpl) buildSessionResponse(user *models.User, message string) (*dto.LoginResponse, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:      true,
		Message:      message,
		User:         dto.NewUserDTO(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.tokens.AccessTTLSeconds(),
	}, nil
}

// sendVerificationEmail delivers asynchronously; a failure is logged and never
// aborts the caller's flow.
func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			logger.Error("Failed to send verification email", "error", err)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendPasswordReset(to, token); err != nil {
			logger.Error("Failed to send password reset email", "error", err)
		}
	}()
}

func isValidEmail(email string) bool {
	return len(email) > 5 && strings.Contains(email, "@")
}

// generateRecoveryToken returns a fresh single-use token for the verification
// and reset flows.
func generateRecoveryToken() string {
	return uuid.NewString()
}

func encodeStringList(values []string) []byte {
	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return data
}
