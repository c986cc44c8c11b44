package services

import (
	"gorm.io/gorm"

	"gymfit_backend/internal/appErrors"
	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/services/dto"
)

type UserService interface {
	GetByID(db *gorm.DB, userID string) (*dto.UserDTO, error)
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetByID returns the sanitized projection of an account.
func (s *UserServiceImpl) GetByID(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	return dto.NewUserDTO(user), nil
}

// ChangePassword - password change for a user who knows the current one.
func (s *UserServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return appErrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return appErrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword

	if err := s.userRepo.Update(db, user); err != nil {
		return appErrors.InternalError(err)
	}

	return nil
}
