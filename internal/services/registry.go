package services

import "gymfit_backend/internal/email"

// ServiceContainer bundles the constructed services for wiring.
type ServiceContainer struct {
	AuthService  AuthService
	UserService  UserService
	EmailService email.Provider
}
