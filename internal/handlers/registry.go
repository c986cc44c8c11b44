package handlers

// AppHandlers holds all application handlers.
type AppHandlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
}
