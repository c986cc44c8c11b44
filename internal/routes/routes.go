package routes

import (
	"github.com/gin-gonic/gin"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/handlers"
	"gymfit_backend/internal/middleware"
)

// RegisterRoutes mounts all HTTP routes on the router.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.UserHandler.RegisterRoutes(protected)
	}
}
