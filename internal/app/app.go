package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gymfit_backend/database"
	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/config"
	"gymfit_backend/internal/email"
	"gymfit_backend/internal/handlers"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/middleware"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/routes"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens, err := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTL)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTL)*time.Minute,
	)
	if err != nil {
		// A weak secret must stop the process before the first request.
		logger.Fatal("Failed to initialize token manager", "error", err)
	}

	serviceContainer := initializeServices(cfg, tokens)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager) *services.ServiceContainer {
	emailService := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()

	authService := services.NewAuthService(userRepo, tokens, emailService)
	userService := services.NewUserService(userRepo)

	return &services.ServiceContainer{
		AuthService:  authService,
		UserService:  userService,
		EmailService: emailService,
	}
}

// initializeEmailProvider wires gomail when SMTP is configured and falls back
// to the in-memory mock otherwise, so local runs work without a mail server.
func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured. Using MOCK email provider, no mail will be sent.")
		return email.NewMockProvider()
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.UseTLS = cfg.Email.UseTLS
	smtpConfig.FrontendBaseURL = cfg.Frontend.BaseURL

	templates := email.NewTemplateManager()
	if err := templates.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
		// Builtin templates remain available, custom ones just did not load.
		logger.Warn("Failed to load email templates from disk, using builtins", "dir", cfg.Email.TemplatesDir, "error", err)
	}

	provider := email.NewGomailProvider(smtpConfig, templates)
	if err := provider.Validate(); err != nil {
		logger.Fatal("Invalid SMTP configuration", "error", err)
	}

	logger.Info("Email provider initialized", "host", smtpConfig.Host, "port", smtpConfig.Port)
	return provider
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler: handlers.NewUserHandler(baseHandler, container.UserService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
