package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-manager/internal/config"
	"contact-manager/internal/delivery/http/handler"
	"contact-manager/internal/infrastructure/database/postgres"
	"contact-manager/internal/logger"
	"contact-manager/internal/middleware"
	"contact-manager/internal/usecase/address"
	"contact-manager/internal/usecase/contact"
	"contact-manager/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	if cfg.RateLimit.RPS > 0 {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	contactRepository := postgres.NewContactRepository(db)
	addressRepository := postgres.NewAddressRepository(db)

	userService := user.NewService(userRepository, cfg)
	contactService := contact.NewService(contactRepository)
	addressService := address.NewService(contactRepository, addressRepository)

	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	addressHandler := handler.NewAddressHandler(addressService)

	api := router.Group("/api")
	{
		userHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(userRepository))
		{
			userHandler.RegisterRoutes(protected)
			contactHandler.RegisterRoutes(protected)
			addressHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
