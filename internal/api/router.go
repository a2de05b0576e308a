package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/adboard/listings-api/docs"
	"github.com/adboard/listings-api/internal/api/handler"
	"github.com/adboard/listings-api/internal/api/middleware"
	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
	"github.com/adboard/listings-api/internal/core/service"
	"github.com/adboard/listings-api/internal/infrastructure/config"
	"github.com/adboard/listings-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/adboard/listings-api/internal/infrastructure/db/redis"
	"github.com/adboard/listings-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case listing reads skip the cache.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("adboard"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	adRepo := postgres.NewAdvertisementRepository(db)

	var cache ports.ListingCache
	if rdb != nil {
		cache = redisinfra.NewListingCache(rdb)
	}

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpHours)*time.Hour)
	userService := service.NewUserService(userRepo, log)
	adService := service.NewAdvertisementService(adRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adHandler := handler.NewAdvertisementHandler(adService)

	requireAuth := middleware.Auth(cfg.JWT.Secret, userRepo)
	optionalAuth := middleware.OptionalAuth(cfg.JWT.Secret, userRepo)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)

	// --- User routes ---
	e.POST("/user", userHandler.Create, optionalAuth)
	e.GET("/user/:id", userHandler.Get)
	e.GET("/user", userHandler.List, requireAuth, middleware.RequireGroup(domain.GroupAdmin, domain.GroupRoot))
	e.PATCH("/user/:id", userHandler.Patch, requireAuth)
	e.DELETE("/user/:id", userHandler.Delete, requireAuth)

	// --- Advertisement routes ---
	e.POST("/advertisement", adHandler.Create, requireAuth)
	e.GET("/advertisement/:id", adHandler.Get)
	e.GET("/advertisement", adHandler.Search)
	e.PATCH("/advertisement/:id", adHandler.Patch, requireAuth)
	e.DELETE("/advertisement/:id", adHandler.Delete, requireAuth)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
