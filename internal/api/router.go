package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unerg-ais/reporting-system/internal/api/handler"
	"github.com/unerg-ais/reporting-system/internal/api/middleware"
	"github.com/unerg-ais/reporting-system/internal/core/domain"
	"github.com/unerg-ais/reporting-system/internal/core/service"
	"github.com/unerg-ais/reporting-system/internal/infrastructure/config"
	mongodb "github.com/unerg-ais/reporting-system/internal/infrastructure/db/mongo"
	redisdb "github.com/unerg-ais/reporting-system/internal/infrastructure/db/redis"
)

const publicCreateLimit = 30 // submissions per IP per minute

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, queue service.NotificationQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reportes"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	reportRepo := mongodb.NewReportRepository(db)
	reportService := service.NewReportService(reportRepo, queue, log)
	reportHandler := handler.NewReportHandler(reportService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	limiter := redisdb.NewFixedWindowLimiter(rdb, publicCreateLimit, time.Minute)
	rateLimitMW := middleware.RateLimit(limiter, log)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)

	// --- Report routes ---
	// Creation is public (the submission form requires no account); everything
	// else is admin-gated.
	reportes := e.Group("/api/reportes")
	reportes.POST("", reportHandler.Create, rateLimitMW)
	reportes.GET("", reportHandler.List, authMW, adminOnly)
	reportes.PUT("/:id", reportHandler.Update, authMW, adminOnly)
	reportes.DELETE("/:id", reportHandler.Delete, authMW, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
