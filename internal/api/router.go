package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tiempovital/admin-api/internal/api/handler"
	"github.com/tiempovital/admin-api/internal/api/middleware"
	"github.com/tiempovital/admin-api/internal/core/auth"
	"github.com/tiempovital/admin-api/internal/core/command"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/query"
	"github.com/tiempovital/admin-api/internal/core/service"
	mongodb "github.com/tiempovital/admin-api/internal/infrastructure/db/mongo"
	rediscache "github.com/tiempovital/admin-api/internal/infrastructure/db/redis"
)

// Options carries the process-wide settings the router needs. All of it is
// configuration loaded once at startup, never mutated afterwards.
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	CacheTTL   time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Dependencies are constructed here and injected explicitly; there are no
// package-level singletons besides the logger and the metric vars.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adminapi"))

	// --- Dependencies ---
	hasher := auth.NewPasswordHasher(opts.BcryptCost)
	tokens := auth.NewTokenManager(opts.JWTSecret, opts.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	officeRepo := mongodb.NewOfficeRepository(db)
	cache := rediscache.NewEntityCache(rdb, opts.CacheTTL)

	userQueries := query.NewUserQueryService(userRepo)
	officeQueries := query.NewOfficeQueryService(officeRepo, cache, log)
	userCommands := command.NewUserCommandService(userRepo, officeRepo, hasher, cache, log)
	officeCommands := command.NewOfficeCommandService(officeRepo, userRepo, cache, log)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userQueries, userCommands, hasher, tokens, log))
	userHandler := handler.NewUserHandler(service.NewUserService(userQueries, userCommands))
	officeHandler := handler.NewOfficeHandler(service.NewOfficeService(officeQueries, officeCommands))

	requireAuth := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- User routes ---
	users := e.Group("/user", requireAuth)
	users.GET("", userHandler.GetAll)
	users.GET("/:id", userHandler.GetByID)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	// --- Office routes ---
	offices := e.Group("/office", requireAuth)
	offices.GET("", officeHandler.GetAll)
	offices.GET("/:id", officeHandler.GetByID)
	offices.POST("", officeHandler.Create)
	offices.PUT("/:id", officeHandler.Update)
	offices.DELETE("/:id", officeHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
