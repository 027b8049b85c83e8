package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bugtrack/bugtrack-api/docs"
	"github.com/bugtrack/bugtrack-api/internal/api/handler"
	"github.com/bugtrack/bugtrack-api/internal/api/middleware"
	"github.com/bugtrack/bugtrack-api/internal/auth"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
	"github.com/bugtrack/bugtrack-api/internal/core/service"
	mongodb "github.com/bugtrack/bugtrack-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bugtrack/bugtrack-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is injected because its worker lifecycle is owned by main.
func NewRouter(db *mongo.Database, rdb *goredis.Client, hasher *auth.PasswordHasher, tokens *auth.TokenService, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bugtrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bugRepo := mongodb.NewBugRepository(db)
	devRepo := mongodb.NewDeveloperRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, 0)

	authService := service.NewAuthService(userRepo, hasher, throttle, audit, log)
	bugService := service.NewBugService(bugRepo, devRepo, audit, log)
	devService := service.NewDeveloperService(devRepo, audit, log)
	projectService := service.NewProjectService(projectRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService, tokens)
	bugHandler := handler.NewBugHandler(bugService)
	devHandler := handler.NewDeveloperHandler(devService)
	projectHandler := handler.NewProjectHandler(projectService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC("admin")

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register, middleware.OptionalAuth(tokens))
	e.GET("/me", authHandler.Me, authRequired)

	// --- Bug routes: reads open, mutations gated ---
	v1 := e.Group("/v1")
	v1.GET("/bugs", bugHandler.List)
	v1.GET("/bugs/:id", bugHandler.Get)
	v1.POST("/bugs", bugHandler.Create, authRequired)
	v1.PATCH("/bugs/:id", bugHandler.Update, authRequired)
	v1.DELETE("/bugs/:id", bugHandler.Delete, authRequired, adminOnly)
	v1.POST("/bugs/:id/assign", bugHandler.Assign, authRequired)

	// --- Developer routes ---
	v1.GET("/developers", devHandler.List)
	v1.POST("/developers", devHandler.Create, authRequired)

	// --- Project routes ---
	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
