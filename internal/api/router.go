package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/api/handler"
	"github.com/learnhub/course-catalog/internal/api/middleware"
	"github.com/learnhub/course-catalog/internal/core/ports"
	"github.com/learnhub/course-catalog/internal/core/service"
)

// Deps carries everything the router needs. Repositories are interfaces so
// callers decide the backing store; DB and Redis are only used by the
// readiness probe and may be nil when probes are not wanted.
type Deps struct {
	Users       ports.UserRepository
	Courses     ports.CourseRepository
	Collections ports.CollectionRepository
	Cache       ports.CatalogCache
	Events      ports.EventSink
	DB          *sql.DB
	Redis       *redis.Client
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	tokens := service.NewTokenService(deps.JWTSecret)
	authService := service.NewAuthService(deps.Users, tokens, deps.Events, deps.Logger)
	courseService := service.NewCourseService(deps.Courses, deps.Cache, deps.Events, deps.Logger)
	collectionService := service.NewCollectionService(deps.Collections, deps.Cache, deps.Events, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	collectionHandler := handler.NewCollectionHandler(collectionService)
	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authRequired)

	// --- Course routes (reads public, mutations guarded) ---
	e.GET("/courses", courseHandler.List)
	e.GET("/courses/:id", courseHandler.Get)
	e.POST("/courses", courseHandler.Create, authRequired)
	e.PUT("/courses/:id", courseHandler.Update, authRequired)
	e.DELETE("/courses/:id", courseHandler.Delete, authRequired)

	// --- Collection routes ---
	e.GET("/collections", collectionHandler.List)
	e.GET("/collections/:id", collectionHandler.Get)
	e.POST("/collections", collectionHandler.Create, authRequired)
	e.PUT("/collections/:id", collectionHandler.Update, authRequired)
	e.DELETE("/collections/:id", collectionHandler.Delete, authRequired)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.DB != nil && deps.Redis != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(deps.DB, deps.Redis).Readiness)
	}

	return e
}
