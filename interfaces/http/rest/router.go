package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	_ "fartgen-backend/docs" // registers the OpenAPI document
	"fartgen-backend/infrastructure/config"
	"fartgen-backend/interfaces/http/rest/handlers"
	"fartgen-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg    *config.Settings
	logger *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Settings, logger *zap.Logger) *Router {
	return &Router{
		cfg:    cfg,
		logger: logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	// SecurityHeaders must wrap RateLimit: headers are written before
	// delegation, so they cover 429 rejections the limiter short-circuits.
	router.Use(middleware.SecurityHeaders(rt.cfg))
	router.Use(middleware.RateLimit(rt.cfg.RateLimitPerMinute, rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	metaHandler := handlers.NewMetaHandler(rt.cfg, rt.logger)
	router.Get("/", metaHandler.Root)
	router.Get("/health", metaHandler.Health)
	router.Get("/api/v1", metaHandler.APIInfo)

	// Documentation routes
	docsHandler := handlers.NewDocsHandler(rt.logger)
	router.Get("/api/docs", docsHandler.SwaggerUI)
	router.Get("/api/redoc", docsHandler.ReDoc)
	router.Get("/api/openapi.json", docsHandler.OpenAPI)

	return router
}
