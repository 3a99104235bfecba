package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/guttosm/label-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	LoggingService service.LoggingService
	// APIKeys and Tokens enable authentication on /api when set.
	APIKeys middleware.APIKeyVerifier
	Tokens  middleware.TokenValidator
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// authEnabled reports whether any authentication mechanism is configured.
func (cfg *RouterConfig) authEnabled() bool {
	return (cfg.APIKeys != nil && cfg.APIKeys.Enabled()) || cfg.Tokens != nil
}

// NewRouter creates and configures the Gin router for the label service.
// It returns the engine and a function releasing background resources.
func NewRouter(labelHandler *LabelHandler, healthHandler *HealthHandler, cfg RouterConfig) (*gin.Engine, func()) {
	router := gin.New()
	router.SetHTMLTemplate(FormTemplates())

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)
	NewFormHandler(cfg.authEnabled()).Register(router)

	api := router.Group("/api")
	stop := configureAPIMiddleware(api, &cfg)

	if labelHandler != nil {
		NewLabelRoutes(labelHandler).RegisterRoutes(api)
	}
	// Stored logs include caller IPs, so they are never served unauthenticated.
	if cfg.LoggingService != nil && cfg.authEnabled() {
		NewLogsRoutes(NewLogsHandler(cfg.LoggingService)).RegisterRoutes(api)
	}

	return router, stop
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.LoggingService),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up authentication and rate limiting for /api.
// Limits apply per authenticated caller, or per IP when auth is off.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) func() {
	if cfg.authEnabled() {
		api.Use(middleware.Authenticate(cfg.APIKeys, cfg.Tokens))
	}

	if cfg.RateLimit <= 0 {
		return func() {}
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	api.Use(limiter.SubjectRateLimit())
	return limiter.Stop
}
