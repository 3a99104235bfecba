// Package app provides router configuration.
package app

import (
	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/http"
	"github.com/guttosm/label-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	LabelHandler  *http.LabelHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	labelHandler := http.NewLabelHandler(services.Labels, loggingService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if services.EasyPostCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("easypost", services.EasyPostCircuitBreaker)
	}
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
	}

	// Interface fields stay nil unless set, so an unconfigured mechanism is off.
	if services.APIKeys != nil {
		routerCfg.APIKeys = services.APIKeys
	}
	if services.Tokens != nil {
		routerCfg.Tokens = services.Tokens
	}

	return &RouterComponents{
		LabelHandler:  labelHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
