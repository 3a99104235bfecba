// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/http"
	"github.com/guttosm/label-service/internal/logger"
)

// InitializeApp creates and wires all application dependencies.
// The returned function releases background workers and connections and
// must be called after the server has stopped. An error means the
// configuration cannot be served safely and nothing was started.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Initialize logger first (needed by other components)
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	serviceComponents, err := InitializeServices(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	// Optional: request and audit log storage in MongoDB
	dbComponents := InitializeDatabase(cfg.Database, cfg.Log)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	router, stopRouter := http.NewRouter(routerComponents.LabelHandler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		stopRouter()
		serviceComponents.Close()
		dbComponents.Close()
	}
	return router, cleanup, nil
}
