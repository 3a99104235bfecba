package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// LabelRoutes registers the label purchase route.
type LabelRoutes struct {
	handler *LabelHandler
}

// NewLabelRoutes creates a new LabelRoutes instance.
func NewLabelRoutes(handler *LabelHandler) *LabelRoutes {
	return &LabelRoutes{handler: handler}
}

// RegisterRoutes registers POST /label on rg.
func (r *LabelRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/label", r.handler.CreateLabel)
}

// LogsRoutes registers the log search route.
type LogsRoutes struct {
	handler *LogsHandler
}

// NewLogsRoutes creates a new LogsRoutes instance.
func NewLogsRoutes(handler *LogsHandler) *LogsRoutes {
	return &LogsRoutes{handler: handler}
}

// RegisterRoutes registers GET /logs on rg.
func (r *LogsRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/logs", r.handler.ListLogs)
}

var (
	_ RouteGroup = (*LabelRoutes)(nil)
	_ RouteGroup = (*LogsRoutes)(nil)
)
