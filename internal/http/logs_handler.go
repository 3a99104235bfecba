package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
	"github.com/rs/zerolog/log"
)

// LogsHandler serves the stored request and audit log.
type LogsHandler struct {
	logs service.LoggingService
}

// NewLogsHandler creates a new LogsHandler.
func NewLogsHandler(logs service.LoggingService) *LogsHandler {
	return &LogsHandler{logs: logs}
}

// ListLogs handles GET /api/logs requests.
//
// @Summary      Search stored logs
// @Description  Returns stored request and audit entries, newest first, with the total number of matches. Entries never contain addresses or label data.
// @Tags         Logs
// @Produce      json
// @Param        request_id query string false "Request ID"
// @Param        level query string false "Log level" Enums(info, warn, error)
// @Param        action query string false "Audit action, e.g. label.purchase"
// @Param        since query string false "Earliest timestamp (RFC 3339)"
// @Param        until query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size (1-200, default 50)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.LogsResponse
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Log store unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *LogsHandler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidLogQuery, err)
		return
	}
	if query.Since != nil && query.Until != nil && query.Until.Before(*query.Since) {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidLogQuery, nil)
		return
	}

	ctx := c.Request.Context()
	opts := query.Options()

	entries, err := h.logs.QueryLogs(ctx, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to query logs")
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.logs.CountLogs(ctx, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to count logs")
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.JSON(http.StatusOK, dto.LogsResponse{Total: total, Entries: entries})
}
