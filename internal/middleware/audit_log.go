package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/service"
)

// ActionLabelPurchase is the audit action recorded for every label attempt.
const ActionLabelPurchase = "label.purchase"

// AuditLog stores an audit entry for a business action such as a label purchase.
// fields must not contain addresses, tracking codes or label data.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	persistLog(loggingService, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError stores an audit entry for a failed business action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	persistLog(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetAuthSubject(c),
		ActionType: actionType,
		Fields:     fields,
	}
}
