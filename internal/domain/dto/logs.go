package dto

import (
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
)

// Log query page sizes.
const (
	DefaultLogLimit = 50
	MaxLogLimit     = 200
)

// LogQuery is the query string of the log search endpoint. Times are RFC 3339.
type LogQuery struct {
	RequestID string     `form:"request_id" binding:"omitempty,max=128"`
	Level     string     `form:"level" binding:"omitempty,oneof=info warn error"`
	Action    string     `form:"action" binding:"omitempty,max=64"`
	Since     *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until     *time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=200"`
	Skip      int        `form:"skip" binding:"omitempty,min=0"`
}

// Options converts the query into store options, applying the default page
// size.
func (q LogQuery) Options() model.LogQueryOptions {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return model.LogQueryOptions{
		RequestID:  q.RequestID,
		Level:      q.Level,
		ActionType: q.Action,
		StartTime:  q.Since,
		EndTime:    q.Until,
		Limit:      limit,
		Skip:       q.Skip,
	}
}

// LogsResponse is one page of stored log entries, newest first.
//
// @Description Page of stored request and audit log entries
type LogsResponse struct {
	Total   int64            `json:"total" example:"2"`
	Entries []model.LogEntry `json:"entries"`
} // @name LogsResponse
