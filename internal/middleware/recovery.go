package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic in a later handler into a 500 response.
//
// The panic value and stack go to the request logger. A panicking request
// never reaches RequestLogger's write, so when loggingService is set an error
// entry is stored here instead. If the handler had already started its
// response only the status is kept; nothing more is written.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			panicMsg := fmt.Sprint(rec)
			log.Ctx(c.Request.Context()).Error().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("panic", panicMsg).
				Bytes("stack", debug.Stack()).
				Msg("PANIC recovered")

			if loggingService != nil {
				persistLog(loggingService, &model.LogEntry{
					Timestamp:  time.Now(),
					Level:      "error",
					Message:    "Panic recovered",
					RequestID:  GetRequestID(c),
					Method:     c.Request.Method,
					Path:       c.Request.URL.Path,
					StatusCode: http.StatusInternalServerError,
					Duration:   time.Since(start).Milliseconds(),
					IP:         c.ClientIP(),
					UserAgent:  c.Request.UserAgent(),
					Error:      panicMsg,
					Subject:    GetAuthSubject(c),
				})
			}

			if c.Writer.Written() {
				c.Abort()
				return
			}
			abortWithError(c, http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError)
		}()
		c.Next()
	}
}
