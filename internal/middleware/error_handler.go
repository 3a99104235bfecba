package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Errors recorded with c.Error are logged; when the handler wrote nothing a
// translated internal error is returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := GetRequestID(c)

			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("error", err.Error()).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")

			if !c.Writer.Written() {
				abortWithError(c, http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError)
			}
		}
	}
}

// abortWithError aborts the chain with a translated ErrorResponse.
func abortWithError(c *gin.Context, status int, code, messageKey string) {
	errorResp := dto.NewError(code, i18n.Translate(c, messageKey)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, errorResp)
}
