package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"

	// AuthSubjectKey holds the authenticated caller, e.g. "api-key:1a2b3c4d5e6f".
	AuthSubjectKey = "auth_subject"
	// AuthMethodKey holds "api_key" or "jwt".
	AuthMethodKey = "auth_method"

	fingerprintLength = 12
)

// APIKeyVerifier checks presented API keys.
type APIKeyVerifier interface {
	Enabled() bool
	Verify(key string) bool
}

// Authenticate accepts either an API key or a bearer token. An API key wins
// when both are sent. With neither mechanism configured every request passes.
func Authenticate(keys APIKeyVerifier, tokens TokenValidator) gin.HandlerFunc {
	keysEnabled := keys != nil && keys.Enabled()

	return func(c *gin.Context) {
		if !keysEnabled && tokens == nil {
			c.Next()
			return
		}

		if key := apiKeyFromRequest(c); key != "" && keysEnabled {
			if authenticateAPIKey(c, keys, key) {
				c.Next()
			}
			return
		}

		if tokens != nil && c.GetHeader(AuthorizationHeader) != "" {
			if authenticateBearer(c, tokens) {
				c.Next()
			}
			return
		}

		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyCredentialsRequired)
	}
}

// GetAuthSubject returns the authenticated caller, or "" for anonymous requests.
func GetAuthSubject(c *gin.Context) string {
	return c.GetString(AuthSubjectKey)
}

func apiKeyFromRequest(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	return c.Query(APIKeyQuery)
}

func authenticateAPIKey(c *gin.Context, keys APIKeyVerifier, key string) bool {
	if !keys.Verify(key) {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidAPIKey)
		return false
	}

	c.Set(AuthSubjectKey, "api-key:"+service.KeyFingerprint(key)[:fingerprintLength])
	c.Set(AuthMethodKey, "api_key")
	return true
}
