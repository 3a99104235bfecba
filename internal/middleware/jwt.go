package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
)

const (
	// AuthorizationHeader carries "Bearer <token>".
	AuthorizationHeader = "Authorization"
	// ClaimsKey holds the validated *service.Claims.
	ClaimsKey = "auth_claims"

	bearerPrefix = "Bearer "
)

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// authenticateBearer validates the "Bearer <token>" header and records the
// caller. It aborts the request and returns false on failure.
func authenticateBearer(c *gin.Context, tokens TokenValidator) bool {
	authHeader := c.GetHeader(AuthorizationHeader)

	// Extract token from "Bearer <token>"
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
		return false
	}

	tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if tokenString == "" {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyCredentialsRequired)
		return false
	}

	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
		return false
	}

	c.Set(AuthSubjectKey, "jwt:"+claims.Subject)
	c.Set(AuthMethodKey, "jwt")
	c.Set(ClaimsKey, claims)
	return true
}
