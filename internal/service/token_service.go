package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenIssuer is the iss claim set on every issued token.
	TokenIssuer = "label-service"
	// DefaultTokenTTL is used when GenerateToken is called with a non-positive TTL.
	DefaultTokenTTL = 24 * time.Hour
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or badly signed.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingSecret is returned when the service has no signing secret.
	ErrMissingSecret = errors.New("jwt secret key is not configured")
)

// Claims are the claims carried by service tokens.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 bearer tokens. Tokens are not
// stored anywhere; validity is the signature plus the registered claims.
type TokenService interface {
	// GenerateToken signs a token for subject that expires after ttl.
	GenerateToken(subject string, ttl time.Duration) (string, error)
	// ValidateToken parses tokenString and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey []byte
	now       func() time.Time
}

// NewTokenService creates a token service signing with secretKey.
func NewTokenService(secretKey string) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

// GenerateToken signs a token for subject that expires after ttl.
func (s *TokenServiceImpl) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrMissingSecret
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("token subject is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := s.now()
	claims := &Claims{
		Scope: "label:create",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and returns its claims.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
