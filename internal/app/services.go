// Package app provides service initialization.
package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/service"
	"github.com/guttosm/label-service/internal/shipping"
	"github.com/rs/zerolog/log"
)

// ErrNoAuthMechanism is returned when authentication is enabled without any
// API key or JWT secret to check requests against.
var ErrNoAuthMechanism = errors.New("AUTH_ENABLED is set but neither API_KEYS nor JWT_SECRET_KEY is configured")

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Labels                 service.LabelService
	EasyPostCircuitBreaker *circuitbreaker.CircuitBreaker
	// APIKeys is nil unless authentication is enabled with at least one key.
	APIKeys *service.APIKeyVerifier
	// Tokens is nil unless authentication is enabled with a JWT secret.
	Tokens service.TokenService
}

// InitializeServices initializes the label service and the authentication services.
// lookup reads the shipping API credential; nil uses the process environment.
func InitializeServices(cfg config.Config, lookup service.LookupFunc) (*ServiceComponents, error) {
	client, err := shipping.New(cfg.EasyPost.BaseURL, &http.Client{Timeout: cfg.EasyPost.Timeout})
	if err != nil {
		return nil, fmt.Errorf("shipping client: %w", err)
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "easypost",
		FailureThreshold: cfg.EasyPost.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.EasyPost.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.EasyPost.CircuitBreakerTimeout,
		IsFailure:        shipping.IsServerFault,
		OnStateChange:    recordBreakerState,
	})

	labels := service.NewLabelService(
		shipping.NewClientWithCircuitBreaker(client, cb),
		service.LabelServiceConfig{
			CredentialEnv: cfg.EasyPost.APIKeyEnv,
			Carriers:      []string{cfg.EasyPost.Carrier},
			Options: shipping.Options{
				LabelFormat: cfg.EasyPost.LabelFormat,
				LabelSize:   cfg.EasyPost.LabelSize,
			},
		},
		lookup,
	)

	components := &ServiceComponents{
		Labels:                 labels,
		EasyPostCircuitBreaker: cb,
	}

	if err := labels.CheckCredential(); err != nil {
		log.Warn().Err(err).Msg("Shipping API credential not set - label requests will fail until it is")
	}

	if !cfg.Auth.Enabled {
		return components, nil
	}
	if len(cfg.Auth.APIKeys) == 0 && cfg.Auth.JWTSecretKey == "" {
		return nil, ErrNoAuthMechanism
	}

	if len(cfg.Auth.APIKeys) > 0 {
		components.APIKeys = service.NewAPIKeyVerifier(cfg.Auth.APIKeys, 0, 0)
	}
	if cfg.Auth.JWTSecretKey != "" {
		components.Tokens = service.NewTokenService(cfg.Auth.JWTSecretKey)
	}

	return components, nil
}

// Close releases background resources held by the services.
func (s *ServiceComponents) Close() {
	if s.APIKeys != nil {
		s.APIKeys.Stop()
	}
}

func recordBreakerState(name string, _, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
}
