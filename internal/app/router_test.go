//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/mocks"
	"github.com/guttosm/label-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		services     *ServiceComponents
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name:     "without database or auth",
			services: &ServiceComponents{Labels: &mocks.MockLabelService{}},
			cfg: config.Config{
				Server: config.ServerConfig{RateLimit: 50, SwaggerUser: "docs", SwaggerPass: "pass"},
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.LabelHandler)
				assert.NotNil(t, c.HealthHandler)
				assert.Equal(t, 50, c.Config.RateLimit)
				assert.Equal(t, "docs", c.Config.SwaggerUser)
				assert.Nil(t, c.Config.LoggingService)
				// Untyped nil keeps the mechanisms disabled.
				assert.Nil(t, c.Config.APIKeys)
				assert.Nil(t, c.Config.Tokens)
			},
		},
		{
			name: "with auth services",
			services: &ServiceComponents{
				Labels:                 &mocks.MockLabelService{},
				EasyPostCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
				APIKeys:                service.NewAPIKeyVerifier(map[string]bool{"k": true}, 0, 0),
				Tokens:                 service.NewTokenService("secret"),
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.Config.APIKeys)
				assert.NotNil(t, c.Config.Tokens)
			},
		},
		{
			name:     "with logging service",
			services: &ServiceComponents{Labels: &mocks.MockLabelService{}},
			dbComponents: &DatabaseComponents{
				LoggingService:     &mocks.MockLoggingService{},
				LogsCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.Config.LoggingService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(tt.services, tt.dbComponents, tt.cfg)
			tt.validate(t, components)
			tt.services.Close()
		})
	}
}
