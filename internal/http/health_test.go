package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readinessBody struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

func serveReadiness(t *testing.T, handler *HealthHandler) (int, readinessBody) {
	t.Helper()
	router := gin.New()
	handler.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var body readinessBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func openBreaker(t *testing.T, name string) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
	})
	_ = cb.Execute(context.Background(), func() error { return errors.New("upstream down") })
	require.True(t, cb.IsOpen())
	return cb
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setupHandler   func(t *testing.T) *HealthHandler
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name: "no checkers",
			setupHandler: func(t *testing.T) *HealthHandler {
				return NewHealthHandler()
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy circuit breaker",
			setupHandler: func(t *testing.T) *HealthHandler {
				handler := NewHealthHandler()
				handler.RegisterCircuitBreaker("easypost", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return handler
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"easypost_circuit": "closed"},
		},
		{
			name: "open circuit breaker",
			setupHandler: func(t *testing.T) *HealthHandler {
				handler := NewHealthHandler()
				handler.RegisterCircuitBreaker("easypost", openBreaker(t, "easypost"))
				return handler
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"easypost_circuit": "open"},
		},
		{
			name: "healthy checker",
			setupHandler: func(t *testing.T) *HealthHandler {
				handler := NewHealthHandler()
				handler.RegisterChecker("mongodb", HealthCheckFunc(func(ctx context.Context) error {
					return nil
				}))
				return handler
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"mongodb": "ok"},
		},
		{
			name: "failing checker",
			setupHandler: func(t *testing.T) *HealthHandler {
				handler := NewHealthHandler()
				handler.RegisterChecker("mongodb", HealthCheckFunc(func(ctx context.Context) error {
					return errors.New("server selection timeout")
				}))
				handler.RegisterCircuitBreaker("easypost", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return handler
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{
				"mongodb":          "server selection timeout",
				"easypost_circuit": "closed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveReadiness(t, tt.setupHandler(t))

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_CheckerGetsDeadline(t *testing.T) {
	handler := NewHealthHandler()
	var hasDeadline bool
	handler.RegisterChecker("mongodb", HealthCheckFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}))

	status, _ := serveReadiness(t, handler)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, hasDeadline)
}
