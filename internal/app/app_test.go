//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/guttosm/label-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*config.Config)
		expectedStatus int
	}{
		{
			name:           "label endpoint open without auth",
			expectedStatus: http.StatusInternalServerError, // credential unset in tests
		},
		{
			name: "label endpoint protected with API keys",
			mutate: func(cfg *config.Config) {
				cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "database enabled but unreachable",
			mutate: func(cfg *config.Config) {
				cfg.Database = config.DatabaseConfig{Enabled: true, URI: "not-a-mongodb-uri", DatabaseName: "test"}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EASYPOST_API_KEY", "")
			cfg := testConfig("")
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			router, cleanup, err := InitializeApp(cfg)
			require.NoError(t, err)
			defer cleanup()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			req := httptest.NewRequest(http.MethodPost, "/api/label", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w = httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestInitializeApp_RejectsAuthWithoutMechanism(t *testing.T) {
	cfg := testConfig("")
	cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{}}

	router, cleanup, err := InitializeApp(cfg)

	assert.ErrorIs(t, err, ErrNoAuthMechanism)
	assert.Nil(t, router)
	assert.Nil(t, cleanup)
}

func TestInitializeApp_LogsNeedStore(t *testing.T) {
	cfg := testConfig("")
	cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"ops-key": true}}
	cfg.Database = config.DatabaseConfig{Enabled: true, URI: "not-a-mongodb-uri", DatabaseName: "test"}

	router, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Without a reachable store the logs route is not registered.
	assert.Equal(t, http.StatusNotFound, w.Code)
}
