package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		errCode   string
		message   string
		requestID string
		validate  func(*testing.T, ErrorResponse)
	}{
		{
			name:      "error response with request ID",
			errCode:   ErrCodeExternalAPI,
			message:   "No rates found.",
			requestID: "test-id",
			validate: func(t *testing.T, err ErrorResponse) {
				assert.Equal(t, "test-id", err.RequestID)
				assert.Equal(t, ErrCodeExternalAPI, err.Code)
				assert.Equal(t, "No rates found.", err.Error)
			},
		},
		{
			name:      "empty request ID is kept empty",
			errCode:   ErrCodeInternal,
			message:   "Unable to create label",
			requestID: "",
			validate: func(t *testing.T, err ErrorResponse) {
				assert.Empty(t, err.RequestID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.errCode, tt.message)
			err = err.WithRequestID(tt.requestID)
			if tt.validate != nil {
				tt.validate(t, err)
			}
		})
	}
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
		{http.StatusServiceUnavailable, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeIncompleteParcel, "Parcel requires weight, length, width, height")

	assert.Equal(t, ErrCodeIncompleteParcel, err.Code)
	assert.Equal(t, "Parcel requires weight, length, width, height", err.Error)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestErrorResponse_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewError(ErrCodeConfiguration, "EASYPOST_API_KEY is missing"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "EASYPOST_API_KEY is missing", decoded["error"])
	assert.Equal(t, ErrCodeConfiguration, decoded["code"])
	assert.NotContains(t, decoded, "request_id")
}
