package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestRequestBuilder_Bind(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid request",
			body: sampleBody,
		},
		{
			name: "empty object",
			body: `{}`,
		},
		{
			name: "null",
			body: `null`,
		},
		{
			name: "non-string address fields are not a bind error",
			body: `{"fromAddress":{"name":42,"zip":true}}`,
		},
		{
			name:        "invalid JSON",
			body:        `{"fromAddress": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
		{
			name: "top-level array decodes as empty request",
			body: `[]`,
		},
		{
			name: "address that is a string decodes as empty address",
			body: `{"fromAddress":"388 Townsend St"}`,
		},
		{
			name:        "truncated array",
			body:        `[1,`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			var req dto.CreateLabelRequest
			err := NewRequestBuilder(c).Bind(&req)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestBuilder_Bind_BodyTooLarge(t *testing.T) {
	body := `{"fromAddress":{"name":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}}`
	c, _ := newTestContext(http.MethodPost, body)

	var req dto.CreateLabelRequest
	err := NewRequestBuilder(c).Bind(&req)

	assert.Error(t, err)
}

func TestResponseBuilder_JSON(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")

	NewResponseBuilder(c).JSON(http.StatusOK, gin.H{"trackingCode": "T1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trackingCode":"T1"}`, w.Body.String())
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	c.Request.Header.Set("Accept-Language", "pt-BR")
	middleware.RequestID()(c)

	cause := errors.New("unexpected EOF")
	NewResponseBuilder(c).Error(http.StatusBadRequest, dto.ErrCodeMalformedRequest, i18n.ErrKeyMalformedRequest, cause)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.Equal(t, cause, c.Errors[0].Err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JSON inválido", resp.Error)
	assert.Equal(t, dto.ErrCodeMalformedRequest, resp.Code)
	assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	c.Request.Header.Set("Accept-Language", "nl")

	NewResponseBuilder(c).ErrorWithMessage(http.StatusInternalServerError, dto.ErrCodeExternalAPI, "Insufficient funds", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, c.Errors)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Insufficient funds", resp.Error)
	assert.Equal(t, dto.ErrCodeExternalAPI, resp.Code)
}

func TestErrorResponsePool_ResetsValues(t *testing.T) {
	resp := getErrorResponse()
	resp.Error = "boom"
	resp.Code = dto.ErrCodeInternal
	putErrorResponse(resp)

	assert.Equal(t, dto.ErrorResponse{}, *resp)
}
