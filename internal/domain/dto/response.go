package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeMalformedRequest indicates a body that is not valid JSON.
	ErrCodeMalformedRequest = "malformed_request"
	// ErrCodeIncompleteAddress indicates a missing required address field.
	ErrCodeIncompleteAddress = "incomplete_address"
	// ErrCodeIncompleteParcel indicates a missing or non-positive parcel dimension.
	ErrCodeIncompleteParcel = "incomplete_parcel"
	// ErrCodeConfiguration indicates the shipping API credential is not configured.
	ErrCodeConfiguration = "configuration_error"
	// ErrCodeExternalAPI indicates the shipping API call failed.
	ErrCodeExternalAPI = "external_api_error"
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
)

// ErrorResponse is the error body returned by every endpoint.
//
// Error carries the human-readable message the form displays verbatim;
// Code is the stable machine-readable category.
//
// @Description Error response; the form shows `error` as-is
type ErrorResponse struct {
	Error     string    `json:"error" example:"Parcel requires weight, length, width, height"`
	Code      string    `json:"code,omitempty" example:"incomplete_parcel"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns a generic error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	default:
		return ErrCodeInternal
	}
}
