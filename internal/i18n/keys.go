package i18n

// Error message translation keys.
const (
	// ErrKeyMalformedRequest indicates a body that is not valid JSON.
	ErrKeyMalformedRequest = "error.malformed_request"
	// ErrKeyIncompleteAddress indicates a missing required address field.
	ErrKeyIncompleteAddress = "error.incomplete_address"
	// ErrKeyIncompleteParcel indicates a missing or non-positive parcel dimension.
	ErrKeyIncompleteParcel = "error.incomplete_parcel"
	// ErrKeyLabelFailed is the generic label purchase failure.
	ErrKeyLabelFailed = "error.label_failed"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyCredentialsRequired indicates that neither an API key nor a token was sent.
	ErrKeyCredentialsRequired = "error.credentials_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyInvalidLogQuery indicates an unusable log query parameter.
	ErrKeyInvalidLogQuery = "error.invalid_log_query"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
)
