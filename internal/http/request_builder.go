package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/middleware"
)

// MaxRequestBodyBytes bounds JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// errorResponsePool reduces allocations on the error path.
var errorResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.ErrorResponse{}
	},
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// RequestBuilder binds request bodies.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind decodes the JSON body into v. Bodies over MaxRequestBodyBytes fail.
func (b *RequestBuilder) Bind(v interface{}) error {
	if b.c.Request.Body != nil {
		b.c.Request.Body = http.MaxBytesReader(b.c.Writer, b.c.Request.Body, MaxRequestBodyBytes)
	}
	return b.c.ShouldBindJSON(v)
}

// ResponseBuilder writes JSON success and error responses.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// JSON sends data as-is with the given status code.
func (b *ResponseBuilder) JSON(statusCode int, data interface{}) {
	b.c.JSON(statusCode, data)
}

// Error sends an error response whose message is messageKey translated for
// the request locale. err, when non-nil, is recorded for the error handler.
func (b *ResponseBuilder) Error(statusCode int, code, messageKey string, err error) {
	b.ErrorWithMessage(statusCode, code, i18n.Translate(b.c, messageKey), err)
}

// ErrorWithMessage sends an error response with a message used verbatim.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, code, message string, err error) {
	resp := getErrorResponse()
	defer putErrorResponse(resp)

	resp.Error = message
	resp.Code = code
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	// Gin serializes synchronously, so the pooled value can be reused afterwards.
	b.c.AbortWithStatusJSON(statusCode, resp)
}
