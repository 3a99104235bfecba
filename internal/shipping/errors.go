package shipping

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/EasyPost/easypost-go/v4"
)

var apiErrorType = reflect.TypeOf(easypost.APIError{})

// AsAPIError finds the SDK's *APIError in err's chain. The SDK's
// status-specific error types embed APIError by value, so those match too.
func AsAPIError(err error) (*easypost.APIError, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if apiErr, ok := e.(*easypost.APIError); ok {
			return apiErr, true
		}

		v := reflect.ValueOf(e)
		if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
			continue
		}
		field := v.Elem().FieldByName("APIError")
		if field.IsValid() && field.Type() == apiErrorType {
			return field.Addr().Interface().(*easypost.APIError), true
		}
	}
	return nil, false
}

// Message returns the provider's own message for err, without the status or
// code prefix the SDK adds. It is empty when the provider sent none.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok {
		return strings.TrimSpace(apiErr.Message)
	}
	return strings.TrimSpace(err.Error())
}

// IsServerFault reports whether err means the shipping API is unhealthy, as
// opposed to rejecting this particular request. Rejections (4xx other than
// 429) are not faults; transport errors are.
func IsServerFault(err error) bool {
	if err == nil {
		return false
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		return true
	}
	return apiErr.StatusCode == 0 ||
		apiErr.StatusCode == http.StatusTooManyRequests ||
		apiErr.StatusCode >= 500
}
