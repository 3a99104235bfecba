package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexString decodes a JSON string. Any other JSON value, including null,
// decodes to the empty string rather than failing the surrounding document.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(v)
	return nil
}

// FlexNumber decodes a JSON number or a string holding a decimal number.
// Anything that does not yield a finite number decodes to zero, which the
// parcel rules reject.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = 0

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = FlexNumber(f)
	return nil
}

// isObject reports whether data, a syntactically valid JSON value, is an
// object.
func isObject(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '{'
}

// UnmarshalJSON decodes an address object. Any other JSON value decodes to
// an empty address, which fails validation as incomplete.
func (a *AddressInput) UnmarshalJSON(data []byte) error {
	type fields AddressInput
	*a = AddressInput{}
	if !isObject(data) {
		return nil
	}
	return json.Unmarshal(data, (*fields)(a))
}

// UnmarshalJSON decodes a parcel object. Any other JSON value decodes to an
// empty parcel, which fails validation as incomplete.
func (p *ParcelInput) UnmarshalJSON(data []byte) error {
	type fields ParcelInput
	*p = ParcelInput{}
	if !isObject(data) {
		return nil
	}
	return json.Unmarshal(data, (*fields)(p))
}

// UnmarshalJSON decodes the request body. A body that is valid JSON but not
// an object decodes like {}.
func (r *CreateLabelRequest) UnmarshalJSON(data []byte) error {
	type fields CreateLabelRequest
	*r = CreateLabelRequest{}
	if !isObject(data) {
		return nil
	}
	return json.Unmarshal(data, (*fields)(r))
}
