// Package model defines the core domain entities for the label service.
//
// All entities are request-scoped: they are built from a validated request,
// handed to the shipping provider and discarded once the response is written.
package model

import "encoding/json"

// Address is a validated postal address.
//
// @Description Postal address of the sender or the recipient
type Address struct {
	Name    string `json:"name" example:"John Sender"`
	Company string `json:"company,omitempty" example:"Acme Corp"`
	Street1 string `json:"street1" example:"388 Townsend St"`
	Street2 string `json:"street2,omitempty" example:"Apt 20"`
	City    string `json:"city" example:"San Francisco"`
	State   string `json:"state" example:"CA"`
	Zip     string `json:"zip" example:"94107"`
	Phone   string `json:"phone,omitempty" example:"4155551234"`
}

// Parcel holds validated parcel dimensions. Weight is in ounces, the
// remaining fields in inches; every value is strictly positive.
//
// @Description Parcel weight (oz) and dimensions (in)
type Parcel struct {
	Weight float64 `json:"weight" example:"24"`
	Length float64 `json:"length" example:"12"`
	Width  float64 `json:"width" example:"9"`
	Height float64 `json:"height" example:"6"`
}

// Shipment is what the label service asks the provider to quote and buy.
type Shipment struct {
	From   Address
	To     Address
	Parcel Parcel
}

// LabelResult is the normalized outcome of a successful label purchase.
//
// Rate is the provider's selected-rate object, passed through untouched, and
// is omitted when the provider returned none.
//
// @Description Purchased label with tracking code and label assets
type LabelResult struct {
	TrackingCode string          `json:"trackingCode" example:"9400110000000000000000"`
	LabelURL     string          `json:"labelUrl,omitempty" example:"https://example.com/label.png"`
	LabelBase64  string          `json:"labelBase64,omitempty"`
	Rate         json.RawMessage `json:"rate,omitempty" swaggertype:"object"`
} // @name LabelResult
