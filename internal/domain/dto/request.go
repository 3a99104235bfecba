// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/label-service/internal/domain/model"
)

// AddressInput is an address as submitted by the form.
//
// Required fields use FlexString so that a non-string JSON value is treated
// as missing instead of failing the whole body.
//
// @Description Address as entered in the form
type AddressInput struct {
	Name    FlexString `json:"name" validate:"required" example:"John Sender"`
	Company FlexString `json:"company" example:"Acme Corp"`
	Street1 FlexString `json:"street1" validate:"required" example:"388 Townsend St"`
	Street2 FlexString `json:"street2" example:"Apt 20"`
	City    FlexString `json:"city" validate:"required" example:"San Francisco"`
	State   FlexString `json:"state" validate:"required" example:"CA"`
	Zip     FlexString `json:"zip" validate:"required" example:"94107"`
	Phone   FlexString `json:"phone" example:"4155551234"`
} // @name AddressInput

// ParcelInput is a parcel as submitted by the form. Each dimension may be a
// JSON number or a numeric string and must be strictly positive.
//
// @Description Parcel weight (oz) and dimensions (in)
type ParcelInput struct {
	Weight FlexNumber `json:"weight" validate:"gt=0" swaggertype:"number" example:"24"`
	Length FlexNumber `json:"length" validate:"gt=0" swaggertype:"number" example:"12"`
	Width  FlexNumber `json:"width" validate:"gt=0" swaggertype:"number" example:"9"`
	Height FlexNumber `json:"height" validate:"gt=0" swaggertype:"number" example:"6"`
} // @name ParcelInput

// CreateLabelRequest represents the JSON request body for the label endpoint.
//
// @Description Request to purchase a USPS label for one parcel
type CreateLabelRequest struct {
	FromAddress *AddressInput `json:"fromAddress"`
	ToAddress   *AddressInput `json:"toAddress"`
	Parcel      *ParcelInput  `json:"parcel"`
} // @name CreateLabelRequest

// ValidationError represents a request validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrIncompleteAddress is returned when either address lacks a required field.
	// Both addresses share one error; the caller is not told which one failed.
	ErrIncompleteAddress = &ValidationError{
		Field:   "fromAddress,toAddress",
		Message: "require name, street1, city, state, zip",
	}
	// ErrIncompleteParcel is returned when a parcel dimension is absent or not positive.
	ErrIncompleteParcel = &ValidationError{
		Field:   "parcel",
		Message: "requires weight, length, width, height",
	}
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks both addresses first, then the parcel.
// Returns ErrIncompleteAddress or ErrIncompleteParcel, nil otherwise.
func (r *CreateLabelRequest) Validate() error {
	if !r.FromAddress.complete() || !r.ToAddress.complete() {
		return ErrIncompleteAddress
	}
	if !r.Parcel.complete() {
		return ErrIncompleteParcel
	}
	return nil
}

func (a *AddressInput) complete() bool {
	return a != nil && structValidator().Struct(a) == nil
}

func (p *ParcelInput) complete() bool {
	return p != nil && structValidator().Struct(p) == nil
}

// Shipment converts a validated request into the domain shipment.
// Call Validate first; Shipment panics on a nil address or parcel.
func (r *CreateLabelRequest) Shipment() model.Shipment {
	return model.Shipment{
		From:   r.FromAddress.toModel(),
		To:     r.ToAddress.toModel(),
		Parcel: r.Parcel.toModel(),
	}
}

func (a *AddressInput) toModel() model.Address {
	return model.Address{
		Name:    string(a.Name),
		Company: string(a.Company),
		Street1: string(a.Street1),
		Street2: string(a.Street2),
		City:    string(a.City),
		State:   string(a.State),
		Zip:     string(a.Zip),
		Phone:   string(a.Phone),
	}
}

func (p *ParcelInput) toModel() model.Parcel {
	return model.Parcel{
		Weight: float64(p.Weight),
		Length: float64(p.Length),
		Width:  float64(p.Width),
		Height: float64(p.Height),
	}
}
