package dto

// Form defaults and the "prefill sample data" values shown on the label form.
var (
	// DefaultParcel is the parcel shown when the form first loads.
	DefaultParcel = ParcelInput{Weight: 16, Length: 10, Width: 8, Height: 4}

	// SampleFromAddress is the sample sender address.
	SampleFromAddress = AddressInput{
		Name:    "John Sender",
		Company: "Acme Corp",
		Street1: "388 Townsend St",
		Street2: "Apt 20",
		City:    "San Francisco",
		State:   "CA",
		Zip:     "94107",
		Phone:   "4155551234",
	}

	// SampleToAddress is the sample recipient address.
	SampleToAddress = AddressInput{
		Name:    "Jane Receiver",
		Company: "Receiver LLC",
		Street1: "30 Rockefeller Plz",
		Street2: "Suite 45",
		City:    "New York",
		State:   "NY",
		Zip:     "10112",
		Phone:   "2125559876",
	}

	// SampleParcel is the sample parcel.
	SampleParcel = ParcelInput{Weight: 24, Length: 12, Width: 9, Height: 6}
)

// SampleRequest returns a complete request built from the sample data.
func SampleRequest() CreateLabelRequest {
	from, to, parcel := SampleFromAddress, SampleToAddress, SampleParcel
	return CreateLabelRequest{
		FromAddress: &from,
		ToAddress:   &to,
		Parcel:      &parcel,
	}
}
