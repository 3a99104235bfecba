// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/EasyPost/easypost-go/v4"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/shipping"
	"github.com/stretchr/testify/mock"
)

type MockShippingClient struct {
	mock.Mock
}

func (m *MockShippingClient) CreateShipment(ctx context.Context, apiKey string, shipment model.Shipment, opts shipping.Options) (*easypost.Shipment, error) {
	args := m.Called(ctx, apiKey, shipment, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*easypost.Shipment), args.Error(1)
}

func (m *MockShippingClient) LowestRate(shipment *easypost.Shipment, carriers []string) (easypost.Rate, error) {
	args := m.Called(shipment, carriers)
	return args.Get(0).(easypost.Rate), args.Error(1)
}

func (m *MockShippingClient) BuyShipment(ctx context.Context, apiKey, shipmentID string, rate *easypost.Rate) (*shipping.Purchase, error) {
	args := m.Called(ctx, apiKey, shipmentID, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Purchase), args.Error(1)
}

// NewAPIError builds the SDK error the shipping API returns for a rejected
// request.
func NewAPIError(status int, code, message string) *easypost.APIError {
	e := &easypost.APIError{StatusCode: status, Code: code}
	e.Message = message
	return e
}
