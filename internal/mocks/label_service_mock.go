// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) CheckCredential() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockLabelService) PurchaseLabel(ctx context.Context, shipment model.Shipment) (*model.LabelResult, error) {
	args := m.Called(ctx, shipment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LabelResult), args.Error(1)
}
