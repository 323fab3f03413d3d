package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
	"salesdesk/internal/service"
)

// MockSaleService is a mock implementation of service.SaleService.
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Create(ctx context.Context, in service.CreateSaleInput) (*domain.SaleRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleService) List(ctx context.Context, raw service.RawReportParams) ([]domain.SaleRecord, int, int, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Int(2), args.Error(3)
	}
	return args.Get(0).([]domain.SaleRecord), args.Int(1), args.Int(2), args.Error(3)
}
