package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
)

// MockSaleRepo is a mock implementation of port.SaleRepository.
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepo) List(ctx context.Context, q domain.ReportQuery) ([]domain.SaleRecord, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SaleRecord), args.Int(1), args.Error(2)
}

func (m *MockSaleRepo) ListAll(ctx context.Context, q domain.ReportQuery) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}
