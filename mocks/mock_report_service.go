package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
	"salesdesk/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SalesReport(ctx context.Context, raw service.RawReportParams) (*service.SalesReportResult, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SalesReportResult), args.Error(1)
}

func (m *MockReportService) ItemsReport(ctx context.Context, raw service.RawReportParams) (*service.ItemsReportResult, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemsReportResult), args.Error(1)
}

func (m *MockReportService) CustomerLedger(ctx context.Context, customerID uuid.UUID, raw service.RawReportParams) (*service.LedgerResult, error) {
	args := m.Called(ctx, customerID, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LedgerResult), args.Error(1)
}

func (m *MockReportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportResult), args.Error(1)
}
