package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
	"salesdesk/internal/service"
	"salesdesk/mocks"
)

func newReportService(saleRepo *mocks.MockSaleRepo, itemRepo *mocks.MockItemRepo, customerRepo *mocks.MockCustomerRepo, sender *mocks.MockEmailSender) service.ReportService {
	return service.NewReportService(saleRepo, itemRepo, customerRepo, sender)
}

func TestReportService_SalesReport_DefaultsAndSummary(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	svc := newReportService(saleRepo, new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	widget := uuid.New()
	records := []domain.SaleRecord{{
		Sale:      domain.Sale{ID: uuid.New(), ItemID: widget, Quantity: 2, PaymentType: domain.PaymentCash, Date: time.Now().UTC()},
		ItemName:  "Widget",
		UnitPrice: 10,
	}}

	saleRepo.On("List", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.Page == 1 && q.Limit == 10 && q.SortField == "created_at" && q.SortDesc
	})).Return(records, 25, nil)
	saleRepo.On("ListAll", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.Page == 0 && q.Limit == 0
	})).Return(records, nil)

	result, err := svc.SalesReport(context.Background(), service.RawReportParams{})

	require.NoError(t, err)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 20.0, result.Summary.TotalRevenue)
	saleRepo.AssertExpectations(t)
}

func TestReportService_SalesReport_SortDescendingPrefix(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	svc := newReportService(saleRepo, new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	saleRepo.On("List", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.SortField == "date" && q.SortDesc
	})).Return([]domain.SaleRecord{}, 0, nil)
	saleRepo.On("ListAll", mock.Anything, mock.Anything).Return([]domain.SaleRecord{}, nil)

	result, err := svc.SalesReport(context.Background(), service.RawReportParams{Sort: "-date"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalPages)
}

func TestReportService_SalesReport_RejectsUnknownSortField(t *testing.T) {
	svc := newReportService(new(mocks.MockSaleRepo), new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	_, err := svc.SalesReport(context.Background(), service.RawReportParams{Sort: "price"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_SalesReport_RejectsBadDate(t *testing.T) {
	svc := newReportService(new(mocks.MockSaleRepo), new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	_, err := svc.SalesReport(context.Background(), service.RawReportParams{StartDate: "10-03-2026"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseDateRange_EndOfDayInclusive(t *testing.T) {
	start, end, err := service.ParseDateRange("2026-03-01", "2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *start)
	// The end bound covers the whole final day.
	assert.True(t, end.After(time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestReportService_ItemsReport_SortWhitelist(t *testing.T) {
	itemRepo := new(mocks.MockItemRepo)
	saleRepo := new(mocks.MockSaleRepo)
	svc := newReportService(saleRepo, itemRepo, new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	itemRepo.On("List", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.SortField == "price" && !q.SortDesc
	})).Return([]domain.ItemRecord{}, 0, nil)
	itemRepo.On("ListAll", mock.Anything, mock.Anything).Return([]domain.ItemRecord{}, nil)
	saleRepo.On("ListAll", mock.Anything, mock.Anything).Return([]domain.SaleRecord{}, nil)

	_, err := svc.ItemsReport(context.Background(), service.RawReportParams{Sort: "price"})

	require.NoError(t, err)
	itemRepo.AssertExpectations(t)
}

func TestReportService_ItemsReport_DateIsNotSortableForItemsOnlyFields(t *testing.T) {
	svc := newReportService(new(mocks.MockSaleRepo), new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	_, err := svc.ItemsReport(context.Background(), service.RawReportParams{Sort: "date"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_CustomerLedger_UnknownCustomer(t *testing.T) {
	customerRepo := new(mocks.MockCustomerRepo)
	svc := newReportService(new(mocks.MockSaleRepo), new(mocks.MockItemRepo), customerRepo, new(mocks.MockEmailSender))

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.CustomerLedger(context.Background(), customerID, service.RawReportParams{})

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestReportService_CustomerLedger_ScopesQuery(t *testing.T) {
	customerRepo := new(mocks.MockCustomerRepo)
	saleRepo := new(mocks.MockSaleRepo)
	svc := newReportService(saleRepo, new(mocks.MockItemRepo), customerRepo, new(mocks.MockEmailSender))

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID, Name: "Acme"}, nil)

	scoped := func(q domain.ReportQuery) bool {
		return q.CustomerID != nil && *q.CustomerID == customerID
	}
	saleRepo.On("List", mock.Anything, mock.MatchedBy(scoped)).Return([]domain.SaleRecord{}, 0, nil)
	saleRepo.On("ListAll", mock.Anything, mock.MatchedBy(scoped)).Return([]domain.SaleRecord{}, nil)

	result, err := svc.CustomerLedger(context.Background(), customerID, service.RawReportParams{})

	require.NoError(t, err)
	assert.Empty(t, result.Summary.PaymentTypeBreakdown)
	saleRepo.AssertExpectations(t)
}

func TestReportService_Export_ValidatesKindAndFormat(t *testing.T) {
	svc := newReportService(new(mocks.MockSaleRepo), new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), new(mocks.MockEmailSender))

	_, err := svc.Export(context.Background(), domain.ExportRequest{Kind: "invoices", Format: domain.FormatExcel})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Export(context.Background(), domain.ExportRequest{Kind: domain.ReportSales, Format: "csv"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Export(context.Background(), domain.ExportRequest{Kind: domain.ReportLedger, Format: domain.FormatPDF})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Export(context.Background(), domain.ExportRequest{Kind: domain.ReportSales, Format: domain.FormatExcel, Email: "not-an-address"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_Export_DownloadPath(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	sender := new(mocks.MockEmailSender)
	svc := newReportService(saleRepo, new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), sender)

	saleRepo.On("ListAll", mock.Anything, mock.Anything).Return([]domain.SaleRecord{}, nil)

	result, err := svc.Export(context.Background(), domain.ExportRequest{
		Kind:   domain.ReportSales,
		Format: domain.FormatExcel,
	})

	require.NoError(t, err)
	assert.Equal(t, "sales-report.xlsx", result.FileName)
	assert.Equal(t, domain.ContentTypeXLSX, result.ContentType)
	assert.NotEmpty(t, result.Content)
	assert.False(t, result.Delivered)
	sender.AssertNotCalled(t, "SendReport", mock.Anything, mock.Anything)
}

func TestReportService_Export_EmailDelivery(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	sender := new(mocks.MockEmailSender)
	svc := newReportService(saleRepo, new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), sender)

	saleRepo.On("ListAll", mock.Anything, mock.Anything).Return([]domain.SaleRecord{}, nil)
	sender.On("SendReport", mock.Anything, mock.MatchedBy(func(msg port.ReportEmail) bool {
		return msg.To == "ops@example.com" && msg.FileName == "sales-report.pdf" && len(msg.Attachment) > 0
	})).Return(nil)

	result, err := svc.Export(context.Background(), domain.ExportRequest{
		Kind:   domain.ReportSales,
		Format: domain.FormatPDF,
		Email:  "ops@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.Delivered)
	sender.AssertExpectations(t)
}

func TestReportService_Export_DeliveryFailure(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	sender := new(mocks.MockEmailSender)
	svc := newReportService(saleRepo, new(mocks.MockItemRepo), new(mocks.MockCustomerRepo), sender)

	saleRepo.On("ListAll", mock.Anything, mock.Anything).Return([]domain.SaleRecord{}, nil)
	sender.On("SendReport", mock.Anything, mock.Anything).Return(errors.New("smtp timeout"))

	result, err := svc.Export(context.Background(), domain.ExportRequest{
		Kind:   domain.ReportSales,
		Format: domain.FormatExcel,
		Email:  "ops@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	// The rendered file is still returned even though delivery failed.
	require.NotNil(t, result)
	assert.False(t, result.Delivered)
	assert.NotEmpty(t, result.Content)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, domain.TotalPages(0, 10))
	assert.Equal(t, 1, domain.TotalPages(1, 10))
	assert.Equal(t, 1, domain.TotalPages(10, 10))
	assert.Equal(t, 2, domain.TotalPages(11, 10))
	assert.Equal(t, 5, domain.TotalPages(41, 10))
	assert.Equal(t, 0, domain.TotalPages(41, 0))
}
