package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

// CreateSaleInput carries the fields needed to record a sale.
type CreateSaleInput struct {
	ItemID      uuid.UUID          `json:"item_id" binding:"required"`
	CustomerID  *uuid.UUID         `json:"customer_id"`
	Quantity    int                `json:"quantity" binding:"required"`
	PaymentType domain.PaymentType `json:"payment_type" binding:"required"`
	Date        *time.Time         `json:"date"`
}

// SaleService records sales against the stock ledger and reads them back.
type SaleService interface {
	Create(ctx context.Context, in CreateSaleInput) (*domain.SaleRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleRecord, error)
	List(ctx context.Context, raw RawReportParams) ([]domain.SaleRecord, int, int, error)
}

type saleService struct {
	saleRepo     port.SaleRepository
	itemRepo     port.ItemRepository
	customerRepo port.CustomerRepository
}

// NewSaleService creates a new SaleService implementation.
func NewSaleService(saleRepo port.SaleRepository, itemRepo port.ItemRepository, customerRepo port.CustomerRepository) SaleService {
	return &saleService{saleRepo: saleRepo, itemRepo: itemRepo, customerRepo: customerRepo}
}

// Create validates the sale and commits it together with the stock
// decrement. The observed-stock check here gives the caller a precise
// error message; the transactional conditional update in the repository is
// what actually guarantees stock never goes negative under concurrency.
func (s *saleService) Create(ctx context.Context, in CreateSaleInput) (*domain.SaleRecord, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	if !domain.ValidPaymentTypes[in.PaymentType] {
		return nil, fmt.Errorf("%w: unknown payment type %q", domain.ErrValidation, in.PaymentType)
	}
	if in.PaymentType == domain.PaymentCustomer && in.CustomerID == nil {
		return nil, fmt.Errorf("%w: customer is required for customer-account sales", domain.ErrValidation)
	}
	if in.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *in.CustomerID); err != nil {
			return nil, err
		}
	}

	item, err := s.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity < in.Quantity {
		return nil, fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientStock, in.Quantity, item.Quantity)
	}

	sale := &domain.Sale{
		ID:          uuid.New(),
		ItemID:      in.ItemID,
		CustomerID:  in.CustomerID,
		Quantity:    in.Quantity,
		PaymentType: in.PaymentType,
		Date:        time.Now().UTC(),
	}
	if in.Date != nil {
		sale.Date = in.Date.UTC()
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return s.saleRepo.GetByID(ctx, sale.ID)
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleRecord, error) {
	return s.saleRepo.GetByID(ctx, id)
}

// List returns one page of sales with the total count and page count.
func (s *saleService) List(ctx context.Context, raw RawReportParams) ([]domain.SaleRecord, int, int, error) {
	q, err := normalizeQuery(domain.ReportSales, raw)
	if err != nil {
		return nil, 0, 0, err
	}
	records, total, err := s.saleRepo.List(ctx, q)
	if err != nil {
		return nil, 0, 0, err
	}
	return records, total, domain.TotalPages(total, q.Limit), nil
}
