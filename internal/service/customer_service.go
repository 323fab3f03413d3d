package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

// CustomerInput carries the fields accepted when creating or updating a
// customer.
type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CustomerService manages customer accounts.
type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, raw RawReportParams) ([]domain.Customer, int, int, error)
	Update(ctx context.Context, id uuid.UUID, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	customerRepo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(customerRepo port.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func validateCustomerInput(in CustomerInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return fmt.Errorf("%w: invalid email address %q", domain.ErrValidation, in.Email)
		}
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	if err := validateCustomerInput(in); err != nil {
		return nil, err
	}
	c := &domain.Customer{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, raw RawReportParams) ([]domain.Customer, int, int, error) {
	// Customers page newest-first; only page, limit, and search apply here.
	q := domain.ReportQuery{
		Page:   raw.Page,
		Limit:  raw.Limit,
		Search: strings.TrimSpace(raw.Search),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	customers, total, err := s.customerRepo.List(ctx, q)
	if err != nil {
		return nil, 0, 0, err
	}
	return customers, total, domain.TotalPages(total, q.Limit), nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, in CustomerInput) (*domain.Customer, error) {
	if err := validateCustomerInput(in); err != nil {
		return nil, err
	}
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Address = strings.TrimSpace(in.Address)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = strings.TrimSpace(in.Email)
	c.UpdatedAt = time.Now().UTC()
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, id)
}
