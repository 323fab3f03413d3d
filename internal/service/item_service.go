package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

// CreateItemInput carries the fields accepted when creating an item.
type CreateItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// UpdateItemInput carries the fields accepted when updating an item.
// Restocking goes through Quantity here; sales are the only path that
// decreases it implicitly.
type UpdateItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ItemService manages the item catalog.
type ItemService interface {
	Create(ctx context.Context, createdBy uuid.UUID, in CreateItemInput) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, raw RawReportParams) ([]domain.ItemRecord, int, int, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	itemRepo port.ItemRepository
}

// NewItemService creates a new ItemService implementation.
func NewItemService(itemRepo port.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func validateItemFields(name string, quantity int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, createdBy uuid.UUID, in CreateItemInput) (*domain.Item, error) {
	if err := validateItemFields(in.Name, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	item := &domain.Item{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		Price:       in.Price,
		CreatedBy:   createdBy,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context, raw RawReportParams) ([]domain.ItemRecord, int, int, error) {
	q, err := normalizeQuery(domain.ReportItems, raw)
	if err != nil {
		return nil, 0, 0, err
	}
	records, total, err := s.itemRepo.List(ctx, q)
	if err != nil {
		return nil, 0, 0, err
	}
	return records, total, domain.TotalPages(total, q.Limit), nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, in UpdateItemInput) (*domain.Item, error) {
	if err := validateItemFields(in.Name, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(in.Name)
	item.Description = strings.TrimSpace(in.Description)
	item.Quantity = in.Quantity
	item.Price = in.Price
	item.UpdatedAt = time.Now().UTC()
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}
