package port

import (
	"context"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
)

// SaleRepository defines the contract for sale ledger persistence.
//
// Create commits the sale and the matching stock decrement in one
// transaction. The decrement is conditional ("quantity = quantity - n WHERE
// quantity >= n"); when the condition fails because a concurrent sale drained
// the stock first, Create returns domain.ErrInsufficientStock and persists
// nothing. Sales are immutable once created.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleRecord, error)
	List(ctx context.Context, q domain.ReportQuery) ([]domain.SaleRecord, int, error)
	ListAll(ctx context.Context, q domain.ReportQuery) ([]domain.SaleRecord, error)
}
