package port

import (
	"context"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
)

// ItemRepository defines the contract for catalog item persistence.
// List and ListAll resolve the creator email; date bounds apply to the
// item creation time.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, q domain.ReportQuery) ([]domain.ItemRecord, int, error)
	ListAll(ctx context.Context, q domain.ReportQuery) ([]domain.ItemRecord, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, q domain.ReportQuery) ([]domain.Customer, int, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for operator persistence.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
