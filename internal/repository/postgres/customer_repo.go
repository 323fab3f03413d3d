package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now().UTC()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, address, phone, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Address, c.Phone, c.Email, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, q domain.ReportQuery) ([]domain.Customer, int, error) {
	clause := "WHERE 1=1"
	var args []interface{}
	if q.Search != "" {
		clause += " AND (name ILIKE $1 OR phone ILIKE $1)"
		args = append(args, "%"+q.Search+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers "+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	query := fmt.Sprintf(
		"SELECT * FROM customers %s ORDER BY created_at DESC, id ASC LIMIT %d OFFSET %d",
		clause, q.Limit, offset)

	customers := []domain.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE customers SET name = $1, address = $2, phone = $3, email = $4, updated_at = $5
		 WHERE id = $6`,
		c.Name, c.Address, c.Phone, c.Email, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
