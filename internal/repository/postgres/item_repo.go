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

type itemRepo struct {
	db *sqlx.DB
}

// NewItemRepo creates a new PostgreSQL-backed ItemRepository.
func NewItemRepo(db *sqlx.DB) port.ItemRepository {
	return &itemRepo{db: db}
}

const itemColumns = `
	i.id, i.name, i.description, i.quantity, i.price, i.created_by,
	i.created_at, i.updated_at,
	i.quantity * i.price AS total_value,
	COALESCE(u.email, 'N/A') AS created_by_email`

const itemJoins = `
	FROM items i
	LEFT JOIN users u ON u.id = i.created_by`

var itemSortColumns = map[string]string{
	"name":       "i.name",
	"price":      "i.price",
	"quantity":   "i.quantity",
	"created_at": "i.created_at",
}

// buildItemWhere constructs the WHERE clause for item queries. Date bounds
// apply to the item creation time.
func buildItemWhere(q domain.ReportQuery) (clause string, args []interface{}) {
	clause = "WHERE 1=1"
	argN := 1

	if q.Search != "" {
		clause += fmt.Sprintf(" AND (i.name ILIKE $%d OR i.description ILIKE $%d)", argN, argN)
		args = append(args, "%"+q.Search+"%")
		argN++
	}
	if q.StartDate != nil {
		clause += fmt.Sprintf(" AND i.created_at >= $%d", argN)
		args = append(args, *q.StartDate)
		argN++
	}
	if q.EndDate != nil {
		clause += fmt.Sprintf(" AND i.created_at <= $%d", argN)
		args = append(args, *q.EndDate)
	}
	return clause, args
}

func itemOrderBy(q domain.ReportQuery) string {
	col, ok := itemSortColumns[q.SortField]
	if !ok {
		col = "i.created_at"
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, i.created_at ASC, i.id ASC", col, dir)
}

func (r *itemRepo) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, quantity, price, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.Description, item.Quantity, item.Price,
		item.CreatedBy, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("itemRepo.Create: %w", err)
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	err := r.db.GetContext(ctx, &item, "SELECT * FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("itemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *itemRepo) List(ctx context.Context, q domain.ReportQuery) ([]domain.ItemRecord, int, error) {
	where, args := buildItemWhere(q)

	var total int
	countQuery := "SELECT COUNT(*)" + itemJoins + " " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("itemRepo.List count: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	query := fmt.Sprintf("SELECT %s %s %s %s LIMIT %d OFFSET %d",
		itemColumns, itemJoins, where, itemOrderBy(q), q.Limit, offset)

	records := []domain.ItemRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("itemRepo.List: %w", err)
	}
	return records, total, nil
}

func (r *itemRepo) ListAll(ctx context.Context, q domain.ReportQuery) ([]domain.ItemRecord, error) {
	where, args := buildItemWhere(q)
	query := fmt.Sprintf("SELECT %s %s %s %s", itemColumns, itemJoins, where, itemOrderBy(q))

	records := []domain.ItemRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("itemRepo.ListAll: %w", err)
	}
	return records, nil
}

// Update replaces the item's catalog fields, including restock quantity.
// A negative quantity is rejected by the table CHECK constraint; sales
// decrement stock through SaleRepository.Create, not through here.
func (r *itemRepo) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET name = $1, description = $2, quantity = $3, price = $4, updated_at = $5
		 WHERE id = $6`,
		item.Name, item.Description, item.Quantity, item.Price, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("itemRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("itemRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
