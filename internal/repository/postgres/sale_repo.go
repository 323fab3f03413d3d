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

type saleRepo struct {
	db *sqlx.DB
}

// NewSaleRepo creates a new PostgreSQL-backed SaleRepository.
func NewSaleRepo(db *sqlx.DB) port.SaleRepository {
	return &saleRepo{db: db}
}

// saleColumns resolves item price/name and customer name at read time.
// Customers are LEFT JOINed so cash sales (customer_id IS NULL) survive.
const saleColumns = `
	s.id, s.item_id, s.customer_id, s.quantity, s.payment_type, s.date,
	s.created_at, s.updated_at,
	i.name AS item_name, i.price AS unit_price,
	COALESCE(c.name, 'Cash') AS customer_name,
	s.quantity * i.price AS total_price`

const saleJoins = `
	FROM sales s
	INNER JOIN items i ON i.id = s.item_id
	LEFT JOIN customers c ON c.id = s.customer_id`

// saleSortColumns whitelists the ORDER BY targets for sale queries. The
// service layer rejects anything outside this set before it reaches here.
var saleSortColumns = map[string]string{
	"date":       "s.date",
	"quantity":   "s.quantity",
	"created_at": "s.created_at",
}

// buildSaleWhere constructs the WHERE clause for sale queries from the
// canonical descriptor. Date bounds are inclusive and apply to the sale date.
func buildSaleWhere(q domain.ReportQuery) (clause string, args []interface{}) {
	clause = "WHERE 1=1"
	argN := 1

	if q.Search != "" {
		clause += fmt.Sprintf(" AND (i.name ILIKE $%d OR COALESCE(c.name, '') ILIKE $%d)", argN, argN)
		args = append(args, "%"+q.Search+"%")
		argN++
	}
	if q.StartDate != nil {
		clause += fmt.Sprintf(" AND s.date >= $%d", argN)
		args = append(args, *q.StartDate)
		argN++
	}
	if q.EndDate != nil {
		clause += fmt.Sprintf(" AND s.date <= $%d", argN)
		args = append(args, *q.EndDate)
		argN++
	}
	if q.CustomerID != nil {
		clause += fmt.Sprintf(" AND s.customer_id = $%d", argN)
		args = append(args, *q.CustomerID)
	}
	return clause, args
}

// saleOrderBy builds a deterministic ORDER BY: the requested column plus a
// created_at/id tie-break so pagination is stable across pages.
func saleOrderBy(q domain.ReportQuery) string {
	col, ok := saleSortColumns[q.SortField]
	if !ok {
		col = "s.created_at"
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, s.created_at ASC, s.id ASC", col, dir)
}

// Create commits the stock decrement and the sale insert in one transaction.
// The decrement is conditional on sufficient remaining stock, so two
// concurrent sales can never drive an item's quantity negative: the loser of
// the race matches zero rows and the whole attempt rolls back.
func (r *saleRepo) Create(ctx context.Context, s *domain.Sale) error {
	now := time.Now().UTC()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Date.IsZero() {
		s.Date = now
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saleRepo.Create begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.ExecContext(ctx,
		`UPDATE items SET quantity = quantity - $1, updated_at = $2
		 WHERE id = $3 AND quantity >= $1`,
		s.Quantity, now, s.ItemID)
	if err != nil {
		return fmt.Errorf("saleRepo.Create decrement: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInsufficientStock
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sales (id, item_id, customer_id, quantity, payment_type, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.ItemID, s.CustomerID, s.Quantity, s.PaymentType, s.Date, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saleRepo.Create insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saleRepo.Create commit: %w", err)
	}
	return nil
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleRecord, error) {
	var rec domain.SaleRecord
	query := "SELECT " + saleColumns + saleJoins + " WHERE s.id = $1"
	err := r.db.GetContext(ctx, &rec, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("saleRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *saleRepo) List(ctx context.Context, q domain.ReportQuery) ([]domain.SaleRecord, int, error) {
	where, args := buildSaleWhere(q)

	var total int
	countQuery := "SELECT COUNT(*)" + saleJoins + " " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("saleRepo.List count: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	query := fmt.Sprintf("SELECT %s %s %s %s LIMIT %d OFFSET %d",
		saleColumns, saleJoins, where, saleOrderBy(q), q.Limit, offset)

	records := []domain.SaleRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("saleRepo.List: %w", err)
	}
	return records, total, nil
}

// ListAll returns the entire filtered set in sorted order, ignoring paging.
// Summaries are computed over this view so they are page-independent.
func (r *saleRepo) ListAll(ctx context.Context, q domain.ReportQuery) ([]domain.SaleRecord, error) {
	where, args := buildSaleWhere(q)
	query := fmt.Sprintf("SELECT %s %s %s %s", saleColumns, saleJoins, where, saleOrderBy(q))

	records := []domain.SaleRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("saleRepo.ListAll: %w", err)
	}
	return records, nil
}
