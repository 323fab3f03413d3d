package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportQuery is the canonical, validated form of a report request. It is
// built once per request by the report service and consumed by the store
// and the aggregation layer; it is never persisted.
type ReportQuery struct {
	Page       int
	Limit      int
	Search     string
	SortField  string
	SortDesc   bool
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID *uuid.UUID
}

// Unpaginated returns a copy of the query with paging removed, for summary
// computation over the entire filtered set.
func (q ReportQuery) Unpaginated() ReportQuery {
	q.Page = 0
	q.Limit = 0
	return q
}

// TotalPages computes ceil(total/limit), with 0 pages for an empty result.
func TotalPages(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// TopItem is one entry of the top-5 revenue ranking in a sales summary.
type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// DateBucket aggregates sales for one calendar day (UTC).
type DateBucket struct {
	Date     string  `json:"date"`
	Quantity int     `json:"total"`
	Revenue  float64 `json:"revenue"`
}

// PaymentTypeStat is one slice of a payment-type breakdown.
type PaymentTypeStat struct {
	Type       PaymentType `json:"type"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"`
}

// TurnoverEntry ranks an item by units sold in the window over on-hand stock.
type TurnoverEntry struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// SalesSummary is the aggregate block for a sales report, computed over the
// full filtered set regardless of pagination.
type SalesSummary struct {
	TotalRevenue         float64           `json:"total_revenue"`
	TotalSales           int               `json:"total_sales"`
	AverageSalePrice     float64           `json:"average_sale_price"`
	TopItems             []TopItem         `json:"top_items"`
	SalesByDate          []DateBucket      `json:"sales_by_date"`
	PaymentTypeBreakdown []PaymentTypeStat `json:"payment_type_breakdown,omitempty"`
}

// ItemsSummary is the aggregate block for an items report.
type ItemsSummary struct {
	TotalInventoryValue float64         `json:"total_inventory_value"`
	TotalItems          int             `json:"total_items"`
	AveragePrice        float64         `json:"average_price"`
	LowStockItems       int             `json:"low_stock_items"`
	TurnoverRate        []TurnoverEntry `json:"turnover_rate"`
}

// LedgerSummary is the customer-scoped aggregate block.
type LedgerSummary struct {
	TotalSpent              float64           `json:"total_spent"`
	TotalTransactions       int               `json:"total_transactions"`
	AverageTransactionValue float64           `json:"average_transaction_value"`
	PaymentTypeBreakdown    []PaymentTypeStat `json:"payment_type_breakdown"`
}

// ExportRequest carries the validated parameters of an export call.
type ExportRequest struct {
	Kind       ReportKind
	Format     ExportFormat
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Email      string
}

// ExportResult is a rendered report ready to download or mail.
type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
	Delivered   bool
}
