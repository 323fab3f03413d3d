package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a back-office operator who can create items and record sales.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Item represents a catalog item with on-hand stock.
// Quantity is never negative once committed; the only path that decreases it
// is the sale commit in SaleRepository.Create.
type Item struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Price       float64   `db:"price" json:"price"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents an account-holding customer.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Sale is an immutable ledger entry. A nil CustomerID marks a cash sale.
type Sale struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	ItemID      uuid.UUID   `db:"item_id" json:"item_id"`
	CustomerID  *uuid.UUID  `db:"customer_id" json:"customer_id"`
	Quantity    int         `db:"quantity" json:"quantity"`
	PaymentType PaymentType `db:"payment_type" json:"payment_type"`
	Date        time.Time   `db:"date" json:"date"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// SaleRecord is a sale resolved against its item and customer at read time.
// The item price and names are joined fresh on every query rather than
// denormalized onto the sale row.
type SaleRecord struct {
	Sale
	ItemName     string  `db:"item_name" json:"item_name"`
	UnitPrice    float64 `db:"unit_price" json:"unit_price"`
	CustomerName string  `db:"customer_name" json:"customer_name"`
	TotalPrice   float64 `db:"total_price" json:"total_price"`
}

// ItemRecord is an item resolved with its line value and creator email.
type ItemRecord struct {
	Item
	TotalValue     float64 `db:"total_value" json:"total_value"`
	CreatedByEmail string  `db:"created_by_email" json:"created_by_email"`
}

// DashboardData is the aggregate snapshot served on the dashboard endpoint.
type DashboardData struct {
	TotalSales      int             `json:"total_sales"`
	TotalRevenue    float64         `json:"total_revenue"`
	InventoryStatus InventoryStatus `json:"inventory_status"`
	RecentSales     []SaleRecord    `json:"recent_sales"`
}

// InventoryStatus summarizes stock health for the dashboard.
type InventoryStatus struct {
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`
}
