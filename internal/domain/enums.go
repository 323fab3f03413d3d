package domain

// UserRole defines the operator role.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// PaymentType enumerates how a sale was settled. A customer-account sale
// requires a customer reference; the rest may be cash sales.
type PaymentType string

const (
	PaymentCash     PaymentType = "cash"
	PaymentCustomer PaymentType = "customer"
	PaymentCredit   PaymentType = "credit"
	PaymentDebit    PaymentType = "debit"
)

// ValidPaymentTypes is the closed set accepted at sale creation.
var ValidPaymentTypes = map[PaymentType]bool{
	PaymentCash:     true,
	PaymentCustomer: true,
	PaymentCredit:   true,
	PaymentDebit:    true,
}

// ReportKind is the closed set of report shapes. Aggregation and rendering
// dispatch exhaustively on it.
type ReportKind string

const (
	ReportSales  ReportKind = "sales"
	ReportItems  ReportKind = "items"
	ReportLedger ReportKind = "ledger"
)

// ExportFormat is the closed set of export renderings.
type ExportFormat string

const (
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// MIME content types for exported files.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// FileExtension returns the file extension for the format, without the dot.
func (f ExportFormat) FileExtension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "xlsx"
}

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	if f == FormatPDF {
		return ContentTypePDF
	}
	return ContentTypeXLSX
}

// LowStockThreshold is the fixed quantity below which an item counts as low stock.
const LowStockThreshold = 10
