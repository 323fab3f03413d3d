// Package export renders report datasets into downloadable files. The Excel
// and PDF renderers share the same column layout and trailing summary block
// per report kind, so both formats expose equivalent information.
package export

import (
	"fmt"
	"time"

	"salesdesk/internal/domain"
)

// Dataset is the input to a renderer: the rows to print (the full filtered
// set for export requests) and the matching summary for the report kind.
type Dataset struct {
	Sales         []domain.SaleRecord
	Items         []domain.ItemRecord
	SalesSummary  *domain.SalesSummary
	ItemsSummary  *domain.ItemsSummary
	LedgerSummary *domain.LedgerSummary
}

// Render dispatches on format and produces the file bytes.
func Render(kind domain.ReportKind, format domain.ExportFormat, data Dataset) ([]byte, error) {
	switch format {
	case domain.FormatExcel:
		return renderExcel(kind, data)
	case domain.FormatPDF:
		return renderPDF(kind, data)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, format)
	}
}

// FileName returns the attachment filename for a report kind and format.
func FileName(kind domain.ReportKind, format domain.ExportFormat) string {
	return fmt.Sprintf("%s-report.%s", kind, format.FileExtension())
}

// salesHeader is the column set shared by sales and ledger reports.
var salesHeader = []string{"Item", "Customer", "Quantity", "Unit Price", "Total Price", "Date", "Payment Type"}

// itemsHeader is the column set for items reports.
var itemsHeader = []string{"Name", "Description", "Quantity", "Price", "Total Value", "Created By"}

func headerFor(kind domain.ReportKind) []string {
	if kind == domain.ReportItems {
		return itemsHeader
	}
	return salesHeader
}

func titleFor(kind domain.ReportKind) string {
	switch kind {
	case domain.ReportSales:
		return "Sales Report"
	case domain.ReportItems:
		return "Items Report"
	case domain.ReportLedger:
		return "Ledger Report"
	default:
		return "Report"
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// saleRow formats one resolved sale as table cells.
func saleRow(s domain.SaleRecord) []string {
	return []string{
		s.ItemName,
		s.CustomerName,
		fmt.Sprintf("%d", s.Quantity),
		money(s.UnitPrice),
		money(s.TotalPrice),
		day(s.Date),
		string(s.PaymentType),
	}
}

// itemRow formats one resolved item as table cells.
func itemRow(i domain.ItemRecord) []string {
	return []string{
		i.Name,
		i.Description,
		fmt.Sprintf("%d", i.Quantity),
		money(i.Price),
		money(i.TotalValue),
		i.CreatedByEmail,
	}
}

// bodyRows returns the data rows for the kind.
func bodyRows(kind domain.ReportKind, data Dataset) [][]string {
	if kind == domain.ReportItems {
		rows := make([][]string, 0, len(data.Items))
		for _, i := range data.Items {
			rows = append(rows, itemRow(i))
		}
		return rows
	}
	rows := make([][]string, 0, len(data.Sales))
	for _, s := range data.Sales {
		rows = append(rows, saleRow(s))
	}
	return rows
}

// summaryRows renders the trailing summary block for the kind. The fields
// mirror the aggregation output: totals, counts, averages, top-5 lists, and
// the payment breakdown for ledgers.
func summaryRows(kind domain.ReportKind, data Dataset) [][]string {
	var rows [][]string
	rows = append(rows, []string{"Summary"})

	switch kind {
	case domain.ReportSales:
		s := data.SalesSummary
		if s == nil {
			return rows
		}
		rows = append(rows,
			[]string{"Total Revenue", money(s.TotalRevenue)},
			[]string{"Total Sales", fmt.Sprintf("%d", s.TotalSales)},
			[]string{"Average Sale Price", money(s.AverageSalePrice)},
			[]string{"Top Items"},
		)
		for i, item := range s.TopItems {
			rows = append(rows, []string{
				fmt.Sprintf("#%d", i+1), item.Name,
				fmt.Sprintf("%d", item.Quantity), money(item.Revenue),
			})
		}

	case domain.ReportLedger:
		s := data.LedgerSummary
		if s == nil {
			return rows
		}
		rows = append(rows,
			[]string{"Total Spent", money(s.TotalSpent)},
			[]string{"Total Transactions", fmt.Sprintf("%d", s.TotalTransactions)},
			[]string{"Average Transaction Value", money(s.AverageTransactionValue)},
			[]string{"Payment Type Breakdown"},
		)
		for _, pt := range s.PaymentTypeBreakdown {
			rows = append(rows, []string{
				string(pt.Type), fmt.Sprintf("%d", pt.Count), percent(pt.Percentage),
			})
		}

	case domain.ReportItems:
		s := data.ItemsSummary
		if s == nil {
			return rows
		}
		rows = append(rows,
			[]string{"Total Inventory Value", money(s.TotalInventoryValue)},
			[]string{"Total Items", fmt.Sprintf("%d", s.TotalItems)},
			[]string{"Average Price", money(s.AveragePrice)},
			[]string{"Low Stock Items", fmt.Sprintf("%d", s.LowStockItems)},
			[]string{"Top Turnover Rates"},
		)
		for i, entry := range s.TurnoverRate {
			rows = append(rows, []string{
				fmt.Sprintf("#%d", i+1), entry.Name, fmt.Sprintf("%.2f", entry.Rate),
			})
		}
	}
	return rows
}
