package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salesdesk/internal/domain"
)

func sampleSalesData() Dataset {
	widget := uuid.New()
	sale := domain.SaleRecord{
		Sale: domain.Sale{
			ID:          uuid.New(),
			ItemID:      widget,
			Quantity:    3,
			PaymentType: domain.PaymentCash,
			Date:        time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		ItemName:     "Widget",
		UnitPrice:    12.5,
		CustomerName: "Cash",
		TotalPrice:   37.5,
	}
	return Dataset{
		Sales: []domain.SaleRecord{sale},
		SalesSummary: &domain.SalesSummary{
			TotalRevenue:     37.5,
			TotalSales:       1,
			AverageSalePrice: 37.5,
			TopItems:         []domain.TopItem{{Name: "Widget", Quantity: 3, Revenue: 37.5}},
		},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "sales-report.xlsx", FileName(domain.ReportSales, domain.FormatExcel))
	assert.Equal(t, "items-report.pdf", FileName(domain.ReportItems, domain.FormatPDF))
	assert.Equal(t, "ledger-report.xlsx", FileName(domain.ReportLedger, domain.FormatExcel))
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(domain.ReportSales, domain.ExportFormat("csv"), Dataset{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRenderExcel_SalesRoundTrip(t *testing.T) {
	content, err := Render(domain.ReportSales, domain.FormatExcel, sampleSalesData())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)

	// Header, one data row, spacer, then the summary block.
	assert.Equal(t, salesHeader, rows[0])
	assert.Equal(t, []string{"Widget", "Cash", "3", "$12.50", "$37.50", "2026-03-10", "cash"}, rows[1])

	flat := flatten(rows)
	assert.Contains(t, flat, "Summary")
	assert.Contains(t, flat, "Total Revenue")
	assert.Contains(t, flat, "$37.50")
}

func TestRenderExcel_ItemsSummaryBlock(t *testing.T) {
	data := Dataset{
		Items: []domain.ItemRecord{{
			Item: domain.Item{
				ID:       uuid.New(),
				Name:     "Widget",
				Quantity: 4,
				Price:    12.5,
			},
			TotalValue:     50.0,
			CreatedByEmail: "ops@example.com",
		}},
		ItemsSummary: &domain.ItemsSummary{
			TotalInventoryValue: 50.0,
			TotalItems:          1,
			AveragePrice:        12.5,
			LowStockItems:       1,
			TurnoverRate:        []domain.TurnoverEntry{{Name: "Widget", Rate: 0.5}},
		},
	}

	content, err := Render(domain.ReportItems, domain.FormatExcel, data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Items")
	require.NoError(t, err)

	assert.Equal(t, itemsHeader, rows[0])
	flat := flatten(rows)
	assert.Contains(t, flat, "Low Stock Items")
	assert.Contains(t, flat, "Top Turnover Rates")
	assert.Contains(t, flat, "0.50")
}

func TestRenderExcel_LedgerBreakdown(t *testing.T) {
	data := Dataset{
		Sales: sampleSalesData().Sales,
		LedgerSummary: &domain.LedgerSummary{
			TotalSpent:              37.5,
			TotalTransactions:       1,
			AverageTransactionValue: 37.5,
			PaymentTypeBreakdown: []domain.PaymentTypeStat{
				{Type: domain.PaymentCustomer, Count: 1, Percentage: 100},
			},
		},
	}

	content, err := Render(domain.ReportLedger, domain.FormatExcel, data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ledger")
	require.NoError(t, err)

	flat := flatten(rows)
	assert.Contains(t, flat, "Payment Type Breakdown")
	assert.Contains(t, flat, "customer")
	assert.Contains(t, flat, "100.00%")
}

func TestRenderPDF_ProducesValidDocument(t *testing.T) {
	content, err := Render(domain.ReportSales, domain.FormatPDF, sampleSalesData())
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestRenderPDF_EmptyDataset(t *testing.T) {
	data := Dataset{SalesSummary: &domain.SalesSummary{}}
	content, err := Render(domain.ReportSales, domain.FormatPDF, data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestRenderPDF_ManyRowsPaginates(t *testing.T) {
	data := sampleSalesData()
	base := data.Sales[0]
	for i := 0; i < 200; i++ {
		data.Sales = append(data.Sales, base)
	}

	lines := len(data.Sales) + 1 + len(summaryRows(domain.ReportSales, data))
	require.GreaterOrEqual(t, measurePages(lines), 2)

	content, err := Render(domain.ReportSales, domain.FormatPDF, data)
	require.NoError(t, err)
	// A multi-page document is necessarily larger than the single-page one.
	single, err := Render(domain.ReportSales, domain.FormatPDF, sampleSalesData())
	require.NoError(t, err)
	assert.Greater(t, len(content), len(single))
}

func TestMeasurePages(t *testing.T) {
	// One line always fits on the first page.
	assert.Equal(t, 1, measurePages(1))
	// Far more lines than a page holds must span several pages.
	assert.GreaterOrEqual(t, measurePages(500), 2)
}

func flatten(rows [][]string) []string {
	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}
