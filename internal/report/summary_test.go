package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"salesdesk/internal/domain"
	"salesdesk/internal/report"
)

func saleRecord(itemID uuid.UUID, name string, qty int, price float64, date time.Time, pt domain.PaymentType) domain.SaleRecord {
	return domain.SaleRecord{
		Sale: domain.Sale{
			ID:          uuid.New(),
			ItemID:      itemID,
			Quantity:    qty,
			PaymentType: pt,
			Date:        date,
		},
		ItemName:   name,
		UnitPrice:  price,
		TotalPrice: float64(qty) * price,
	}
}

func TestBuildSalesSummary_Totals(t *testing.T) {
	day := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	widget := uuid.New()
	gadget := uuid.New()
	sales := []domain.SaleRecord{
		saleRecord(widget, "Widget", 2, 10.0, day, domain.PaymentCash),
		saleRecord(gadget, "Gadget", 1, 30.0, day, domain.PaymentCash),
	}

	summary := report.BuildSalesSummary(sales, false)

	assert.Equal(t, 50.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalSales)
	assert.Equal(t, 25.0, summary.AverageSalePrice)
	assert.Empty(t, summary.PaymentTypeBreakdown)
}

func TestBuildSalesSummary_Empty(t *testing.T) {
	summary := report.BuildSalesSummary(nil, false)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.AverageSalePrice)
	assert.Empty(t, summary.TopItems)
	assert.Empty(t, summary.SalesByDate)
}

func TestBuildSalesSummary_TopItemsRankedByRevenue(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	var sales []domain.SaleRecord
	// Seven items; revenue 10, 20, ..., 70.
	for i := 1; i <= 7; i++ {
		id := uuid.New()
		sales = append(sales, saleRecord(id, fmt.Sprintf("Item %d", i), 1, float64(i)*10, day, domain.PaymentCash))
	}

	summary := report.BuildSalesSummary(sales, false)

	assert.Len(t, summary.TopItems, 5)
	assert.Equal(t, "Item 7", summary.TopItems[0].Name)
	assert.Equal(t, 70.0, summary.TopItems[0].Revenue)
	assert.Equal(t, "Item 3", summary.TopItems[4].Name)
	for i := 1; i < len(summary.TopItems); i++ {
		assert.GreaterOrEqual(t, summary.TopItems[i-1].Revenue, summary.TopItems[i].Revenue)
	}
}

func TestBuildSalesSummary_TopItemsGroupsRepeatSales(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	widget := uuid.New()
	sales := []domain.SaleRecord{
		saleRecord(widget, "Widget", 2, 10.0, day, domain.PaymentCash),
		saleRecord(widget, "Widget", 3, 10.0, day.Add(time.Hour), domain.PaymentCash),
	}

	summary := report.BuildSalesSummary(sales, false)

	assert.Len(t, summary.TopItems, 1)
	assert.Equal(t, 5, summary.TopItems[0].Quantity)
	assert.Equal(t, 50.0, summary.TopItems[0].Revenue)
}

func TestBuildSalesSummary_TopItemsTieBrokenByName(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sales := []domain.SaleRecord{
		saleRecord(uuid.New(), "Zebra", 1, 25.0, day, domain.PaymentCash),
		saleRecord(uuid.New(), "Apple", 1, 25.0, day, domain.PaymentCash),
	}

	summary := report.BuildSalesSummary(sales, false)

	assert.Equal(t, "Apple", summary.TopItems[0].Name)
	assert.Equal(t, "Zebra", summary.TopItems[1].Name)
}

func TestBuildSalesSummary_SalesByDateBucketsUTCDays(t *testing.T) {
	widget := uuid.New()
	sales := []domain.SaleRecord{
		// 23:30 UTC on the 10th and 00:15 UTC on the 11th are distinct days.
		saleRecord(widget, "Widget", 1, 10.0, time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC), domain.PaymentCash),
		saleRecord(widget, "Widget", 2, 10.0, time.Date(2026, 3, 11, 0, 15, 0, 0, time.UTC), domain.PaymentCash),
		saleRecord(widget, "Widget", 3, 10.0, time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC), domain.PaymentCash),
	}

	summary := report.BuildSalesSummary(sales, false)

	assert.Len(t, summary.SalesByDate, 2)
	assert.Equal(t, "2026-03-10", summary.SalesByDate[0].Date)
	assert.Equal(t, 1, summary.SalesByDate[0].Quantity)
	assert.Equal(t, "2026-03-11", summary.SalesByDate[1].Date)
	assert.Equal(t, 5, summary.SalesByDate[1].Quantity)
	assert.Equal(t, 50.0, summary.SalesByDate[1].Revenue)
}

func TestBuildSalesSummary_CustomerScopedIncludesBreakdown(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	widget := uuid.New()
	sales := []domain.SaleRecord{
		saleRecord(widget, "Widget", 1, 10.0, day, domain.PaymentCustomer),
		saleRecord(widget, "Widget", 1, 10.0, day, domain.PaymentCustomer),
		saleRecord(widget, "Widget", 1, 10.0, day, domain.PaymentCredit),
		saleRecord(widget, "Widget", 1, 10.0, day, domain.PaymentCash),
	}

	summary := report.BuildSalesSummary(sales, true)

	assert.Len(t, summary.PaymentTypeBreakdown, 3)
	assert.Equal(t, domain.PaymentCustomer, summary.PaymentTypeBreakdown[0].Type)
	assert.Equal(t, 2, summary.PaymentTypeBreakdown[0].Count)
	assert.Equal(t, 50.0, summary.PaymentTypeBreakdown[0].Percentage)

	var sum float64
	for _, stat := range summary.PaymentTypeBreakdown {
		sum += stat.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestPaymentBreakdown_Empty(t *testing.T) {
	assert.Empty(t, report.PaymentBreakdown(nil))
}

func itemRecord(name string, qty int, price float64) domain.ItemRecord {
	return domain.ItemRecord{
		Item: domain.Item{
			ID:       uuid.New(),
			Name:     name,
			Quantity: qty,
			Price:    price,
		},
		TotalValue: float64(qty) * price,
	}
}

func TestBuildItemsSummary_Totals(t *testing.T) {
	items := []domain.ItemRecord{
		itemRecord("Widget", 20, 10.0),
		itemRecord("Gadget", 5, 30.0),
		itemRecord("Sprocket", 0, 8.0),
	}

	summary := report.BuildItemsSummary(items, nil)

	assert.Equal(t, 350.0, summary.TotalInventoryValue)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 16.0, summary.AveragePrice)
	// Gadget (5) and Sprocket (0) are below the threshold of 10.
	assert.Equal(t, 2, summary.LowStockItems)
}

func TestBuildItemsSummary_TurnoverRanking(t *testing.T) {
	fast := itemRecord("Fast", 10, 5.0)
	slow := itemRecord("Slow", 100, 5.0)
	empty := itemRecord("Empty", 0, 5.0)
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sales := []domain.SaleRecord{
		saleRecord(fast.ID, "Fast", 20, 5.0, day, domain.PaymentCash),
		saleRecord(slow.ID, "Slow", 10, 5.0, day, domain.PaymentCash),
		saleRecord(empty.ID, "Empty", 4, 5.0, day, domain.PaymentCash),
	}

	summary := report.BuildItemsSummary([]domain.ItemRecord{fast, slow, empty}, sales)

	assert.Len(t, summary.TurnoverRate, 3)
	assert.Equal(t, "Fast", summary.TurnoverRate[0].Name)
	assert.Equal(t, 2.0, summary.TurnoverRate[0].Rate)
	assert.Equal(t, "Slow", summary.TurnoverRate[1].Name)
	assert.Equal(t, 0.1, summary.TurnoverRate[1].Rate)
	// No stock on hand means the rate cannot be computed; it ranks last at 0.
	assert.Equal(t, "Empty", summary.TurnoverRate[2].Name)
	assert.Equal(t, 0.0, summary.TurnoverRate[2].Rate)
}

func TestBuildItemsSummary_TurnoverCapsAtFive(t *testing.T) {
	var items []domain.ItemRecord
	var sales []domain.SaleRecord
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		item := itemRecord(fmt.Sprintf("Item %d", i), 10, 5.0)
		items = append(items, item)
		sales = append(sales, saleRecord(item.ID, item.Name, i+1, 5.0, day, domain.PaymentCash))
	}

	summary := report.BuildItemsSummary(items, sales)

	assert.Len(t, summary.TurnoverRate, 5)
	assert.Equal(t, "Item 7", summary.TurnoverRate[0].Name)
}

func TestBuildLedgerSummary(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	widget := uuid.New()
	sales := []domain.SaleRecord{
		saleRecord(widget, "Widget", 2, 10.0, day, domain.PaymentCustomer),
		saleRecord(widget, "Widget", 1, 40.0, day, domain.PaymentCash),
	}

	summary := report.BuildLedgerSummary(sales)

	assert.Equal(t, 60.0, summary.TotalSpent)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, 30.0, summary.AverageTransactionValue)
	assert.Len(t, summary.PaymentTypeBreakdown, 2)
}

func TestBuildLedgerSummary_Empty(t *testing.T) {
	summary := report.BuildLedgerSummary(nil)

	assert.Zero(t, summary.TotalSpent)
	assert.Zero(t, summary.TotalTransactions)
	assert.Zero(t, summary.AverageTransactionValue)
	assert.Empty(t, summary.PaymentTypeBreakdown)
}
