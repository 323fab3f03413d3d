// Package report computes the aggregate summary blocks that accompany report
// pages. All builders take the entire filtered dataset, never a single page,
// so the numbers are independent of pagination.
package report

import (
	"sort"

	"salesdesk/internal/domain"
)

const topN = 5

// BuildSalesSummary aggregates resolved sale records into a SalesSummary.
// The payment-type breakdown is only populated for customer-scoped queries,
// where it feeds the ledger view.
func BuildSalesSummary(sales []domain.SaleRecord, customerScoped bool) domain.SalesSummary {
	var totalRevenue float64
	for _, s := range sales {
		totalRevenue += float64(s.Quantity) * s.UnitPrice
	}

	totalSales := len(sales)
	averageSalePrice := 0.0
	if totalSales > 0 {
		averageSalePrice = totalRevenue / float64(totalSales)
	}

	summary := domain.SalesSummary{
		TotalRevenue:     totalRevenue,
		TotalSales:       totalSales,
		AverageSalePrice: averageSalePrice,
		TopItems:         topItems(sales),
		SalesByDate:      salesByDate(sales),
	}
	if customerScoped {
		summary.PaymentTypeBreakdown = PaymentBreakdown(sales)
	}
	return summary
}

// topItems groups sales by item, sums quantity and revenue, and returns the
// top five by revenue. Equal revenues are broken by item name so the ranking
// is deterministic.
func topItems(sales []domain.SaleRecord) []domain.TopItem {
	grouped := make(map[string]*domain.TopItem)
	for _, s := range sales {
		entry, ok := grouped[s.ItemID.String()]
		if !ok {
			entry = &domain.TopItem{Name: s.ItemName}
			grouped[s.ItemID.String()] = entry
		}
		entry.Quantity += s.Quantity
		entry.Revenue += float64(s.Quantity) * s.UnitPrice
	}

	items := make([]domain.TopItem, 0, len(grouped))
	for _, entry := range grouped {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Revenue != items[j].Revenue {
			return items[i].Revenue > items[j].Revenue
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topN {
		items = items[:topN]
	}
	return items
}

// salesByDate buckets sales per UTC calendar day, sorted ascending by the
// YYYY-MM-DD date string.
func salesByDate(sales []domain.SaleRecord) []domain.DateBucket {
	grouped := make(map[string]*domain.DateBucket)
	for _, s := range sales {
		day := s.Date.UTC().Format("2006-01-02")
		bucket, ok := grouped[day]
		if !ok {
			bucket = &domain.DateBucket{Date: day}
			grouped[day] = bucket
		}
		bucket.Quantity += s.Quantity
		bucket.Revenue += float64(s.Quantity) * s.UnitPrice
	}

	buckets := make([]domain.DateBucket, 0, len(grouped))
	for _, bucket := range grouped {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

// PaymentBreakdown counts sales per payment type with each slice's share of
// the total. Percentages sum to 100 within floating-point tolerance; an empty
// input yields an empty slice.
func PaymentBreakdown(sales []domain.SaleRecord) []domain.PaymentTypeStat {
	total := len(sales)
	counts := make(map[domain.PaymentType]int)
	for _, s := range sales {
		counts[s.PaymentType]++
	}

	stats := make([]domain.PaymentTypeStat, 0, len(counts))
	for pt, count := range counts {
		stats = append(stats, domain.PaymentTypeStat{
			Type:       pt,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Type < stats[j].Type
	})
	return stats
}

// BuildItemsSummary aggregates item records, correlated against the sales
// that fell inside the same date window for turnover ranking.
func BuildItemsSummary(items []domain.ItemRecord, sales []domain.SaleRecord) domain.ItemsSummary {
	var totalValue, totalPrice float64
	lowStock := 0
	for _, item := range items {
		totalValue += float64(item.Quantity) * item.Price
		totalPrice += item.Price
		if item.Quantity < domain.LowStockThreshold {
			lowStock++
		}
	}

	totalItems := len(items)
	averagePrice := 0.0
	if totalItems > 0 {
		averagePrice = totalPrice / float64(totalItems)
	}

	return domain.ItemsSummary{
		TotalInventoryValue: totalValue,
		TotalItems:          totalItems,
		AveragePrice:        averagePrice,
		LowStockItems:       lowStock,
		TurnoverRate:        turnoverRate(items, sales),
	}
}

// turnoverRate ranks items by units sold in the window over current on-hand
// quantity (0 for items with no stock), top five, name tie-break.
func turnoverRate(items []domain.ItemRecord, sales []domain.SaleRecord) []domain.TurnoverEntry {
	soldByItem := make(map[string]int)
	for _, s := range sales {
		soldByItem[s.ItemID.String()] += s.Quantity
	}

	entries := make([]domain.TurnoverEntry, 0, len(items))
	for _, item := range items {
		rate := 0.0
		if item.Quantity > 0 {
			rate = float64(soldByItem[item.ID.String()]) / float64(item.Quantity)
		}
		entries = append(entries, domain.TurnoverEntry{Name: item.Name, Rate: rate})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rate != entries[j].Rate {
			return entries[i].Rate > entries[j].Rate
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// BuildLedgerSummary aggregates a customer's sales into the ledger block.
func BuildLedgerSummary(sales []domain.SaleRecord) domain.LedgerSummary {
	var totalSpent float64
	for _, s := range sales {
		totalSpent += float64(s.Quantity) * s.UnitPrice
	}

	totalTransactions := len(sales)
	average := 0.0
	if totalTransactions > 0 {
		average = totalSpent / float64(totalTransactions)
	}

	return domain.LedgerSummary{
		TotalSpent:              totalSpent,
		TotalTransactions:       totalTransactions,
		AverageTransactionValue: average,
		PaymentTypeBreakdown:    PaymentBreakdown(sales),
	}
}
