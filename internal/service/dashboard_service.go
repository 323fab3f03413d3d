package service

import (
	"context"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

const recentSalesCount = 5

// DashboardService assembles the back-office landing snapshot.
type DashboardService interface {
	Snapshot(ctx context.Context) (*domain.DashboardData, error)
}

type dashboardService struct {
	saleRepo port.SaleRepository
	itemRepo port.ItemRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(saleRepo port.SaleRepository, itemRepo port.ItemRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo, itemRepo: itemRepo}
}

func (s *dashboardService) Snapshot(ctx context.Context) (*domain.DashboardData, error) {
	sales, err := s.saleRepo.ListAll(ctx, domain.ReportQuery{})
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListAll(ctx, domain.ReportQuery{})
	if err != nil {
		return nil, err
	}

	data := &domain.DashboardData{TotalSales: len(sales)}
	for i := range sales {
		data.TotalRevenue += sales[i].TotalPrice
	}

	data.InventoryStatus.TotalItems = len(items)
	for i := range items {
		if items[i].Quantity < domain.LowStockThreshold {
			data.InventoryStatus.LowStockItems++
		}
	}

	recent, _, err := s.saleRepo.List(ctx, domain.ReportQuery{
		Page:      1,
		Limit:     recentSalesCount,
		SortField: "date",
		SortDesc:  true,
	})
	if err != nil {
		return nil, err
	}
	data.RecentSales = recent
	return data, nil
}
