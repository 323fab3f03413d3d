package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/domain"
	"salesdesk/internal/service"
	"salesdesk/mocks"
)

func TestItemService_Create_Success(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Item")).Return(nil)

	createdBy := uuid.New()
	item, err := svc.Create(context.Background(), createdBy, service.CreateItemInput{
		Name:     "  Widget  ",
		Quantity: 5,
		Price:    9.99,
	})

	require.NoError(t, err)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, createdBy, item.CreatedBy)
	repo.AssertExpectations(t)
}

func TestItemService_Create_RequiresName(t *testing.T) {
	svc := service.NewItemService(new(mocks.MockItemRepo))

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateItemInput{Name: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Create_RejectsNegativeValues(t *testing.T) {
	svc := service.NewItemService(new(mocks.MockItemRepo))

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateItemInput{Name: "Widget", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), uuid.New(), service.CreateItemInput{Name: "Widget", Price: -0.5})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Update_Restock(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)

	itemID := uuid.New()
	repo.On("GetByID", mock.Anything, itemID).Return(&domain.Item{ID: itemID, Name: "Widget", Quantity: 2, Price: 9.99}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(i *domain.Item) bool {
		return i.Quantity == 50
	})).Return(nil)

	item, err := svc.Update(context.Background(), itemID, service.UpdateItemInput{
		Name:     "Widget",
		Quantity: 50,
		Price:    9.99,
	})

	require.NoError(t, err)
	assert.Equal(t, 50, item.Quantity)
	repo.AssertExpectations(t)
}

func TestItemService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)

	itemID := uuid.New()
	repo.On("GetByID", mock.Anything, itemID).Return(nil, domain.ErrItemNotFound)

	_, err := svc.Update(context.Background(), itemID, service.UpdateItemInput{Name: "Widget"})

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDashboardService_Snapshot(t *testing.T) {
	saleRepo := new(mocks.MockSaleRepo)
	itemRepo := new(mocks.MockItemRepo)
	svc := service.NewDashboardService(saleRepo, itemRepo)

	sales := []domain.SaleRecord{
		{TotalPrice: 30},
		{TotalPrice: 20},
	}
	items := []domain.ItemRecord{
		{Item: domain.Item{Quantity: 50}},
		{Item: domain.Item{Quantity: 3}},
	}

	saleRepo.On("ListAll", mock.Anything, mock.Anything).Return(sales, nil)
	itemRepo.On("ListAll", mock.Anything, mock.Anything).Return(items, nil)
	saleRepo.On("List", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.Limit == 5 && q.SortField == "date" && q.SortDesc
	})).Return(sales, 2, nil)

	data, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, data.TotalSales)
	assert.Equal(t, 50.0, data.TotalRevenue)
	assert.Equal(t, 2, data.InventoryStatus.TotalItems)
	assert.Equal(t, 1, data.InventoryStatus.LowStockItems)
	assert.Len(t, data.RecentSales, 2)
}
