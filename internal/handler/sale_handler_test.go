package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
	"salesdesk/internal/handler"
	"salesdesk/mocks"
)

func newSaleHandler() (*handler.SaleHandler, *mocks.MockSaleService) {
	mockSvc := new(mocks.MockSaleService)
	h := handler.NewSaleHandler(mockSvc)
	return h, mockSvc
}

func postJSON(t *testing.T, target string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return w, c
}

func TestSaleHandler_Create_Success(t *testing.T) {
	h, mockSvc := newSaleHandler()

	itemID := uuid.New()
	mockSvc.On("Create", mock.Anything, mock.Anything).Return(&domain.SaleRecord{
		Sale:     domain.Sale{ID: uuid.New(), ItemID: itemID, Quantity: 2, PaymentType: domain.PaymentCash},
		ItemName: "Widget",
	}, nil)

	w, c := postJSON(t, "/api/v1/sales", gin.H{
		"item_id":      itemID,
		"quantity":     2,
		"payment_type": "cash",
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestSaleHandler_Create_InsufficientStock(t *testing.T) {
	h, mockSvc := newSaleHandler()

	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: requested 5, available 2", domain.ErrInsufficientStock))

	w, c := postJSON(t, "/api/v1/sales", gin.H{
		"item_id":      uuid.New(),
		"quantity":     5,
		"payment_type": "cash",
	})
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "requested 5, available 2")
}

func TestSaleHandler_Create_MalformedBody(t *testing.T) {
	h, _ := newSaleHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleHandler_List_Paginates(t *testing.T) {
	h, mockSvc := newSaleHandler()

	mockSvc.On("List", mock.Anything, mock.Anything).Return([]domain.SaleRecord{}, 12, 2, nil)

	w, c := getRequest(t, "/api/v1/sales?page=2&limit=10")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 12, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestSaleHandler_Get_NotFound(t *testing.T) {
	h, mockSvc := newSaleHandler()

	saleID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, saleID).Return(nil, domain.ErrSaleNotFound)

	w, c := getRequest(t, "/api/v1/sales/"+saleID.String())
	c.Params = gin.Params{{Key: "id", Value: saleID.String()}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
