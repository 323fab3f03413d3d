package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdesk/internal/service"
)

// SaleHandler handles sale endpoints.
type SaleHandler struct {
	saleService service.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /api/v1/sales
// @Summary      Record a sale
// @Description  Commits a sale and decrements the item's stock atomically
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request body service.CreateSaleInput true "Sale details"
// @Success      201 {object} APIResponse{data=domain.SaleRecord}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var input service.CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	record, err := h.saleService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, record)
}

// Get handles GET /api/v1/sales/:id
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Param        id path string true "Sale UUID"
// @Success      200 {object} APIResponse{data=domain.SaleRecord}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid sale id")
		return
	}

	record, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

// List handles GET /api/v1/sales
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        search query string false "Match item or customer name"
// @Param        sort query string false "Sort field; leading - for descending" Enums(date, quantity, created_at)
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        customerId query string false "Scope to one customer (UUID)"
// @Success      200 {object} APIResponse{data=[]domain.SaleRecord,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	records, total, totalPages, err := h.saleService.List(c.Request.Context(), raw)
	if err != nil {
		HandleError(c, err)
		return
	}

	page, limit := raw.Page, raw.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	RespondPaginated(c, records, PagMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages})
}
