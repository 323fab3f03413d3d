package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdesk/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body service.CustomerInput true "Customer details"
// @Success      201 {object} APIResponse{data=domain.Customer}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var input service.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, customer)
}

// Get handles GET /api/v1/customers/:id
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Success      200 {object} APIResponse{data=domain.Customer}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid customer id")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}

// List handles GET /api/v1/customers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        search query string false "Match name, phone, or email"
// @Success      200 {object} APIResponse{data=[]domain.Customer,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	customers, total, totalPages, err := h.customerService.List(c.Request.Context(), raw)
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
	RespondPaginated(c, customers, PagMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages})
}

// Update handles PUT /api/v1/customers/:id
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Param        request body service.CustomerInput true "Customer details"
// @Success      200 {object} APIResponse{data=domain.Customer}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid customer id")
		return
	}

	var input service.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid customer id")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
