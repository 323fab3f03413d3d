package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdesk/internal/middleware"
	"salesdesk/internal/service"
)

// ItemHandler handles catalog item endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles POST /api/v1/items
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body service.CreateItemInput true "Item details"
// @Success      201 {object} APIResponse{data=domain.Item}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}

// Get handles GET /api/v1/items/:id
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item UUID"
// @Success      200 {object} APIResponse{data=domain.Item}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid item id")
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// List handles GET /api/v1/items
// @Summary      List items
// @Tags         items
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        search query string false "Match name or description"
// @Param        sort query string false "Sort field; leading - for descending" Enums(name, price, quantity, created_at)
// @Success      200 {object} APIResponse{data=[]domain.ItemRecord,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	records, total, totalPages, err := h.itemService.List(c.Request.Context(), raw)
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

// Update handles PUT /api/v1/items/:id
// @Summary      Update an item
// @Description  Updates item fields; quantity here is the restock path
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item UUID"
// @Param        request body service.UpdateItemInput true "Item details"
// @Success      200 {object} APIResponse{data=domain.Item}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid item id")
		return
	}

	var input service.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/items/:id
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid item id")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
