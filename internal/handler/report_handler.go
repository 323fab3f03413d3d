package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salesdesk/internal/domain"
	"salesdesk/internal/service"
)

// ReportHandler handles report and export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportParams extracts the shared report query parameters. Values are
// passed through raw; the service owns normalization and validation.
func parseReportParams(c *gin.Context) (service.RawReportParams, error) {
	raw := service.RawReportParams{
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return raw, fmt.Errorf("invalid 'page': must be an integer")
		}
		raw.Page = page
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return raw, fmt.Errorf("invalid 'limit': must be an integer")
		}
		raw.Limit = limit
	}
	if cidStr := c.Query("customerId"); cidStr != "" {
		cid, err := uuid.Parse(cidStr)
		if err != nil {
			return raw, fmt.Errorf("invalid 'customerId': must be a valid UUID")
		}
		raw.CustomerID = &cid
	}
	return raw, nil
}

// Sales handles GET /api/v1/reports/sales
// @Summary      Sales report
// @Description  Paginated sales with revenue totals, top items, per-day buckets
// @Tags         reports
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        search query string false "Match item or customer name"
// @Param        sort query string false "Sort field; leading - for descending" Enums(date, quantity, created_at)
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        customerId query string false "Scope to one customer (UUID)"
// @Success      200 {object} APIResponse{data=service.SalesReportResult}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.reportService.SalesReport(c.Request.Context(), raw)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Items handles GET /api/v1/reports/items
// @Summary      Items report
// @Description  Paginated inventory with stock value, low-stock count, turnover rates
// @Tags         reports
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        search query string false "Match item name or description"
// @Param        sort query string false "Sort field; leading - for descending" Enums(name, price, quantity, created_at)
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=service.ItemsReportResult}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/items [get]
func (h *ReportHandler) Items(c *gin.Context) {
	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.reportService.ItemsReport(c.Request.Context(), raw)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// CustomerLedger handles GET /api/v1/reports/customers/:id
// @Summary      Customer ledger report
// @Description  One customer's purchase history with outstanding totals
// @Tags         reports
// @Produce      json
// @Param        id path string true "Customer UUID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        sort query string false "Sort field; leading - for descending" Enums(date, quantity, created_at)
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=service.LedgerResult}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/customers/{id} [get]
func (h *ReportHandler) CustomerLedger(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid customer id")
		return
	}

	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.reportService.CustomerLedger(c.Request.Context(), customerID, raw)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// exportAck is the response body when an export is mailed instead of
// downloaded.
type exportAck struct {
	Delivered bool   `json:"delivered"`
	FileName  string `json:"file_name"`
	Email     string `json:"email"`
}

// Export handles GET /api/v1/reports/export
// @Summary      Export a report
// @Description  Renders the full filtered set as a file; downloads it, or emails it when an address is given
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        type query string true "Report type" Enums(sales, items, ledger)
// @Param        format query string true "File format" Enums(excel, pdf)
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        customerId query string false "Customer UUID (required for ledger)"
// @Param        email query string false "Mail the file to this address instead of downloading"
// @Success      200 {object} APIResponse{data=exportAck}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	raw, err := parseReportParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	start, end, err := service.ParseDateRange(raw.StartDate, raw.EndDate)
	if err != nil {
		HandleError(c, err)
		return
	}

	req := domain.ExportRequest{
		Kind:       domain.ReportKind(c.Query("type")),
		Format:     domain.ExportFormat(c.Query("format")),
		CustomerID: raw.CustomerID,
		StartDate:  start,
		EndDate:    end,
		Email:      c.Query("email"),
	}

	result, err := h.reportService.Export(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	if result.Delivered {
		RespondOK(c, exportAck{Delivered: true, FileName: result.FileName, Email: req.Email})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
