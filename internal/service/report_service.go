package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
	"salesdesk/internal/export"
	"salesdesk/internal/port"
	"salesdesk/internal/report"
)

// mailTimeout bounds a single delivery attempt so a stuck transport cannot
// pin the request.
const mailTimeout = 30 * time.Second

// RawReportParams are the untrusted query parameters as the handler read
// them. The service normalizes them into a domain.ReportQuery.
type RawReportParams struct {
	Page       int
	Limit      int
	Search     string
	Sort       string
	StartDate  string
	EndDate    string
	CustomerID *uuid.UUID
}

// SalesReportResult is one page of resolved sales plus the full-set summary.
type SalesReportResult struct {
	Data       []domain.SaleRecord `json:"data"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	Summary    domain.SalesSummary `json:"summary"`
}

// ItemsReportResult is one page of resolved items plus the full-set summary.
type ItemsReportResult struct {
	Data       []domain.ItemRecord `json:"data"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	Summary    domain.ItemsSummary `json:"summary"`
}

// LedgerResult is one page of a customer's sales plus the ledger summary.
type LedgerResult struct {
	Data       []domain.SaleRecord  `json:"data"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
	Summary    domain.LedgerSummary `json:"summary"`
}

// ReportService produces paginated reports, summaries, and exports.
type ReportService interface {
	SalesReport(ctx context.Context, raw RawReportParams) (*SalesReportResult, error)
	ItemsReport(ctx context.Context, raw RawReportParams) (*ItemsReportResult, error)
	CustomerLedger(ctx context.Context, customerID uuid.UUID, raw RawReportParams) (*LedgerResult, error)
	Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error)
}

type reportService struct {
	saleRepo     port.SaleRepository
	itemRepo     port.ItemRepository
	customerRepo port.CustomerRepository
	sender       port.EmailSender
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	saleRepo port.SaleRepository,
	itemRepo port.ItemRepository,
	customerRepo port.CustomerRepository,
	sender port.EmailSender,
) ReportService {
	return &reportService{
		saleRepo:     saleRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		sender:       sender,
	}
}

// sortFields whitelists the sortable fields per report kind. Anything
// outside the set is a validation error rather than a pass-through into
// the store's ORDER BY.
var sortFields = map[domain.ReportKind]map[string]bool{
	domain.ReportSales:  {"date": true, "quantity": true, "created_at": true},
	domain.ReportLedger: {"date": true, "quantity": true, "created_at": true},
	domain.ReportItems:  {"name": true, "price": true, "quantity": true, "created_at": true},
}

// normalizeQuery turns raw request parameters into the canonical descriptor:
// defaults page=1 limit=10, a leading minus on sort means descending, absent
// sort means newest-first, and date bounds must parse as calendar dates.
func normalizeQuery(kind domain.ReportKind, raw RawReportParams) (domain.ReportQuery, error) {
	q := domain.ReportQuery{
		Page:       raw.Page,
		Limit:      raw.Limit,
		Search:     strings.TrimSpace(raw.Search),
		CustomerID: raw.CustomerID,
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	sortSpec := strings.TrimSpace(raw.Sort)
	if sortSpec == "" {
		q.SortField = "created_at"
		q.SortDesc = true
	} else {
		q.SortDesc = strings.HasPrefix(sortSpec, "-")
		q.SortField = strings.TrimPrefix(sortSpec, "-")
		if !sortFields[kind][q.SortField] {
			return q, fmt.Errorf("%w: field %q is not sortable for %s reports", domain.ErrValidation, q.SortField, kind)
		}
	}

	start, end, err := ParseDateRange(raw.StartDate, raw.EndDate)
	if err != nil {
		return q, err
	}
	q.StartDate = start
	q.EndDate = end
	return q, nil
}

// ParseDateRange parses inclusive YYYY-MM-DD bounds. The end bound is pushed
// to the last instant of its day so sales recorded later that day still match.
func ParseDateRange(startStr, endStr string) (start, end *time.Time, err error) {
	if startStr != "" {
		t, perr := time.Parse("2006-01-02", startStr)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: invalid start date %q, expected YYYY-MM-DD", domain.ErrValidation, startStr)
		}
		start = &t
	}
	if endStr != "" {
		t, perr := time.Parse("2006-01-02", endStr)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: invalid end date %q, expected YYYY-MM-DD", domain.ErrValidation, endStr)
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}
	return start, end, nil
}

func (s *reportService) SalesReport(ctx context.Context, raw RawReportParams) (*SalesReportResult, error) {
	q, err := normalizeQuery(domain.ReportSales, raw)
	if err != nil {
		return nil, err
	}

	records, total, err := s.saleRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	// The summary always covers the whole filtered set, not the page.
	all, err := s.saleRepo.ListAll(ctx, q.Unpaginated())
	if err != nil {
		return nil, err
	}

	return &SalesReportResult{
		Data:       records,
		Total:      total,
		Page:       q.Page,
		TotalPages: domain.TotalPages(total, q.Limit),
		Summary:    report.BuildSalesSummary(all, q.CustomerID != nil),
	}, nil
}

func (s *reportService) ItemsReport(ctx context.Context, raw RawReportParams) (*ItemsReportResult, error) {
	q, err := normalizeQuery(domain.ReportItems, raw)
	if err != nil {
		return nil, err
	}

	records, total, err := s.itemRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	allItems, err := s.itemRepo.ListAll(ctx, q.Unpaginated())
	if err != nil {
		return nil, err
	}

	// Turnover correlates the items against every sale in the same window.
	salesQ := domain.ReportQuery{StartDate: q.StartDate, EndDate: q.EndDate}
	sales, err := s.saleRepo.ListAll(ctx, salesQ)
	if err != nil {
		return nil, err
	}

	return &ItemsReportResult{
		Data:       records,
		Total:      total,
		Page:       q.Page,
		TotalPages: domain.TotalPages(total, q.Limit),
		Summary:    report.BuildItemsSummary(allItems, sales),
	}, nil
}

func (s *reportService) CustomerLedger(ctx context.Context, customerID uuid.UUID, raw RawReportParams) (*LedgerResult, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer id is required for ledger reports", domain.ErrValidation)
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	raw.CustomerID = &customerID
	q, err := normalizeQuery(domain.ReportLedger, raw)
	if err != nil {
		return nil, err
	}

	records, total, err := s.saleRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	all, err := s.saleRepo.ListAll(ctx, q.Unpaginated())
	if err != nil {
		return nil, err
	}

	return &LedgerResult{
		Data:       records,
		Total:      total,
		Page:       q.Page,
		TotalPages: domain.TotalPages(total, q.Limit),
		Summary:    report.BuildLedgerSummary(all),
	}, nil
}

// Export renders the entire filtered set for the requested kind and format.
// When a destination address is present the file is mailed; a transport
// failure comes back as a delivery error, but the export itself already
// succeeded by then.
func (s *reportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	if err := validateExportRequest(req); err != nil {
		return nil, err
	}

	data, err := s.buildDataset(ctx, req)
	if err != nil {
		return nil, err
	}

	content, err := export.Render(req.Kind, req.Format, *data)
	if err != nil {
		return nil, err
	}

	result := &domain.ExportResult{
		FileName:    export.FileName(req.Kind, req.Format),
		ContentType: req.Format.ContentType(),
		Content:     content,
	}

	if req.Email != "" {
		sendCtx, cancel := context.WithTimeout(ctx, mailTimeout)
		defer cancel()
		err := s.sender.SendReport(sendCtx, port.ReportEmail{
			To:          req.Email,
			Subject:     fmt.Sprintf("Your %s report", req.Kind),
			Body:        fmt.Sprintf("Attached is the %s report.", result.FileName),
			FileName:    result.FileName,
			ContentType: result.ContentType,
			Attachment:  content,
		})
		if err != nil {
			return result, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
		}
		result.Delivered = true
	}
	return result, nil
}

// validateExportRequest enforces the closed kind/format sets, the ledger
// customer scope, and the destination address shape.
func validateExportRequest(req domain.ExportRequest) error {
	switch req.Kind {
	case domain.ReportSales, domain.ReportItems, domain.ReportLedger:
	default:
		return fmt.Errorf("%w: type must be one of sales, items, ledger", domain.ErrValidation)
	}
	switch req.Format {
	case domain.FormatExcel, domain.FormatPDF:
	default:
		return fmt.Errorf("%w: format must be one of excel, pdf", domain.ErrValidation)
	}
	if req.Kind == domain.ReportLedger && req.CustomerID == nil {
		return fmt.Errorf("%w: customer id is required for ledger export", domain.ErrValidation)
	}
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return fmt.Errorf("%w: invalid email address %q", domain.ErrValidation, req.Email)
		}
	}
	return nil
}

// buildDataset fetches the unpaginated filtered set and its summary for the
// requested kind.
func (s *reportService) buildDataset(ctx context.Context, req domain.ExportRequest) (*export.Dataset, error) {
	q := domain.ReportQuery{
		SortField: "created_at",
		SortDesc:  true,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	switch req.Kind {
	case domain.ReportItems:
		items, err := s.itemRepo.ListAll(ctx, q)
		if err != nil {
			return nil, err
		}
		sales, err := s.saleRepo.ListAll(ctx, domain.ReportQuery{StartDate: q.StartDate, EndDate: q.EndDate})
		if err != nil {
			return nil, err
		}
		summary := report.BuildItemsSummary(items, sales)
		return &export.Dataset{Items: items, ItemsSummary: &summary}, nil

	case domain.ReportLedger:
		if _, err := s.customerRepo.GetByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
		q.CustomerID = req.CustomerID
		sales, err := s.saleRepo.ListAll(ctx, q)
		if err != nil {
			return nil, err
		}
		summary := report.BuildLedgerSummary(sales)
		return &export.Dataset{Sales: sales, LedgerSummary: &summary}, nil

	default: // domain.ReportSales
		sales, err := s.saleRepo.ListAll(ctx, q)
		if err != nil {
			return nil, err
		}
		summary := report.BuildSalesSummary(sales, false)
		return &export.Dataset{Sales: sales, SalesSummary: &summary}, nil
	}
}
