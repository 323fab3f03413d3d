package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"salesdesk/internal/domain"
)

// PDF layout constants (A4 portrait, millimetres).
const (
	pdfMargin    = 12.0
	pdfRowH      = 7.0
	pdfTitleH    = 12.0
	pdfHeaderH   = 8.0
	pdfFooterH   = 16.0
	pdfPageH     = 297.0
)

// renderPDF lays the report out in two passes: the first pass only measures
// how many pages the row table and summary block need, the second pass draws
// them with a "Page X of Y" footer stamped from the measured total.
func renderPDF(kind domain.ReportKind, data Dataset) ([]byte, error) {
	rows := bodyRows(kind, data)
	summary := summaryRows(kind, data)

	// Pass 1: measure. One spacer line separates the table from the summary.
	lines := len(rows) + 1 + len(summary)
	totalPages := measurePages(lines)

	// Pass 2: draw with the known page count.
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfFooterH)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfFooterH)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of %d", pdf.PageNo(), totalPages),
			"", 0, "C", false, 0, "")
	})

	widths := colWidths(kind)
	header := headerFor(kind)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		for i, h := range header {
			pdf.CellFormat(widths[i], pdfHeaderH, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	newPage := func(first bool) {
		pdf.AddPage()
		if first {
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, pdfTitleH, titleFor(kind), "", 1, "C", false, 0, "")
		}
		drawHeader()
	}

	newPage(true)
	capacity := pageCapacity(true)
	lineOnPage := 0

	ensureRoom := func() {
		if lineOnPage >= capacity {
			newPage(false)
			capacity = pageCapacity(false)
			lineOnPage = 0
		}
	}

	for _, row := range rows {
		ensureRoom()
		for i, cell := range row {
			pdf.CellFormat(widths[i], pdfRowH, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		lineOnPage++
	}

	ensureRoom()
	pdf.Ln(pdfRowH)
	lineOnPage++

	for _, row := range summary {
		ensureRoom()
		if len(row) == 1 {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, pdfRowH, row[0], "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
		} else {
			pdf.CellFormat(0, pdfRowH, strings.Join(row, "   "), "", 1, "L", false, 0, "")
		}
		lineOnPage++
	}

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %s", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pageCapacity returns how many body lines fit on a page. The first page
// loses room to the report title; every page carries the column header and
// reserves the footer band.
func pageCapacity(first bool) int {
	usable := pdfPageH - 2*pdfMargin - pdfFooterH - pdfHeaderH
	if first {
		usable -= pdfTitleH
	}
	return int(usable / pdfRowH)
}

// measurePages computes the page count for a given number of body lines.
func measurePages(lines int) int {
	pages := 1
	remaining := lines - pageCapacity(true)
	for remaining > 0 {
		pages++
		remaining -= pageCapacity(false)
	}
	return pages
}

// colWidths distributes the usable width across the kind's columns.
func colWidths(kind domain.ReportKind) []float64 {
	if kind == domain.ReportItems {
		// Name, Description, Quantity, Price, Total Value, Created By
		return []float64{34, 50, 16, 22, 24, 40}
	}
	// Item, Customer, Quantity, Unit Price, Total Price, Date, Payment Type
	return []float64{36, 32, 16, 22, 24, 30, 26}
}
