package store

import (
	"bytes"
	"fmt"

	"inventory-manager/core/utils"

	"github.com/go-pdf/fpdf"
)

// Filename returns the download name of a report, e.g. "Downtown-Books-Report-2024-03-01.pdf".
func Filename(r *Report) string {
	slug := utils.Slugify(r.Store.Name)
	if slug == "" {
		slug = fmt.Sprintf("Store-%d", r.Store.ID)
	}
	return fmt.Sprintf("%s-Report-%s.pdf", slug, r.GeneratedAt.Format("2006-01-02"))
}

// RenderPDF lays out a report as a PDF document.
func RenderPDF(r *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetTitle("Store Report", true)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	n := r.TopN
	if n <= 0 {
		n = DefaultTopN
	}
	date := r.GeneratedAt.Format("2006-01-02")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Store Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 7, tr("Store: "+r.Store.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr("Address: "+r.Store.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Date: "+date, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	section(pdf, fmt.Sprintf("Top %d Priciest Books", n))
	if len(r.TopPriced) == 0 {
		placeholder(pdf, "No books available in inventory.")
	}
	for i, b := range r.TopPriced {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%d. %s", i+1, b.Title)), "", 1, "L", false, 0, "")
		detail(pdf, tr("Author: "+b.Author))
		detail(pdf, fmt.Sprintf("Pages: %d", b.Pages))
		detail(pdf, "Price: $"+b.Price.StringFixed(2))
		detail(pdf, fmt.Sprintf("Copies: %d", b.Copies))
		pdf.Ln(2)
	}
	pdf.Ln(8)

	section(pdf, fmt.Sprintf("Top %d Prolific Authors", n))
	if len(r.TopAuthors) == 0 {
		placeholder(pdf, "No authors with available books.")
	}
	for i, a := range r.TopAuthors {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%d. %s", i+1, a.AuthorName)), "", 1, "L", false, 0, "")
		detail(pdf, fmt.Sprintf("Available Books: %d", a.BookCount))
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "BU", 16)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func placeholder(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "I", 12)
	pdf.SetX(pdf.GetX() + 7)
	pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
}

func detail(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(pdf.GetX() + 10)
	pdf.CellFormat(0, 5, text, "", 1, "L", false, 0, "")
}
