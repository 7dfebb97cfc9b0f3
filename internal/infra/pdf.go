package infra

// pdf.go renders the driver haul sheet for one Workday on US Letter:
// header with driver and hours, one row per haul, and the day's totals.

import (
	"fmt"
	"io"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// WriteHaulSheetPDF writes the haul sheet of wd to w. wd.Driver and wd.Hauls
// must be loaded.
func WriteHaulSheetPDF(w io.Writer, wd *model.Workday) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	driver := ""
	if wd.Driver != nil {
		driver = wd.Driver.FullName()
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Haul Sheet", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, "Driver: "+driver, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Date: "+wd.Date.Format("Mon Jan 2, 2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("CH hours: %s   NC hours: %s", wd.CHHours.StringFixed(2), wd.NCHours.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	cols := []struct {
		title string
		width float64
		align string
	}{
		{"Time", 0.08, "L"},
		{"Customer", 0.22, "L"},
		{"Invoice", 0.10, "L"},
		{"Material", 0.22, "L"},
		{"Load", 0.08, "C"},
		{"Qty", 0.09, "R"},
		{"Rate", 0.10, "R"},
		{"Amount", 0.11, "R"},
	}

	pdf.SetFont("Helvetica", "B", 9)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(contentW*c.width, 6, c.title, "B", ln, c.align, false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	quantities := map[string]decimal.Decimal{}
	for _, h := range wd.Hauls {
		invoice := ""
		if h.InvoiceNumber != nil {
			invoice = *h.InvoiceNumber
		}
		amount := h.Amount()
		total = total.Add(amount)
		quantities[h.LoadType] = quantities[h.LoadType].Add(h.Quantity)

		row := []string{
			h.DateTime.Format("15:04"),
			truncate(h.Customer, 32),
			invoice,
			truncate(h.Material, 32),
			h.LoadType,
			h.Quantity.StringFixed(2),
			"$" + h.Rate.StringFixed(2),
			"$" + amount.StringFixed(2),
		}
		for i, c := range cols {
			ln := 0
			if i == len(cols)-1 {
				ln = 1
			}
			pdf.CellFormat(contentW*c.width, 6, row[i], "", ln, c.align, false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	summary := fmt.Sprintf("%d hauls", len(wd.Hauls))
	for _, lt := range []string{"tons", "yards"} {
		if q, ok := quantities[lt]; ok {
			summary += fmt.Sprintf("   %s %s", q.StringFixed(2), lt)
		}
	}
	pdf.CellFormat(contentW*0.7, 7, summary, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 7, "Total: $"+total.StringFixed(2), "", 1, "R", false, 0, "")

	if wd.Notes != nil && *wd.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, "Notes: "+*wd.Notes, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write haul sheet: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
