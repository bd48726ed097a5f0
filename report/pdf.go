// Package report renders the latest snapshot into the downloadable PDF
// dashboard report: a metric summary table followed by the profit-by-date
// table. Formatting only; all numbers come from the snapshot as-is.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"orderdash/models"
)

// Generate renders the snapshot as a PDF document.
func Generate(snap *models.Snapshot) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(46, 134, 193)
	pdf.CellFormat(0, 12, "Dashboard Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	totals := snap.Totals
	cat := snap.Categories
	summary := [][2]string{
		{"All Orders", fmt.Sprintf("%d", len(cat[models.BucketAll]))},
		{"RTO", fmt.Sprintf("%d", len(cat[models.BucketRTO]))},
		{"Door Step Exchanged (charges sum)", money(totals.TotalDoorStepExchanger)},
		{"Delivered (count & revenue)", fmt.Sprintf("%d (%s)", len(cat[models.BucketDelivered]), money(totals.DeliveredSupplierDiscountedPriceTotal))},
		{"Cancelled", fmt.Sprintf("%d", len(cat[models.BucketCancelled]))},
		{"Pending", fmt.Sprintf("%d", len(cat[models.BucketReadyToShip]))},
		{"Shipped", fmt.Sprintf("%d", len(cat[models.BucketShipped]))},
		{"Other", fmt.Sprintf("%d", len(cat[models.BucketOther]))},
		{"Supplier Listed Total Price", money(totals.TotalSupplierListedPrice)},
		{"Supplier Discounted Total Price", money(totals.TotalSupplierDiscountedPrice)},
		{"Total Profit (Revenue - Cost)", money(totals.TotalProfit)},
		{"Profit % (of Revenue)", fmt.Sprintf("%.2f%%", totals.ProfitPercentRevenue)},
		{"Profit % (of Cost)", fmt.Sprintf("%.2f%%", totals.ProfitPercentCost)},
	}

	table(pdf, []string{"Metric", "Value"}, []float64{110, 70}, func(emit func(...string)) {
		for _, row := range summary {
			emit(row[0], row[1])
		}
	})

	pdf.Ln(8)

	table(pdf, []string{"Date", "Profit", "Profit % (Revenue)", "Profit % (Cost)"}, []float64{45, 45, 45, 45}, func(emit func(...string)) {
		for _, p := range snap.ProfitByDate {
			emit(
				p.Date,
				money(p.Profit),
				fmt.Sprintf("%.2f%%", p.ProfitPercentRevenue),
				fmt.Sprintf("%.2f%%", p.ProfitPercentCost),
			)
		}
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

// table draws a simple bordered table with a bold header row.
func table(pdf *fpdf.Fpdf, headers []string, widths []float64, fill func(emit func(...string))) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(235, 240, 245)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	fill(func(cells ...string) {
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	})
}
