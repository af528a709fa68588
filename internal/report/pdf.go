package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"fleetflow/internal/model"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Vehicle", 40},
	{"Type", 22},
	{"Status", 28},
	{"Revenue", 32},
	{"Costs", 32},
	{"ROI %", 24},
}

// BuildPDF renders the bulk vehicle export as a paginated report table.
func BuildPDF(rows []model.ExportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "FleetFlow Analytics Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(245, 245, 245)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(245, 245, 220)
	}
	writeHeader()

	for _, row := range rows {
		if pdf.GetY() > 250 {
			pdf.AddPage()
			writeHeader()
		}
		cells := []string{
			row.VehicleName,
			string(row.VehicleType),
			string(row.Status),
			fmt.Sprintf("%.2f", row.Revenue),
			fmt.Sprintf("%.2f", row.Costs),
			fmt.Sprintf("%.2f%%", row.ROI),
		}
		for i, cell := range cells {
			pdf.CellFormat(pdfColumns[i].width, 8, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
