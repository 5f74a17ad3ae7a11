package transfer

import (
	"bytes"
	"fmt"
	"time"

	"mployee/internal/company"
	"mployee/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

// renderRosterPDF lays out the employee list as numbered entries with a
// detail block per employee, breaking pages as it fills.
func renderRosterPDF(records []employee.Employee, settings company.Settings, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	if settings.CompanyName != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.CellFormat(0, 10, settings.CompanyName, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Employee List", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Generated on: %s", generatedAt.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	for i, emp := range records {
		// A full entry is ~40mm; start a new page rather than split one.
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s (%s)", i+1, emp.Name, emp.ID), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		detailLine(pdf, "Designation", orNA(emp.Designation))
		detailLine(pdf, "Contact", orNA(emp.ContactNumber))
		detailLine(pdf, "Email", orNA(emp.Email))
		detailLine(pdf, "Status", emp.Status)
		detailLine(pdf, "Monthly Salary", fmt.Sprintf("Rs %.2f", emp.MonthlySalary))
		pdf.Ln(4)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func detailLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(0, 5, fmt.Sprintf("    %s: %s", label, value), "", 1, "L", false, 0, "")
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
