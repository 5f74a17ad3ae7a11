package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderPayslipPDF lays out the salary slip: company header, employee
// block, earnings/deductions table, net salary. Amounts are rounded to two
// fraction digits here and nowhere earlier.
func renderPayslipPDF(slip PayslipResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	companyName := slip.CompanyName
	if companyName == "" {
		companyName = "Company Name"
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, slip.CompanyAddress, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Salary Slip - %s", slip.MonthName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(95, 7, fmt.Sprintf("Employee ID: %s", slip.EmployeeID))
	pdf.Cell(95, 7, fmt.Sprintf("Date of Joining: %s", orNA(slip.DateOfJoining)))
	pdf.Ln(7)
	pdf.Cell(95, 7, fmt.Sprintf("Employee Name: %s", slip.EmployeeName))
	pdf.Cell(95, 7, fmt.Sprintf("PAN Number: %s", orNA(slip.PANNumber)))
	pdf.Ln(7)
	pdf.Cell(95, 7, fmt.Sprintf("Designation: %s", orNA(slip.Designation)))
	pdf.Cell(95, 7, fmt.Sprintf("EPF Number: %s", orNA(slip.EPFNumber)))
	pdf.Ln(12)

	b := slip.Breakdown

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(248, 249, 250)
	pdf.CellFormat(55, 8, "Earnings", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Amount (Rs)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(55, 8, "Deductions", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Amount (Rs)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	tableRow(pdf, "Basic Salary", b.BasicSalary, "Provident Fund", b.ProvidentFund)
	tableRow(pdf, fmt.Sprintf("HRA (%.0f%%)", HRARate*100), b.HRA, "Tax Deduction", b.Tax)
	pdf.CellFormat(55, 8, fmt.Sprintf("DA (%.0f%%)", DARate*100), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, amount(b.DA), "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, "", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(55, 8, "Gross Salary", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, amount(b.GrossSalary), "1", 0, "R", true, 0, "")
	pdf.CellFormat(55, 8, "Total Deductions", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, amount(b.TotalDeductions), "1", 1, "R", true, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Net Salary: Rs %s", amount(b.NetSalary)), "", 1, "C", false, 0, "")

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(95, 6, "Employee Signature")
	pdf.Cell(95, 6, "HR Signature")
	pdf.Ln(16)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s", slip.GeneratedAt), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "This is a computer-generated salary slip and does not require a signature.", "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func tableRow(pdf *gofpdf.Fpdf, left string, leftAmt float64, right string, rightAmt float64) {
	pdf.CellFormat(55, 8, left, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, amount(leftAmt), "1", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, right, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, amount(rightAmt), "1", 1, "R", false, 0, "")
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
