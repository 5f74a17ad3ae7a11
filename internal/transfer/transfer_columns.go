package transfer

import (
	"strconv"

	"mployee/internal/employee"
)

// Row is one spreadsheet record keyed by column label.
type Row map[string]string

// Columns is the import/export contract, in file order. Both directions use
// the same labels, so a file exported here re-imports without edits.
var Columns = []string{
	"Employee ID",
	"Name",
	"Contact Number",
	"Email Address",
	"Address",
	"Designation",
	"Date of Joining",
	"Date of Birth",
	"Aadhar Number",
	"PAN Number",
	"EPF Number",
	"Employee Status",
	"Monthly Salary",
	"Annual Salary",
	"Performance Last Month",
	"Performance Last Quarter",
	"Performance Last Year",
	"Performance Overall",
}

func rowToEmployee(row Row) employee.Employee {
	return employee.Employee{
		ID:                   row["Employee ID"],
		Name:                 row["Name"],
		ContactNumber:        row["Contact Number"],
		Email:                row["Email Address"],
		Address:              row["Address"],
		Designation:          row["Designation"],
		DateOfJoining:        row["Date of Joining"],
		DateOfBirth:          row["Date of Birth"],
		AadharNumber:         row["Aadhar Number"],
		PANNumber:            row["PAN Number"],
		EPFNumber:            row["EPF Number"],
		Status:               row["Employee Status"],
		MonthlySalary:        parseAmount(row["Monthly Salary"]),
		AnnualSalary:         parseAmount(row["Annual Salary"]),
		PerformanceLastMonth: row["Performance Last Month"],
		PerformanceLastQtr:   row["Performance Last Quarter"],
		PerformanceLastYear:  row["Performance Last Year"],
		PerformanceOverall:   row["Performance Overall"],
	}
}

func employeeToRow(emp employee.Employee) Row {
	return Row{
		"Employee ID":              emp.ID,
		"Name":                     emp.Name,
		"Contact Number":           emp.ContactNumber,
		"Email Address":            emp.Email,
		"Address":                  emp.Address,
		"Designation":              emp.Designation,
		"Date of Joining":          emp.DateOfJoining,
		"Date of Birth":            emp.DateOfBirth,
		"Aadhar Number":            emp.AadharNumber,
		"PAN Number":               emp.PANNumber,
		"EPF Number":               emp.EPFNumber,
		"Employee Status":          emp.Status,
		"Monthly Salary":           formatAmount(emp.MonthlySalary),
		"Annual Salary":            formatAmount(emp.AnnualSalary),
		"Performance Last Month":   emp.PerformanceLastMonth,
		"Performance Last Quarter": emp.PerformanceLastQtr,
		"Performance Last Year":    emp.PerformanceLastYear,
		"Performance Overall":      emp.PerformanceOverall,
	}
}

// parseAmount mirrors a lenient numeric cell: anything unparseable is 0.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
