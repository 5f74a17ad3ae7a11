package payroll

type CalculateRequest struct {
	// EmployeeID, when set, resolves the monthly salary from the registry;
	// an explicit MonthlySalary wins when both are present.
	EmployeeID    string  `json:"employeeId"`
	MonthlySalary float64 `json:"monthlySalary"`
	DaysWorked    int     `json:"daysWorked" binding:"required"`
	TotalDays     int     `json:"totalDays"`
}

type PayslipResponse struct {
	EmployeeID     string                 `json:"employeeId"`
	EmployeeName   string                 `json:"employeeName"`
	Designation    string                 `json:"designation"`
	DateOfJoining  string                 `json:"dateOfJoining"`
	PANNumber      string                 `json:"panNumber"`
	EPFNumber      string                 `json:"epfNumber"`
	Month          string                 `json:"month"`
	MonthName      string                 `json:"monthName"`
	CompanyName    string                 `json:"companyName"`
	CompanyAddress string                 `json:"companyAddress"`
	Breakdown      PayslipBreakdownResult `json:"breakdown"`
	GeneratedAt    string                 `json:"generatedAt"`
}
