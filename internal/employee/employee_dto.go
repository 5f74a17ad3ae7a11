package employee

type CreateEmployeeRequest struct {
	// ID is optional; the registry allocates the next EMP number when empty.
	ID                   string  `json:"id"`
	Name                 string  `json:"name" binding:"required"`
	ContactNumber        string  `json:"contactNumber"`
	Email                string  `json:"email" binding:"omitempty,email"`
	Address              string  `json:"address"`
	Designation          string  `json:"designation"`
	DateOfJoining        string  `json:"dateOfJoining"`
	DateOfBirth          string  `json:"dateOfBirth"`
	AadharNumber         string  `json:"aadharNumber"`
	PANNumber            string  `json:"panNumber"`
	EPFNumber            string  `json:"epfNumber"`
	Status               string  `json:"status"`
	MonthlySalary        float64 `json:"monthlySalary" binding:"omitempty,gte=0"`
	AnnualSalary         float64 `json:"annualSalary" binding:"omitempty,gte=0"`
	PerformanceLastMonth string  `json:"performanceLastMonth"`
	PerformanceLastQtr   string  `json:"performanceLastQuarter"`
	PerformanceLastYear  string  `json:"performanceLastYear"`
	PerformanceOverall   string  `json:"performanceOverall"`
	Photo                string  `json:"photo"`
}

// UpdateEmployeeRequest carries a full replacement record, not a patch.
type UpdateEmployeeRequest struct {
	Name                 string  `json:"name" binding:"required"`
	ContactNumber        string  `json:"contactNumber"`
	Email                string  `json:"email" binding:"omitempty,email"`
	Address              string  `json:"address"`
	Designation          string  `json:"designation"`
	DateOfJoining        string  `json:"dateOfJoining"`
	DateOfBirth          string  `json:"dateOfBirth"`
	AadharNumber         string  `json:"aadharNumber"`
	PANNumber            string  `json:"panNumber"`
	EPFNumber            string  `json:"epfNumber"`
	Status               string  `json:"status"`
	MonthlySalary        float64 `json:"monthlySalary" binding:"omitempty,gte=0"`
	AnnualSalary         float64 `json:"annualSalary" binding:"omitempty,gte=0"`
	PerformanceLastMonth string  `json:"performanceLastMonth"`
	PerformanceLastQtr   string  `json:"performanceLastQuarter"`
	PerformanceLastYear  string  `json:"performanceLastYear"`
	PerformanceOverall   string  `json:"performanceOverall"`
	Photo                string  `json:"photo"`
}

type EmployeeResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	ContactNumber        string  `json:"contactNumber"`
	Email                string  `json:"email"`
	Address              string  `json:"address"`
	Designation          string  `json:"designation"`
	DateOfJoining        string  `json:"dateOfJoining"`
	DateOfBirth          string  `json:"dateOfBirth"`
	AadharNumber         string  `json:"aadharNumber"`
	PANNumber            string  `json:"panNumber"`
	EPFNumber            string  `json:"epfNumber"`
	Status               string  `json:"status"`
	MonthlySalary        float64 `json:"monthlySalary"`
	AnnualSalary         float64 `json:"annualSalary"`
	PerformanceLastMonth string  `json:"performanceLastMonth"`
	PerformanceLastQtr   string  `json:"performanceLastQuarter"`
	PerformanceLastYear  string  `json:"performanceLastYear"`
	PerformanceOverall   string  `json:"performanceOverall"`
	Photo                string  `json:"photo,omitempty"`
}

// EmployeeOption is the dropdown projection: "Name (EMP001)".
type EmployeeOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type NextIDResponse struct {
	NextID string `json:"nextId"`
}
