package employee

// Status values drive UI badge styling only; the registry stores whatever
// it is given.
const (
	StatusActive     = "Active"
	StatusInactive   = "Inactive"
	StatusOnLeave    = "On Leave"
	StatusTerminated = "Terminated"
)

// DefaultRating is used wherever a performance rating is absent.
const DefaultRating = "Good"

// Employee is the persisted record. JSON field names are the wire format of
// the stored employee document and must stay stable across releases.
type Employee struct {
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
	// Photo is a self-contained data URI, or empty when none was uploaded.
	Photo string `json:"photo,omitempty"`
}
