package reimbursement

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Reimbursement references its employee by ID only. The reference is not
// enforced: deleting the employee leaves it dangling on purpose.
type Reimbursement struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
}
