package reimbursement

type CreateReimbursementRequest struct {
	EmployeeID  string  `json:"employeeId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date"`
	Status      string  `json:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
}

type ReimbursementResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
}
