package company

type UpdateSettingsRequest struct {
	CompanyName    string `json:"companyName" binding:"required"`
	EmployerName   string `json:"employerName"`
	ContactNumber  string `json:"contactNumber"`
	CompanyAddress string `json:"companyAddress"`
	Logo           string `json:"logo"`
}

type SettingsResponse struct {
	CompanyName    string `json:"companyName"`
	EmployerName   string `json:"employerName"`
	ContactNumber  string `json:"contactNumber"`
	CompanyAddress string `json:"companyAddress"`
	Logo           string `json:"logo,omitempty"`
}
