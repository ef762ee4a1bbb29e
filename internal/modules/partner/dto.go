package partner

type InquiryRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone,omitempty"`
	CompanyName     string `json:"company_name" binding:"required"`
	CompanyCategory string `json:"company_category,omitempty"`
	Website         string `json:"website,omitempty"`
	Message         string `json:"message" binding:"required"`
}
