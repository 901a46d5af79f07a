package dto

// ContactRequest 联系卖家表单
type ContactRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
