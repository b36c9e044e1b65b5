package inquiries

type CreateInquiryRequest struct {
	TourID  string `json:"tour_id" binding:"omitempty,uuid"`
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Subject string `json:"subject" binding:"required,min=1,max=255"`
	Message string `json:"message" binding:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new in_progress resolved"`
}

type InquiryListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=new in_progress resolved"`
	TourID string `form:"tour_id" binding:"omitempty,uuid"`
	Search string `form:"search"`
}

type PaginatedInquiries struct {
	Inquiries  []Inquiry `json:"inquiries"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
