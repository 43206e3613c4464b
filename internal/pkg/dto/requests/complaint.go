package requests

type CreateComplaint struct {
	SessionID   string `json:"sessionId" validate:"required"`
	Subject     string `json:"subject" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=2000"`
}

type UpdateComplaint struct {
	Status     string `json:"status" validate:"required,complaint_status"`
	Resolution string `json:"resolution" validate:"required_if=Status resolved,max=2000"`
}
