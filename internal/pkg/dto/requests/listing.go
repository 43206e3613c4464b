package requests

type SessionListQuery struct {
	Pagination
	Status string `json:"status" validate:"omitempty,session_status"`
}

type PsychologistListQuery struct {
	Pagination
	Specialization string `json:"specialization" validate:"omitempty,max=64"`
	Gender         string `json:"gender" validate:"omitempty,gender"`
	Date           string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Sort           string `json:"sort" validate:"omitempty,psychologist_sort"`
	Search         string `json:"search" validate:"omitempty,max=100"`
}

type NotificationListQuery struct {
	Pagination
}

type ComplaintListQuery struct {
	Pagination
	Status string `json:"status" validate:"omitempty,complaint_status"`
}

type ApplicationListQuery struct {
	Pagination
	Status string `json:"status" validate:"omitempty,application_status"`
}

type TransactionListQuery struct {
	Pagination
	Status string `json:"status" validate:"omitempty,transaction_status"`
}

type TrendQuery struct {
	Interval string `json:"interval" validate:"required,trend_interval"`
}

type SlotQuery struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
