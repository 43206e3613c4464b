package responses

import (
	"konsulin-portal/internal/pkg/constvars"
	"time"
)

type Complaint struct {
	ID          string                    `json:"id"`
	SessionID   string                    `json:"sessionId"`
	UserID      string                    `json:"userId"`
	UserName    string                    `json:"userName,omitempty"`
	Subject     string                    `json:"subject"`
	Description string                    `json:"description"`
	Status      constvars.ComplaintStatus `json:"status"`
	Resolution  string                    `json:"resolution,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
}

type ComplaintList struct {
	Complaints     []Complaint    `json:"complaints"`
	PaginationData PaginationData `json:"paginationData"`
}

type ComplaintRow struct {
	Complaint
	Badge StatusBadge `json:"badge"`
}
