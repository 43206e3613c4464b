package responses

import (
	"konsulin-portal/internal/pkg/constvars"
	"time"
)

type ApplicationDocument struct {
	Name      string `json:"name"`
	ObjectKey string `json:"objectKey"`
	URL       string `json:"url,omitempty"`
}

type Application struct {
	ID              string                      `json:"id"`
	Fullname        string                      `json:"fullname"`
	Email           string                      `json:"email"`
	LicenseNumber   string                      `json:"licenseNumber"`
	Specializations []string                    `json:"specializations"`
	Documents       []ApplicationDocument       `json:"documents,omitempty"`
	Status          constvars.ApplicationStatus `json:"status"`
	RejectReason    string                      `json:"rejectReason,omitempty"`
	SubmittedAt     time.Time                   `json:"submittedAt"`
}

type ApplicationList struct {
	Applications   []Application  `json:"applications"`
	PaginationData PaginationData `json:"paginationData"`
}

type ApplicationDetail struct {
	Application Application `json:"application"`
}

type ApplicationRow struct {
	Application
	Badge StatusBadge `json:"badge"`
}
