package responses

import (
	"konsulin-portal/internal/pkg/constvars"
	"time"
)

type Session struct {
	ID               string                  `json:"id"`
	UserID           string                  `json:"userId"`
	UserName         string                  `json:"userName,omitempty"`
	PsychologistID   string                  `json:"psychologistId"`
	PsychologistName string                  `json:"psychologistName,omitempty"`
	SlotID           string                  `json:"slotId,omitempty"`
	StartTime        time.Time               `json:"startTime"`
	EndTime          time.Time               `json:"endTime"`
	Status           constvars.SessionStatus `json:"status"`
	MeetingURL       string                  `json:"meetingUrl,omitempty"`
	Price            float64                 `json:"price"`
	CancelReason     string                  `json:"cancelReason,omitempty"`
}

type SessionList struct {
	Sessions       []Session      `json:"sessions"`
	PaginationData PaginationData `json:"paginationData"`
}

type SessionDetail struct {
	Session Session `json:"session"`
}

type BookSlot struct {
	Session Session `json:"session"`
	Message string  `json:"message"`
}

type SessionRow struct {
	Session
	Badge StatusBadge `json:"badge"`
}
