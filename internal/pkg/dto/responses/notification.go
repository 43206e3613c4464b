package responses

import (
	"konsulin-portal/internal/pkg/constvars"
	"time"
)

type Notification struct {
	ID        string                     `json:"id"`
	Type      constvars.NotificationType `json:"type"`
	Title     string                     `json:"title"`
	Message   string                     `json:"message"`
	Link      string                     `json:"link,omitempty"`
	IsRead    bool                       `json:"isRead"`
	CreatedAt time.Time                  `json:"createdAt"`
}

type NotificationList struct {
	Notifications  []Notification `json:"notifications"`
	PaginationData PaginationData `json:"paginationData"`
}

type UnreadCount struct {
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}
