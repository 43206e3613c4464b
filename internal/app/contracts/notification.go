package contracts

import (
	"context"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/responses"
)

type NotificationAPIClient interface {
	ListNotifications(ctx context.Context, request listing.Request) (*responses.NotificationList, error)
	MarkAllRead(ctx context.Context) (*responses.Message, error)
	GetUnreadCount(ctx context.Context) (*responses.UnreadCount, error)
}

// UnreadCountBackend persists the unread badge value for one user.
type UnreadCountBackend interface {
	Load(ctx context.Context, userID string) (count int, found bool, err error)
	Save(ctx context.Context, userID string, count int) error
	Invalidate(ctx context.Context, userID string) error
}
