package contracts

import (
	"context"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
)

type SessionAPIClient interface {
	ListSessions(ctx context.Context, request listing.Request) (*responses.SessionList, error)
	FindSessionByID(ctx context.Context, sessionID string) (*responses.SessionDetail, error)
	CancelSession(ctx context.Context, sessionID string, request *requests.CancelSession) (*responses.Message, error)
	BookSlot(ctx context.Context, slotID string, request *requests.BookSlot) (*responses.BookSlot, error)
}
