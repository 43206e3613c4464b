package notifications

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

// Service is the per-request counterpart of Feed used by the HTTP server.
// The unread count of each user is cached in an UnreadCountBackend; as in
// Feed, only MarkAllRead and RefreshUnreadCount write it.
type Service struct {
	Client   contracts.NotificationAPIClient
	Backend  contracts.UnreadCountBackend
	Observer CacheObserver
	Log      *zap.Logger
}

type CacheObserver interface {
	RecordCacheOperation(hit bool, duration time.Duration)
}

func NewService(client contracts.NotificationAPIClient, backend contracts.UnreadCountBackend, logger *zap.Logger) *Service {
	return &Service{
		Client:  client,
		Backend: backend,
		Log:     logger,
	}
}

// UnreadCount serves the cached count, fetching it on a miss.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	principal, ok := models.PrincipalFromContext(ctx)
	if !ok {
		return 0, exceptions.ErrMissingPrincipal(nil)
	}

	start := time.Now()
	count, found, err := s.Backend.Load(ctx, principal.UserID)
	if s.Observer != nil {
		s.Observer.RecordCacheOperation(found, time.Since(start))
	}
	if err != nil {
		s.Log.Warn("notifications.Service.UnreadCount cache read failed, falling back to backend",
			zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
	if found {
		return count, nil
	}
	return s.RefreshUnreadCount(ctx)
}

func (s *Service) RefreshUnreadCount(ctx context.Context) (int, error) {
	principal, ok := models.PrincipalFromContext(ctx)
	if !ok {
		return 0, exceptions.ErrMissingPrincipal(nil)
	}

	result, err := s.Client.GetUnreadCount(ctx)
	if err != nil {
		return 0, err
	}
	s.save(ctx, principal.UserID, result.Count)
	return result.Count, nil
}

func (s *Service) MarkAllRead(ctx context.Context) (*responses.Message, error) {
	principal, ok := models.PrincipalFromContext(ctx)
	if !ok {
		return nil, exceptions.ErrMissingPrincipal(nil)
	}

	result, err := s.Client.MarkAllRead(ctx)
	if err != nil {
		return nil, err
	}
	s.save(ctx, principal.UserID, 0)
	return result, nil
}

// Invalidate drops the cached count of userID so the next read refetches.
func (s *Service) Invalidate(ctx context.Context, userID string) error {
	return s.Backend.Invalidate(ctx, userID)
}

func (s *Service) save(ctx context.Context, userID string, count int) {
	if err := s.Backend.Save(ctx, userID, count); err != nil {
		s.Log.Warn("notifications.Service cache write failed",
			zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
}
