package notifications

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type notificationAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewNotificationAPIClient(client *transport.Client, logger *zap.Logger) contracts.NotificationAPIClient {
	return &notificationAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *notificationAPIClient) ListNotifications(ctx context.Context, request listing.Request) (*responses.NotificationList, error) {
	c.Log.Info("notificationAPIClient.ListNotifications called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	result := new(responses.NotificationList)
	err := c.Client.GetJSON(ctx, constvars.ResourceNotifications, constvars.ResourceNotifications, request.Query(), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *notificationAPIClient) MarkAllRead(ctx context.Context) (*responses.Message, error) {
	c.Log.Info("notificationAPIClient.MarkAllRead called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.Message)
	err := c.Client.SendJSON(ctx, constvars.MethodPatch, constvars.ResourceNotifications, constvars.ResourceNotifications, nil, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *notificationAPIClient) GetUnreadCount(ctx context.Context) (*responses.UnreadCount, error) {
	c.Log.Info("notificationAPIClient.GetUnreadCount called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.UnreadCount)
	err := c.Client.GetJSON(ctx, constvars.ResourceUnreadCount, constvars.ResourceUnreadCount, nil, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewFetcher(client contracts.NotificationAPIClient) listing.Fetcher[responses.Notification] {
	return listing.FetcherFunc[responses.Notification](func(ctx context.Context, request listing.Request) (*listing.Page[responses.Notification], error) {
		result, err := client.ListNotifications(ctx, request)
		if err != nil {
			return nil, err
		}
		return &listing.Page[responses.Notification]{Items: result.Notifications, Pagination: result.PaginationData}, nil
	})
}
