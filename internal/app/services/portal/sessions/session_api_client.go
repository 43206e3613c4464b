package sessions

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"net/url"

	"go.uber.org/zap"
)

type sessionAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewSessionAPIClient(client *transport.Client, logger *zap.Logger) contracts.SessionAPIClient {
	return &sessionAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *sessionAPIClient) ListSessions(ctx context.Context, request listing.Request) (*responses.SessionList, error) {
	c.Log.Info("sessionAPIClient.ListSessions called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	result := new(responses.SessionList)
	err := c.Client.GetJSON(ctx, constvars.ResourceSessions, constvars.ResourceSessions, request.Query(), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *sessionAPIClient) FindSessionByID(ctx context.Context, sessionID string) (*responses.SessionDetail, error) {
	c.Log.Info("sessionAPIClient.FindSessionByID called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.SessionDetail)
	err := c.Client.GetJSON(ctx, constvars.ResourceSessions, constvars.ResourceSessions+"/"+url.PathEscape(sessionID), nil, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *sessionAPIClient) CancelSession(ctx context.Context, sessionID string, request *requests.CancelSession) (*responses.Message, error) {
	c.Log.Info("sessionAPIClient.CancelSession called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	payload := map[string]string{
		constvars.URLQueryParamStatus: string(constvars.SessionStatusCancelled),
	}
	if request != nil && request.Reason != "" {
		payload["reason"] = request.Reason
	}

	result := new(responses.Message)
	err := c.Client.SendJSON(ctx, constvars.MethodPatch, constvars.ResourceSessions, constvars.ResourceSessions+"/"+url.PathEscape(sessionID), payload, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *sessionAPIClient) BookSlot(ctx context.Context, slotID string, request *requests.BookSlot) (*responses.BookSlot, error) {
	c.Log.Info("sessionAPIClient.BookSlot called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	if request == nil {
		request = &requests.BookSlot{}
	}

	result := new(responses.BookSlot)
	err := c.Client.SendJSON(ctx, constvars.MethodPost, constvars.ResourceSlots, constvars.ResourceSlots+"/"+url.PathEscape(slotID)+"/book", request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NewFetcher adapts the client to the listing contract.
func NewFetcher(client contracts.SessionAPIClient) listing.Fetcher[responses.Session] {
	return listing.FetcherFunc[responses.Session](func(ctx context.Context, request listing.Request) (*listing.Page[responses.Session], error) {
		result, err := client.ListSessions(ctx, request)
		if err != nil {
			return nil, err
		}
		return &listing.Page[responses.Session]{Items: result.Sessions, Pagination: result.PaginationData}, nil
	})
}
