package psychologists

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"net/url"

	"go.uber.org/zap"
)

type psychologistAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewPsychologistAPIClient(client *transport.Client, logger *zap.Logger) contracts.PsychologistAPIClient {
	return &psychologistAPIClient{
		Client: client,
		Log:    logger,
	}
}

// ListPsychologists pages by offset: the backend takes skip and limit
// instead of page.
func (c *psychologistAPIClient) ListPsychologists(ctx context.Context, request listing.Request) (*responses.PsychologistList, error) {
	c.Log.Info("psychologistAPIClient.ListPsychologists called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	result := new(responses.PsychologistList)
	err := c.Client.GetJSON(ctx, constvars.ResourcePsychologists, constvars.ResourcePsychologists, request.OffsetQuery(), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *psychologistAPIClient) FindPsychologistByID(ctx context.Context, psychologistID string) (*responses.PsychologistDetail, error) {
	c.Log.Info("psychologistAPIClient.FindPsychologistByID called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.PsychologistDetail)
	err := c.Client.GetJSON(ctx, constvars.ResourcePsychologists, constvars.ResourcePsychologists+"/"+url.PathEscape(psychologistID), nil, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *psychologistAPIClient) FindSlots(ctx context.Context, psychologistID, date string) (*responses.SlotList, error) {
	c.Log.Info("psychologistAPIClient.FindSlots called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	query := url.Values{}
	if date != "" {
		query.Set(constvars.URLQueryParamDate, date)
	}

	result := new(responses.SlotList)
	err := c.Client.GetJSON(ctx, constvars.ResourceSlots, constvars.ResourcePsychologists+"/"+url.PathEscape(psychologistID)+"/slots", query, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewFetcher(client contracts.PsychologistAPIClient) listing.Fetcher[responses.PsychologistSummary] {
	return listing.FetcherFunc[responses.PsychologistSummary](func(ctx context.Context, request listing.Request) (*listing.Page[responses.PsychologistSummary], error) {
		result, err := client.ListPsychologists(ctx, request)
		if err != nil {
			return nil, err
		}
		return &listing.Page[responses.PsychologistSummary]{Items: result.Psychologists, Pagination: result.PaginationData}, nil
	})
}
