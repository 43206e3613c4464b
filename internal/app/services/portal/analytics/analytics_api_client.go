package analytics

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"net/url"

	"go.uber.org/zap"
)

type analyticsAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewAnalyticsAPIClient(client *transport.Client, logger *zap.Logger) contracts.AnalyticsAPIClient {
	return &analyticsAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *analyticsAPIClient) GetTrends(ctx context.Context, interval constvars.TrendInterval) (*responses.Trends, error) {
	c.Log.Info("analyticsAPIClient.GetTrends called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.String(constvars.URLQueryParamInterval, string(interval)),
	)

	query := url.Values{}
	query.Set(constvars.URLQueryParamInterval, string(interval))

	result := new(responses.Trends)
	err := c.Client.Do(ctx, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceTrends,
		Path:     constvars.ResourceTrends,
		Query:    query,
		Role:     constvars.RoleAdmin,
	}, result)
	if err != nil {
		return nil, err
	}
	if result.Interval == "" {
		result.Interval = interval
	}
	return result, nil
}
