package applications

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

// applicationAPIClient reads psychologist applications. The resource only
// exists under the admin namespace.
type applicationAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewApplicationAPIClient(client *transport.Client, logger *zap.Logger) contracts.ApplicationAPIClient {
	return &applicationAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *applicationAPIClient) ListApplications(ctx context.Context, request listing.Request) (*responses.ApplicationList, error) {
	c.Log.Info("applicationAPIClient.ListApplications called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	result := new(responses.ApplicationList)
	err := c.Client.Do(ctx, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceApplications,
		Path:     constvars.ResourceApplications,
		Query:    request.Query(),
		Role:     constvars.RoleAdmin,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *applicationAPIClient) FindApplicationByID(ctx context.Context, applicationID string) (*responses.ApplicationDetail, error) {
	c.Log.Info("applicationAPIClient.FindApplicationByID called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.ApplicationDetail)
	err := c.Client.Do(ctx, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceApplications,
		Path:     constvars.ResourceApplications + "/" + url.PathEscape(applicationID),
		Role:     constvars.RoleAdmin,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *applicationAPIClient) DecideApplication(ctx context.Context, applicationID string, request *requests.DecideApplication) (*responses.Message, error) {
	c.Log.Info("applicationAPIClient.DecideApplication called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.String("decision", request.Decision),
	)

	body, err := transport.EncodeJSON(request)
	if err != nil {
		return nil, err
	}

	result := new(responses.Message)
	err = c.Client.Do(ctx, transport.Request{
		Method:      constvars.MethodPatch,
		Resource:    constvars.ResourceApplications,
		Path:        constvars.ResourceApplications + "/" + url.PathEscape(applicationID),
		Body:        body,
		ContentType: constvars.MIMEApplicationJSON,
		Role:        constvars.RoleAdmin,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewFetcher(client contracts.ApplicationAPIClient) listing.Fetcher[responses.Application] {
	return listing.FetcherFunc[responses.Application](func(ctx context.Context, request listing.Request) (*listing.Page[responses.Application], error) {
		result, err := client.ListApplications(ctx, request)
		if err != nil {
			return nil, err
		}
		return &listing.Page[responses.Application]{Items: result.Applications, Pagination: result.PaginationData}, nil
	})
}
