package complaints

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

type complaintAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewComplaintAPIClient(client *transport.Client, logger *zap.Logger) contracts.ComplaintAPIClient {
	return &complaintAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *complaintAPIClient) ListComplaints(ctx context.Context, request listing.Request) (*responses.ComplaintList, error) {
	c.Log.Info("complaintAPIClient.ListComplaints called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	result := new(responses.ComplaintList)
	err := c.Client.GetJSON(ctx, constvars.ResourceComplaints, constvars.ResourceComplaints, request.Query(), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateComplaint is only offered to users, whatever role the caller holds.
func (c *complaintAPIClient) CreateComplaint(ctx context.Context, request *requests.CreateComplaint) (*responses.Message, error) {
	c.Log.Info("complaintAPIClient.CreateComplaint called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.Message)
	err := c.send(ctx, constvars.MethodPost, constvars.RoleUser, constvars.ResourceComplaints, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *complaintAPIClient) UpdateComplaint(ctx context.Context, complaintID string, request *requests.UpdateComplaint) (*responses.Message, error) {
	c.Log.Info("complaintAPIClient.UpdateComplaint called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.Message)
	err := c.send(ctx, constvars.MethodPatch, constvars.RoleAdmin, constvars.ResourceComplaints+"/"+url.PathEscape(complaintID), request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *complaintAPIClient) send(ctx context.Context, method string, role constvars.Role, path string, payload, out interface{}) error {
	body, err := transport.EncodeJSON(payload)
	if err != nil {
		return err
	}
	return c.Client.Do(ctx, transport.Request{
		Method:      method,
		Resource:    constvars.ResourceComplaints,
		Path:        path,
		Body:        body,
		ContentType: constvars.MIMEApplicationJSON,
		Role:        role,
	}, out)
}

func NewFetcher(client contracts.ComplaintAPIClient) listing.Fetcher[responses.Complaint] {
	return listing.FetcherFunc[responses.Complaint](func(ctx context.Context, request listing.Request) (*listing.Page[responses.Complaint], error) {
		result, err := client.ListComplaints(ctx, request)
		if err != nil {
			return nil, err
		}
		return &listing.Page[responses.Complaint]{Items: result.Complaints, Pagination: result.PaginationData}, nil
	})
}
