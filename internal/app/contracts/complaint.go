package contracts

import (
	"context"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
)

type ComplaintAPIClient interface {
	ListComplaints(ctx context.Context, request listing.Request) (*responses.ComplaintList, error)
	CreateComplaint(ctx context.Context, request *requests.CreateComplaint) (*responses.Message, error)
	UpdateComplaint(ctx context.Context, complaintID string, request *requests.UpdateComplaint) (*responses.Message, error)
}
