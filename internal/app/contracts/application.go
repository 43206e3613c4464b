package contracts

import (
	"context"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
)

type ApplicationAPIClient interface {
	ListApplications(ctx context.Context, request listing.Request) (*responses.ApplicationList, error)
	FindApplicationByID(ctx context.Context, applicationID string) (*responses.ApplicationDetail, error)
	DecideApplication(ctx context.Context, applicationID string, request *requests.DecideApplication) (*responses.Message, error)
}

type ApplicationUsecase interface {
	FindApplicationByID(ctx context.Context, applicationID string) (*responses.ApplicationDetail, error)
}
