package contracts

import (
	"context"
	"konsulin-portal/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*responses.Dashboard, error)
}
