package contracts

import (
	"context"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
)

type AnalyticsAPIClient interface {
	GetTrends(ctx context.Context, interval constvars.TrendInterval) (*responses.Trends, error)
}
