package contracts

import (
	"context"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/responses"
)

type TransactionAPIClient interface {
	ListTransactions(ctx context.Context, request listing.Request) (*responses.TransactionList, error)
}
