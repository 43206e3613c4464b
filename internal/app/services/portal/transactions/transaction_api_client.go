package transactions

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type transactionAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewTransactionAPIClient(client *transport.Client, logger *zap.Logger) contracts.TransactionAPIClient {
	return &transactionAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *transactionAPIClient) ListTransactions(ctx context.Context, request listing.Request) (*responses.TransactionList, error) {
	c.Log.Info("transactionAPIClient.ListTransactions called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	result := new(responses.TransactionList)
	err := c.Client.GetJSON(ctx, constvars.ResourceTransactions, constvars.ResourceTransactions, request.Query(), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewFetcher(client contracts.TransactionAPIClient) listing.Fetcher[responses.Transaction] {
	return listing.FetcherFunc[responses.Transaction](func(ctx context.Context, request listing.Request) (*listing.Page[responses.Transaction], error) {
		result, err := client.ListTransactions(ctx, request)
		if err != nil {
			return nil, err
		}
		return &listing.Page[responses.Transaction]{Items: result.Transactions, Pagination: result.PaginationData}, nil
	})
}
