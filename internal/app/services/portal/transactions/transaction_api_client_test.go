package transactions

import (
	"context"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTransactionAPIClientListTransactions(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"transactions":[{"id":"t-1","amount":250000,"currency":"IDR","status":"success"}],"paginationData":{"totalPages":2,"totalItems":6,"pageSize":5}}`))
	}))
	defer server.Close()

	ctx := models.WithPrincipal(context.Background(), models.Principal{UserID: "u-1", Role: constvars.RoleUser, Token: "token"})
	client := NewTransactionAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())

	page, err := listing.FetchPage(ctx, nil, NewFetcher(client), nil, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, "/user/transactions?limit=5&page=2", gotURL)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, constvars.TransactionStatusSuccess, page.Items[0].Status)
}
