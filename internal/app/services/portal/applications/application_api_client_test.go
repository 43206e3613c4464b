package applications

import (
	"context"
	"io"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplicationAPIClient(t *testing.T) {
	var calls []string
	var decisionBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.String())
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/admin/applications" {
				w.Write([]byte(`{"applications":[{"id":"a-1","status":"pending"}],"paginationData":{"totalPages":1,"totalItems":1,"pageSize":10}}`))
				return
			}
			w.Write([]byte(`{"application":{"id":"a-1","status":"pending","documents":[{"name":"License","objectKey":"a-1/license.pdf"}]}}`))
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			decisionBody = string(body)
			w.Write([]byte(`{"message":"application approved"}`))
		}
	}))
	defer server.Close()

	ctx := models.WithPrincipal(context.Background(), models.Principal{UserID: "admin-1", Role: constvars.RoleAdmin, Token: "token"})
	client := NewApplicationAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())

	page, err := listing.FetchPage(ctx, nil, NewFetcher(client), listing.Filter{"status": "pending"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, constvars.ApplicationStatusPending, page.Items[0].Status)

	detail, err := client.FindApplicationByID(ctx, "a-1")
	require.NoError(t, err)
	require.Len(t, detail.Application.Documents, 1)
	assert.Equal(t, "a-1/license.pdf", detail.Application.Documents[0].ObjectKey)

	message, err := client.DecideApplication(ctx, "a-1", &requests.DecideApplication{Decision: "approve"})
	require.NoError(t, err)
	assert.Equal(t, "application approved", message.Message)
	assert.JSONEq(t, `{"decision":"approve","reason":""}`, decisionBody)

	assert.Equal(t, []string{
		"GET /admin/applications?limit=10&page=1&status=pending",
		"GET /admin/applications/a-1",
		"PATCH /admin/applications/a-1",
	}, calls)
}
