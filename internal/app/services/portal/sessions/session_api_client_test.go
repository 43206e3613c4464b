package sessions

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

func psychologistContext() context.Context {
	return models.WithPrincipal(context.Background(), models.Principal{
		UserID: "p-1",
		Role:   constvars.RolePsychologist,
		Token:  "token",
	})
}

func TestSessionAPIClientListSessions(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{
			"sessions":[{"id":"s-1","status":"cancelled"},{"id":"s-2","status":"upcoming"}],
			"paginationData":{"currentPage":1,"totalPages":4,"totalItems":8,"pageSize":2}
		}`))
	}))
	defer server.Close()

	client := NewSessionAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())
	page, err := listing.FetchPage(psychologistContext(), nil, NewFetcher(client), listing.Filter{"status": "cancelled"}, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, "/psychologist/sessions?limit=2&page=1&status=cancelled", gotURL)
	require.Len(t, page.Items, 2)
	assert.Equal(t, constvars.SessionStatusCancelled, page.Items[0].Status)
	assert.Equal(t, 4, page.Pagination.TotalPages)
}

func TestSessionAPIClientCancelSession(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"message":"session cancelled"}`))
	}))
	defer server.Close()

	client := NewSessionAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())
	result, err := client.CancelSession(psychologistContext(), "s-1", &requests.CancelSession{Reason: "sick"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/psychologist/sessions/s-1", gotPath)
	assert.JSONEq(t, `{"status":"cancelled","reason":"sick"}`, gotBody)
	assert.Equal(t, "session cancelled", result.Message)
}

func TestSessionAPIClientBookSlot(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"session":{"id":"s-9","status":"pending"},"message":"booked"}`))
	}))
	defer server.Close()

	client := NewSessionAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())
	result, err := client.BookSlot(psychologistContext(), "slot-3", nil)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/psychologist/slots/slot-3/book", gotPath)
	assert.Equal(t, "s-9", result.Session.ID)
	assert.Equal(t, "booked", result.Message)
}
