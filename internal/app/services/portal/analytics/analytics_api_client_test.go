package analytics

import (
	"context"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnalyticsAPIClientGetTrends(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"trends":[{"period":"2024-04","sessions":12,"revenue":1500000},{"period":"2024-05","sessions":20}]}`))
	}))
	defer server.Close()

	ctx := models.WithPrincipal(context.Background(), models.Principal{UserID: "admin-1", Role: constvars.RoleAdmin})
	client := NewAnalyticsAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())

	result, err := client.GetTrends(ctx, constvars.TrendIntervalMonth)

	require.NoError(t, err)
	assert.Equal(t, "/admin/trends?interval=month", gotURL)
	assert.Equal(t, constvars.TrendIntervalMonth, result.Interval)
	require.Len(t, result.Trends, 2)
	assert.Equal(t, 12, result.Trends[0].Sessions)
}
