package routers

import (
	"context"
	"fmt"
	"io"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/delivery/http/controllers"
	"konsulin-portal/internal/app/delivery/http/middlewares"
	"konsulin-portal/internal/app/services/shared/jwtmanager"
	"konsulin-portal/internal/app/services/shared/metrics"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTrends struct{}

func (stubTrends) GetTrends(ctx context.Context, interval constvars.TrendInterval) (*responses.Trends, error) {
	return &responses.Trends{Interval: interval}, nil
}

type stubDashboard struct{}

func (stubDashboard) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	return &responses.Dashboard{UnreadCount: 2}, nil
}

func newTestRouter(t *testing.T) (*chi.Mux, *jwtmanager.JWTManager) {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:        "v1",
			EndpointPrefix: "api",
			AllowedOrigins: []string{"*"},
			MaxRequests:    1000,
			Timezone:       "UTC",
		},
		JWT: config.JWT{Secret: "test-secret"},
	}

	tokens, err := jwtmanager.NewJWTManager(internalConfig, logger)
	require.NoError(t, err)

	metricsService := metrics.NewMetricsService()
	m := middlewares.NewMiddlewares(logger, internalConfig, tokens, metricsService)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, logger, nil, m, metricsService.Handler(), Controllers{
		Analytics: controllers.NewAnalyticsController(logger, stubTrends{}, time.Second),
		Dashboard: controllers.NewDashboardController(logger, stubDashboard{}, time.Second),
	})
	return router, tokens
}

func bearer(t *testing.T, tokens *jwtmanager.JWTManager, role constvars.Role) string {
	t.Helper()
	token, err := tokens.CreateToken(context.Background(), "u-1", role, time.Minute)
	require.NoError(t, err)
	return constvars.AuthorizationBearerPrefix + token
}

func TestPortalRoutes(t *testing.T) {
	router, tokens := newTestRouter(t)

	tests := []struct {
		name           string
		path           string
		authorization  string
		expectedStatus int
	}{
		{name: "dashboard without token", path: "/api/v1/portal/dashboard", expectedStatus: http.StatusUnauthorized},
		{name: "dashboard as user", path: "/api/v1/portal/dashboard", authorization: bearer(t, tokens, constvars.RoleUser), expectedStatus: http.StatusOK},
		{name: "garbage token", path: "/api/v1/portal/dashboard", authorization: "Bearer not-a-jwt", expectedStatus: http.StatusUnauthorized},
		{name: "admin trends as user", path: "/api/v1/portal/admin/trends", authorization: bearer(t, tokens, constvars.RoleUser), expectedStatus: http.StatusForbidden},
		{name: "admin trends as admin", path: "/api/v1/portal/admin/trends?interval=day", authorization: bearer(t, tokens, constvars.RoleAdmin), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set(constvars.HeaderAuthorization, tt.authorization)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		})
	}
}

func TestMetricsEndpointRecordsRoutePattern(t *testing.T) {
	router, tokens := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/dashboard", nil)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, tokens, constvars.RoleUser))
	router.ServeHTTP(httptest.NewRecorder(), req)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `portal_http_requests_total{method="GET",path="/api/v1/portal/dashboard",status="200"} 1`), string(body))
}

func TestMetricsEndpointGroupsUnmatchedPaths(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/scan/%d", i), nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `portal_http_requests_total{method="GET",path="unmatched",status="404"} 5`)
	assert.NotContains(t, body, `path="/scan/`)
}
