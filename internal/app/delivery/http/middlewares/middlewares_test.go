package middlewares

import (
	"context"
	"errors"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVerifier struct {
	principal *models.Principal
	err       error
}

func (f fakeVerifier) VerifyToken(ctx context.Context, token string) (*models.Principal, error) {
	if f.err != nil {
		return nil, f.err
	}
	principal := *f.principal
	principal.Token = token
	return &principal, nil
}

type observation struct {
	method string
	path   string
	status int
}

type recordingObserver struct {
	mu           sync.Mutex
	observations []observation
}

func (o *recordingObserver) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observations = append(o.observations, observation{method: method, path: path, status: status})
}

func newTestMiddlewares(verifier TokenVerifier, observer HTTPObserver) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{App: config.App{MaxRequests: 100}}, verifier, observer)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil, nil)

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = models.RequestIDFromContext(r.Context())
	}))

	t.Run("keeps client request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestAuthenticate(t *testing.T) {
	valid := fakeVerifier{principal: &models.Principal{UserID: "u-1", Role: constvars.RoleUser}}
	invalid := fakeVerifier{err: errors.New("token is expired")}

	tests := []struct {
		name           string
		verifier       TokenVerifier
		authorization  string
		expectedStatus int
		expectCalled   bool
	}{
		{name: "missing header", verifier: valid, expectedStatus: http.StatusUnauthorized},
		{name: "not a bearer token", verifier: valid, authorization: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "rejected token", verifier: invalid, authorization: "Bearer abc", expectedStatus: http.StatusUnauthorized},
		{name: "valid token", verifier: valid, authorization: "Bearer abc", expectedStatus: http.StatusOK, expectCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMiddlewares(tt.verifier, nil)

			called := false
			var principal models.Principal
			handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				principal, _ = models.PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authorization != "" {
				req.Header.Set(constvars.HeaderAuthorization, tt.authorization)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectCalled, called)
			if tt.expectCalled {
				assert.Equal(t, "u-1", principal.UserID)
				assert.Equal(t, "abc", principal.Token)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	m := newTestMiddlewares(nil, nil)
	handler := m.RequireRoles(constvars.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name           string
		principal      *models.Principal
		expectedStatus int
	}{
		{name: "no principal", expectedStatus: http.StatusUnauthorized},
		{name: "user is forbidden", principal: &models.Principal{UserID: "u", Role: constvars.RoleUser}, expectedStatus: http.StatusForbidden},
		{name: "admin passes", principal: &models.Principal{UserID: "a", Role: constvars.RoleAdmin}, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.principal != nil {
				req = req.WithContext(models.WithPrincipal(req.Context(), *tt.principal))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := newTestMiddlewares(nil, nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestInstrumentUsesRoutePattern(t *testing.T) {
	observer := &recordingObserver{}
	m := newTestMiddlewares(nil, observer)

	router := chi.NewRouter()
	router.Use(m.Instrument)
	router.Get("/sessions/{session_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sessions/s-42", nil))

	require.Len(t, observer.observations, 1)
	assert.Equal(t, observation{method: http.MethodGet, path: "/sessions/{session_id}", status: http.StatusAccepted}, observer.observations[0])
}

func TestInstrumentGroupsUnmatchedRoutes(t *testing.T) {
	observer := &recordingObserver{}
	m := newTestMiddlewares(nil, observer)

	router := chi.NewRouter()
	router.Use(m.Instrument)
	router.Get("/sessions/{session_id}", func(w http.ResponseWriter, r *http.Request) {})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/scan/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/scan/2", nil))

	require.Len(t, observer.observations, 2)
	for _, got := range observer.observations {
		assert.Equal(t, observation{method: http.MethodGet, path: "unmatched", status: http.StatusNotFound}, got)
	}
}
