package console

import (
	"bytes"
	"context"
	"fmt"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/drivers/logger"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/core/notifications"
	portalNotifications "konsulin-portal/internal/app/services/portal/notifications"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSessions struct {
	mu       sync.Mutex
	requests []listing.Request
}

func (r *recordingSessions) FetchList(ctx context.Context, request listing.Request) (*listing.Page[responses.Session], error) {
	r.mu.Lock()
	r.requests = append(r.requests, request)
	r.mu.Unlock()
	return &listing.Page[responses.Session]{
		Items: []responses.Session{
			{ID: fmt.Sprintf("s-p%d", request.Page), Status: constvars.SessionStatusUpcoming},
		},
		Pagination: listing.PaginationState{TotalPages: 3, TotalItems: 3, PageSize: request.PageSize},
	}, nil
}

func (r *recordingSessions) last() listing.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[len(r.requests)-1]
}

type fakeNotifications struct {
	contracts.NotificationAPIClient
	unread int
}

func (f *fakeNotifications) ListNotifications(ctx context.Context, request listing.Request) (*responses.NotificationList, error) {
	items := make([]responses.Notification, request.PageSize)
	for i := range items {
		items[i] = responses.Notification{ID: fmt.Sprintf("n-%d-%d", request.Page, i), Title: "t"}
	}
	return &responses.NotificationList{
		Notifications:  items,
		PaginationData: responses.PaginationData{TotalPages: 2, TotalItems: 2 * request.PageSize},
	}, nil
}

func (f *fakeNotifications) MarkAllRead(ctx context.Context) (*responses.Message, error) {
	f.unread = 0
	return &responses.Message{Message: "ok"}, nil
}

func (f *fakeNotifications) GetUnreadCount(ctx context.Context) (*responses.UnreadCount, error) {
	return &responses.UnreadCount{Count: f.unread}, nil
}

func newTestConsole(t *testing.T) (*Console, *recordingSessions, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	log := logger.NewConsoleLogger(out, "info")

	sessionsFetcher := &recordingSessions{}
	sessions := listing.NewLister[responses.Session](sessionsFetcher, listing.Options{Name: "sessions", PageSize: 1}, zap.NewNop())
	psychologists := listing.NewLister[responses.PsychologistSummary](listing.FetcherFunc[responses.PsychologistSummary](
		func(ctx context.Context, request listing.Request) (*listing.Page[responses.PsychologistSummary], error) {
			return &listing.Page[responses.PsychologistSummary]{}, nil
		}), listing.Options{Name: "psychologists"}, zap.NewNop())
	notificationClient := &fakeNotifications{unread: 4}
	feed := notifications.NewFeed(notificationClient, portalNotifications.NewFetcher(notificationClient), notifications.NewUnreadStore(), notifications.FeedOptions{PageSize: 2}, zap.NewNop())

	return New(sessions, psychologists, feed, log), sessionsFetcher, out
}

func TestConsoleSessionsPagination(t *testing.T) {
	c, fetcher, out := newTestConsole(t)
	ctx := context.Background()

	assert.False(t, c.Execute(ctx, "sessions"))
	assert.Contains(t, out.String(), "s-p1")
	assert.Contains(t, out.String(), "[Upcoming]")

	c.Execute(ctx, "page 2")
	assert.Equal(t, 2, fetcher.last().Page)

	out.Reset()
	c.Execute(ctx, "page 9")
	assert.Contains(t, out.String(), "no such page")
	assert.Equal(t, 2, fetcher.last().Page)

	c.Execute(ctx, "next")
	assert.Equal(t, 3, fetcher.last().Page)

	c.Execute(ctx, "filter status=cancelled")
	assert.Equal(t, 1, fetcher.last().Page)
	assert.Equal(t, "cancelled", fetcher.last().Filter.Get("status"))

	c.Execute(ctx, "clear")
	assert.Empty(t, fetcher.last().Filter.Get("status"))
}

func TestConsoleNotifications(t *testing.T) {
	c, _, out := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "notifications")
	assert.Contains(t, out.String(), "loaded 2 of 4")

	c.Execute(ctx, "next")
	assert.Contains(t, out.String(), "loaded 4 of 4")

	out.Reset()
	c.Execute(ctx, "next")
	assert.Contains(t, out.String(), "no more notifications")

	c.Execute(ctx, "count")
	assert.Contains(t, out.String(), "unread 4")

	c.Execute(ctx, "read-all")
	assert.Contains(t, out.String(), "unread 0")
}

func TestConsoleRun(t *testing.T) {
	c, _, out := newTestConsole(t)

	err := c.Run(context.Background(), strings.NewReader("filter a=b\nbogus\nquit\nsessions\n"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "open sessions or psychologists first")
	assert.Contains(t, out.String(), `unknown command \"bogus\"`)
	assert.NotContains(t, out.String(), "s-p1")
}

func TestConsoleExecuteBlankLine(t *testing.T) {
	c, fetcher, out := newTestConsole(t)

	assert.NotPanics(t, func() {
		assert.False(t, c.Execute(context.Background(), "   "))
	})
	assert.False(t, c.Execute(context.Background(), ""))
	assert.Empty(t, out.String())
	assert.Empty(t, fetcher.requests)
}
