package notifications

import (
	"context"
	"errors"
	"fmt"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	portalNotifications "konsulin-portal/internal/app/services/portal/notifications"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockNotificationAPIClient struct {
	mock.Mock
}

func (m *mockNotificationAPIClient) ListNotifications(ctx context.Context, request listing.Request) (*responses.NotificationList, error) {
	args := m.Called(ctx, request.Page)
	list, _ := args.Get(0).(*responses.NotificationList)
	return list, args.Error(1)
}

func (m *mockNotificationAPIClient) MarkAllRead(ctx context.Context) (*responses.Message, error) {
	args := m.Called(ctx)
	message, _ := args.Get(0).(*responses.Message)
	return message, args.Error(1)
}

func (m *mockNotificationAPIClient) GetUnreadCount(ctx context.Context) (*responses.UnreadCount, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(*responses.UnreadCount)
	return count, args.Error(1)
}

func notificationPage(page, size, totalPages int) *responses.NotificationList {
	items := make([]responses.Notification, size)
	for i := range items {
		items[i] = responses.Notification{ID: fmt.Sprintf("n-%d-%d", page, i), IsRead: false}
	}
	return &responses.NotificationList{
		Notifications: items,
		PaginationData: responses.PaginationData{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  totalPages * size,
			PageSize:    size,
		},
	}
}

func TestFeedLoadReplacesThenAppends(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("ListNotifications", mock.Anything, 1).Return(notificationPage(1, 10, 3), nil)
	client.On("ListNotifications", mock.Anything, 2).Return(notificationPage(2, 10, 3), nil)

	feed := NewFeed(client, portalNotifications.NewFetcher(client), NewUnreadStore(), FeedOptions{PageSize: 10}, zap.NewNop())

	require.NoError(t, feed.Load(context.Background(), 1))
	assert.Len(t, feed.Items(), 10)

	require.NoError(t, feed.Load(context.Background(), 2))
	assert.Len(t, feed.Items(), 20)
	assert.Equal(t, "n-2-0", feed.Items()[10].ID)

	require.NoError(t, feed.Load(context.Background(), 1))
	assert.Len(t, feed.Items(), 10)
	assert.Equal(t, 1, feed.Pagination().CurrentPage)
}

func TestFeedLoadMoreStopsAtLastPage(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("ListNotifications", mock.Anything, 1).Return(notificationPage(1, 5, 2), nil)
	client.On("ListNotifications", mock.Anything, 2).Return(notificationPage(2, 5, 2), nil)

	feed := NewFeed(client, portalNotifications.NewFetcher(client), NewUnreadStore(), FeedOptions{PageSize: 5}, nil)

	more, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, more)
	more, err = feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, more)
	more, err = feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.False(t, more)

	assert.Len(t, feed.Items(), 10)
	client.AssertNumberOfCalls(t, "ListNotifications", 2)
}

func TestFeedConcurrentLoadMoreAppendsOnce(t *testing.T) {
	tests := []struct {
		name   string
		policy listing.OvertakePolicy
	}{
		{name: "discard overtaken", policy: listing.DiscardOvertaken},
		{name: "last resolver wins", policy: listing.LastResolverWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockNotificationAPIClient)
			client.On("ListNotifications", mock.Anything, 1).Return(notificationPage(1, 10, 2), nil)
			client.On("ListNotifications", mock.Anything, 2).After(50*time.Millisecond).Return(notificationPage(2, 10, 2), nil)

			feed := NewFeed(client, portalNotifications.NewFetcher(client), NewUnreadStore(), FeedOptions{PageSize: 10, Policy: tt.policy}, nil)
			require.NoError(t, feed.Load(context.Background(), 1))

			var wg sync.WaitGroup
			errs := make([]error, 2)
			for i := range errs {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, errs[i] = feed.LoadMore(context.Background())
				}(i)
			}
			wg.Wait()

			for _, err := range errs {
				if err != nil {
					assert.ErrorIs(t, err, listing.ErrOvertaken)
				}
			}
			items := feed.Items()
			assert.Len(t, items, 20)
			seen := map[string]bool{}
			for _, item := range items {
				assert.False(t, seen[item.ID], "duplicate %s", item.ID)
				seen[item.ID] = true
			}
			assert.Equal(t, 2, feed.Pagination().CurrentPage)
		})
	}
}

func TestFeedMarkAllReadKeepsItemSnapshot(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("ListNotifications", mock.Anything, 1).Return(notificationPage(1, 3, 1), nil)
	client.On("GetUnreadCount", mock.Anything).Return(&responses.UnreadCount{Count: 3}, nil)
	client.On("MarkAllRead", mock.Anything).Return(&responses.Message{Message: "done"}, nil)

	store := NewUnreadStore()
	var seen []int
	unsubscribe := store.Subscribe(func(value int) { seen = append(seen, value) })
	defer unsubscribe()

	feed := NewFeed(client, portalNotifications.NewFetcher(client), store, FeedOptions{PageSize: 3}, nil)
	require.NoError(t, feed.Load(context.Background(), 1))

	count, err := feed.RefreshUnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, store.Value())

	_, err = feed.MarkAllRead(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, store.Value())
	assert.Equal(t, 0, feed.UnreadCount())
	assert.Equal(t, []int{3, 0}, seen)
	for _, notification := range feed.Items() {
		assert.False(t, notification.IsRead)
	}
}

func TestFeedFailureLeavesStateAndForwardsError(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("ListNotifications", mock.Anything, 1).Return(notificationPage(1, 4, 2), nil)
	failure := errors.New("backend down")
	client.On("ListNotifications", mock.Anything, 2).Return(nil, failure)
	client.On("MarkAllRead", mock.Anything).Return(nil, failure)

	var handled []error
	store := NewUnreadStore()
	store.set(5)
	feed := NewFeed(client, portalNotifications.NewFetcher(client), store, FeedOptions{
		PageSize: 4,
		ErrorHandler: listing.ErrorHandlerFunc(func(ctx context.Context, err error) {
			handled = append(handled, err)
		}),
	}, nil)
	require.NoError(t, feed.Load(context.Background(), 1))

	assert.ErrorIs(t, feed.Load(context.Background(), 2), failure)
	_, err := feed.MarkAllRead(context.Background())
	assert.ErrorIs(t, err, failure)

	assert.Len(t, handled, 2)
	assert.Len(t, feed.Items(), 4)
	assert.Equal(t, 1, feed.Pagination().CurrentPage)
	assert.Equal(t, 5, store.Value())
}

func TestUnreadStoreUnsubscribe(t *testing.T) {
	store := NewUnreadStore()
	calls := 0
	unsubscribe := store.Subscribe(func(int) { calls++ })

	store.set(2)
	unsubscribe()
	store.set(4)
	store.set(-1)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, store.Value())
}

func TestMemoryBackendExpiry(t *testing.T) {
	backend := NewMemoryBackend(time.Minute).(*memoryBackend)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	backend.now = func() time.Time { return now }

	require.NoError(t, backend.Save(context.Background(), "u-1", 4))
	count, found, err := backend.Load(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, count)

	now = now.Add(2 * time.Minute)
	_, found, err = backend.Load(context.Background(), "u-1")
	require.NoError(t, err)
	assert.False(t, found)
}

type fakeRedisRepository struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = fmt.Sprint(value)
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func userContext(userID string) context.Context {
	return models.WithPrincipal(context.Background(), models.Principal{UserID: userID, Role: constvars.RoleUser, Token: "token"})
}

func TestServiceUnreadCountUsesCache(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("GetUnreadCount", mock.Anything).Return(&responses.UnreadCount{Count: 6}, nil).Once()
	repository := newFakeRedisRepository()
	service := NewService(client, NewRedisBackend(repository, 30*time.Minute), zap.NewNop())
	ctx := userContext("u-42")

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.Equal(t, "6", repository.data["portal:unread:u-42"])
	assert.Equal(t, 30*time.Minute, repository.ttls["portal:unread:u-42"])

	count, err = service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	client.AssertNumberOfCalls(t, "GetUnreadCount", 1)
}

func TestServiceMarkAllReadZeroesCache(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("GetUnreadCount", mock.Anything).Return(&responses.UnreadCount{Count: 2}, nil)
	client.On("MarkAllRead", mock.Anything).Return(&responses.Message{Message: "ok"}, nil)
	service := NewService(client, NewMemoryBackend(0), zap.NewNop())
	ctx := userContext("u-1")

	_, err := service.RefreshUnreadCount(ctx)
	require.NoError(t, err)
	_, err = service.MarkAllRead(ctx)
	require.NoError(t, err)

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	client.AssertNumberOfCalls(t, "GetUnreadCount", 1)
}

func TestServiceInvalidateForcesRefetch(t *testing.T) {
	client := new(mockNotificationAPIClient)
	client.On("GetUnreadCount", mock.Anything).Return(&responses.UnreadCount{Count: 1}, nil)
	service := NewService(client, NewMemoryBackend(0), zap.NewNop())
	ctx := userContext("u-1")

	_, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	require.NoError(t, service.Invalidate(context.Background(), "u-1"))
	_, err = service.UnreadCount(ctx)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "GetUnreadCount", 2)
}

func TestServiceRequiresPrincipal(t *testing.T) {
	service := NewService(new(mockNotificationAPIClient), NewMemoryBackend(0), zap.NewNop())

	_, err := service.UnreadCount(context.Background())

	require.Error(t, err)
}
