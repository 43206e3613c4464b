package notifications

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

// Feed is the notification list of one signed-in user. Page 1 replaces the
// list, later pages append to it.
//
// Overlapping loads follow the same OvertakePolicy as listing.Lister. A
// later page is only appended when it directly follows the loaded ones.
//
// MarkAllRead clears the unread badge but keeps the isRead flags of the
// loaded items as the server sent them, until the next Load.
type Feed struct {
	mu sync.Mutex

	client   contracts.NotificationAPIClient
	fetcher  listing.Fetcher[responses.Notification]
	store    *UnreadStore
	pageSize int
	policy   listing.OvertakePolicy
	handler  listing.ErrorHandler
	log      *zap.Logger

	issued     uint64
	items      []responses.Notification
	pagination listing.PaginationState
}

type FeedOptions struct {
	PageSize     int
	Policy       listing.OvertakePolicy
	ErrorHandler listing.ErrorHandler
}

// NewFeed reads pages through fetcher and the unread count through client.
func NewFeed(client contracts.NotificationAPIClient, fetcher listing.Fetcher[responses.Notification], store *UnreadStore, opts FeedOptions, logger *zap.Logger) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = constvars.DefaultPageSize
	}
	return &Feed{
		client:   client,
		fetcher:  fetcher,
		store:    store,
		pageSize: pageSize,
		policy:   opts.Policy,
		handler:  opts.ErrorHandler,
		log:      logger,
		items:    []responses.Notification{},
	}
}

// Load fetches page. On failure the loaded list is left as it was. A
// response that can no longer be applied returns listing.ErrOvertaken.
func (f *Feed) Load(ctx context.Context, page int) error {
	f.mu.Lock()
	f.issued++
	token := f.issued
	f.mu.Unlock()

	result, err := listing.FetchPage(ctx, f.log, f.fetcher, nil, page, f.pageSize)

	f.mu.Lock()
	if f.policy == listing.DiscardOvertaken && token != f.issued {
		f.mu.Unlock()
		f.log.Info("notifications.Feed.Load discarded overtaken response",
			zap.Int(constvars.LoggingPageKey, page),
			zap.Uint64("token", token),
		)
		return listing.ErrOvertaken
	}
	if err != nil {
		f.mu.Unlock()
		f.fail(ctx, "Load", err)
		return err
	}
	if page > 1 && page != f.pagination.CurrentPage+1 {
		current := f.pagination.CurrentPage
		f.mu.Unlock()
		f.log.Info("notifications.Feed.Load dropped out of sequence page",
			zap.Int(constvars.LoggingPageKey, page),
			zap.Int("current_page", current),
		)
		return listing.ErrOvertaken
	}

	if page == 1 {
		f.items = append([]responses.Notification{}, result.Items...)
	} else {
		f.items = append(f.items, result.Items...)
	}
	f.pagination = result.Pagination
	total := len(f.items)
	f.mu.Unlock()

	f.log.Debug("notifications.Feed.Load succeeded",
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingCountKey, total),
	)
	return nil
}

// LoadMore appends the next page. It reports false when the last page is
// already loaded.
func (f *Feed) LoadMore(ctx context.Context) (bool, error) {
	pagination := f.Pagination()
	if pagination.CurrentPage < 1 {
		return true, f.Load(ctx, 1)
	}
	next := pagination.CurrentPage + 1
	if next > pagination.TotalPages {
		return false, nil
	}
	return true, f.Load(ctx, next)
}

func (f *Feed) MarkAllRead(ctx context.Context) (*responses.Message, error) {
	result, err := f.client.MarkAllRead(ctx)
	if err != nil {
		f.fail(ctx, "MarkAllRead", err)
		return nil, err
	}
	f.store.set(0)
	return result, nil
}

func (f *Feed) RefreshUnreadCount(ctx context.Context) (int, error) {
	result, err := f.client.GetUnreadCount(ctx)
	if err != nil {
		f.fail(ctx, "RefreshUnreadCount", err)
		return 0, err
	}
	f.store.set(result.Count)
	return result.Count, nil
}

func (f *Feed) Items() []responses.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]responses.Notification{}, f.items...)
}

func (f *Feed) Pagination() listing.PaginationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pagination
}

func (f *Feed) UnreadCount() int {
	return f.store.Value()
}

func (f *Feed) fail(ctx context.Context, operation string, err error) {
	f.log.Error("notifications.Feed."+operation+" failed", zap.Error(err))
	if f.handler != nil {
		f.handler.HandleError(ctx, err)
	}
}
