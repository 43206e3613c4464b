package listing

import (
	"context"
	"errors"
	"fmt"
	"konsulin-portal/internal/pkg/constvars"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrOvertaken is returned to the caller of a fetch whose response was
// dropped because a newer fetch had been issued.
var ErrOvertaken = errors.New("listing: response overtaken by a newer request")

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// OvertakePolicy decides what happens when fetches resolve out of order.
type OvertakePolicy int

const (
	// DiscardOvertaken applies a response only if no newer fetch was issued.
	DiscardOvertaken OvertakePolicy = iota
	// LastResolverWins applies every response in the order it resolves.
	LastResolverWins
)

func (p OvertakePolicy) String() string {
	if p == LastResolverWins {
		return "last_resolver_wins"
	}
	return "discard"
}

// ParseOvertakePolicy maps a config value to a policy. Unknown values fall
// back to DiscardOvertaken.
func ParseOvertakePolicy(value string) OvertakePolicy {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "last_resolver_wins", "last-resolver-wins", "last":
		return LastResolverWins
	}
	return DiscardOvertaken
}

// ErrorHandler receives every fetch failure a Lister applies.
type ErrorHandler interface {
	HandleError(ctx context.Context, err error)
}

type ErrorHandlerFunc func(ctx context.Context, err error)

func (f ErrorHandlerFunc) HandleError(ctx context.Context, err error) {
	f(ctx, err)
}

type Options struct {
	Name         string
	PageSize     int
	Policy       OvertakePolicy
	Filter       Filter
	ErrorHandler ErrorHandler
}

// Snapshot is a copy of a Lister's visible state.
type Snapshot[T any] struct {
	State      State
	Loading    bool
	Items      []T
	Pagination PaginationState
	Filter     Filter
	Err        error
}

func (s Snapshot[T]) IsEmpty() bool {
	return s.State == StateLoaded && len(s.Items) == 0
}

// Lister holds the page, filters and items of one listing page and
// refetches when they change. It is safe for concurrent use.
type Lister[T any] struct {
	mu sync.Mutex

	name     string
	fetcher  Fetcher[T]
	pageSize int
	policy   OvertakePolicy
	handler  ErrorHandler
	log      *zap.Logger

	state      State
	filter     Filter
	items      []T
	pagination PaginationState
	lastErr    error
	issued     uint64
	inFlight   int
}

func NewLister[T any](fetcher Fetcher[T], opts Options, logger *zap.Logger) *Lister[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = constvars.DefaultPageSize
	}
	filter := opts.Filter.Clone()

	return &Lister[T]{
		name:     opts.Name,
		fetcher:  fetcher,
		pageSize: pageSize,
		policy:   opts.Policy,
		handler:  opts.ErrorHandler,
		log:      logger,
		state:    StateIdle,
		filter:   filter,
		items:    []T{},
		pagination: PaginationState{
			CurrentPage: 1,
			PageSize:    pageSize,
		},
	}
}

// Mount performs the initial fetch of page 1.
func (l *Lister[T]) Mount(ctx context.Context) error {
	l.mu.Lock()
	filter := l.filter.Clone()
	l.mu.Unlock()
	return l.fetch(ctx, filter, 1)
}

// SetFilters replaces the filters and refetches from page 1.
func (l *Lister[T]) SetFilters(ctx context.Context, filter Filter) error {
	l.mu.Lock()
	l.filter = filter.Clone()
	l.mu.Unlock()
	return l.fetch(ctx, filter.Clone(), 1)
}

// OnPageChange fetches page n with the current filters. It reports false and
// does nothing when n is outside [1, TotalPages].
func (l *Lister[T]) OnPageChange(ctx context.Context, n int) (bool, error) {
	l.mu.Lock()
	totalPages := l.pagination.TotalPages
	filter := l.filter.Clone()
	l.mu.Unlock()

	if n < 1 || n > totalPages {
		l.log.Debug("listing.Lister.OnPageChange ignored page outside range",
			zap.String("list", l.name),
			zap.Int(constvars.LoggingPageKey, n),
			zap.Int("total_pages", totalPages),
		)
		return false, nil
	}
	return true, l.fetch(ctx, filter, n)
}

func (l *Lister[T]) Next(ctx context.Context) (bool, error) {
	return l.OnPageChange(ctx, l.Pagination().CurrentPage+1)
}

func (l *Lister[T]) Prev(ctx context.Context) (bool, error) {
	return l.OnPageChange(ctx, l.Pagination().CurrentPage-1)
}

// Refresh refetches the current page with the current filters.
func (l *Lister[T]) Refresh(ctx context.Context) error {
	l.mu.Lock()
	page := l.pagination.CurrentPage
	filter := l.filter.Clone()
	l.mu.Unlock()
	if page < 1 {
		page = 1
	}
	return l.fetch(ctx, filter, page)
}

func (l *Lister[T]) fetch(ctx context.Context, filter Filter, page int) error {
	l.mu.Lock()
	l.issued++
	token := l.issued
	l.inFlight++
	l.state = StateLoading
	l.mu.Unlock()

	l.log.Debug("listing.Lister.fetch called",
		zap.String("list", l.name),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingPageSizeKey, l.pageSize),
		zap.Uint64("token", token),
	)

	result, err := FetchPage(ctx, l.log, l.fetcher, filter, page, l.pageSize)

	l.mu.Lock()
	l.inFlight--
	if l.policy == DiscardOvertaken && token != l.issued {
		l.mu.Unlock()
		l.log.Info("listing.Lister.fetch discarded overtaken response",
			zap.String("list", l.name),
			zap.Int(constvars.LoggingPageKey, page),
			zap.Uint64("token", token),
		)
		return ErrOvertaken
	}

	if err != nil {
		l.state = StateErrored
		l.lastErr = err
		l.mu.Unlock()

		l.log.Error("listing.Lister.fetch failed",
			zap.String("list", l.name),
			zap.Int(constvars.LoggingPageKey, page),
			zap.Error(err),
		)
		if l.handler != nil {
			l.handler.HandleError(ctx, err)
		}
		return err
	}

	l.items = result.Items
	l.pagination = result.Pagination
	l.state = StateLoaded
	l.lastErr = nil
	l.mu.Unlock()

	l.log.Debug("listing.Lister.fetch succeeded",
		zap.String("list", l.name),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingCountKey, len(result.Items)),
	)
	return nil
}

func (l *Lister[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Loading reports whether any fetch is outstanding.
func (l *Lister[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight > 0
}

func (l *Lister[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

func (l *Lister[T]) Pagination() PaginationState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pagination
}

func (l *Lister[T]) Filter() Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter.Clone()
}

func (l *Lister[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{
		State:      l.state,
		Loading:    l.inFlight > 0,
		Items:      items,
		Pagination: l.pagination,
		Filter:     l.filter.Clone(),
		Err:        l.lastErr,
	}
}
