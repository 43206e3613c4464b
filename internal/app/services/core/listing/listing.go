package listing

import (
	"context"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// PaginationState is the pagination block shared by every listing page.
// CurrentPage is only ever taken from a successful fetch or a page change.
type PaginationState = responses.PaginationData

type Page[T any] struct {
	Items      []T
	Pagination PaginationState
}

func (p *Page[T]) IsEmpty() bool {
	return p == nil || len(p.Items) == 0
}

// Fetcher loads one page of T from the backend.
type Fetcher[T any] interface {
	FetchList(ctx context.Context, request Request) (*Page[T], error)
}

type FetcherFunc[T any] func(ctx context.Context, request Request) (*Page[T], error)

func (f FetcherFunc[T]) FetchList(ctx context.Context, request Request) (*Page[T], error) {
	return f(ctx, request)
}

// FetchPage requests page of pageSize items under filter. No request is made
// when page < 1 or pageSize < 1. On success the result holds at most pageSize
// items and its CurrentPage is the requested page.
func FetchPage[T any](ctx context.Context, log *zap.Logger, fetcher Fetcher[T], filter Filter, page, pageSize int) (*Page[T], error) {
	if log == nil {
		log = zap.NewNop()
	}
	if fetcher == nil {
		return nil, exceptions.ErrNilListFetcher()
	}
	if page < 1 {
		return nil, exceptions.ErrPageOutOfRange(page)
	}
	if pageSize < 1 || pageSize > constvars.MaxPageSize {
		return nil, exceptions.ErrInvalidPageSize(pageSize)
	}

	result, err := fetcher.FetchList(ctx, Request{
		Filter:   filter.Clone(),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = &Page[T]{}
	}

	if len(result.Items) > pageSize {
		log.Warn("listing.FetchPage backend returned more items than requested",
			zap.Int(constvars.LoggingPageKey, page),
			zap.Int(constvars.LoggingPageSizeKey, pageSize),
			zap.Int(constvars.LoggingCountKey, len(result.Items)),
		)
		result.Items = result.Items[:pageSize]
	}
	if result.Items == nil {
		result.Items = []T{}
	}

	if result.Pagination.TotalPages > 0 && page > result.Pagination.TotalPages {
		return nil, exceptions.ErrPageOutOfRange(page)
	}
	if result.Pagination.TotalPages == 0 && page > 1 {
		return nil, exceptions.ErrPageOutOfRange(page)
	}

	result.Pagination.CurrentPage = page
	if result.Pagination.PageSize < 1 {
		result.Pagination.PageSize = pageSize
	}
	return result, nil
}
