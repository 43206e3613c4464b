package controllers

import (
	"context"
	"errors"
	"io"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/exceptions"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func withTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

func renderError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
	}
	utils.BuildErrorResponse(log, w, err)
}

// decodeOptionalJSON accepts an empty body.
func decodeOptionalJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return exceptions.ErrCannotParseJSON(err)
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func validate(v interface{}) error {
	if err := utils.ValidateStruct(v); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func asIs[T any](items []T) []T {
	return items
}

// writeListPage fetches one page through listing.FetchPage and writes the
// rows together with the pagination block.
func writeListPage[T, R any](
	ctx context.Context,
	log *zap.Logger,
	w http.ResponseWriter,
	fetcher listing.Fetcher[T],
	filter listing.Filter,
	pagination requests.Pagination,
	rows func([]T) R,
	message string,
) {
	page, err := listing.FetchPage(ctx, log, fetcher, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		renderError(log, w, err)
		return
	}
	if page.IsEmpty() {
		message = constvars.NoItemsFoundMessage
	}
	paginationData := page.Pagination
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, message, &paginationData, rows(page.Items))
}
