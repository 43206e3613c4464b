package utils

import (
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

// BuildPaginationRequest reads page and limit from the query string. Missing or
// malformed values fall back to page 1 and the default page size; values that
// parse but are out of bounds are kept so validation can reject them.
func BuildPaginationRequest(r *http.Request) requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil {
		page = 1
	}

	pageSize, err := strconv.Atoi(query.Get(constvars.URLQueryParamLimit))
	if err != nil {
		pageSize = constvars.DefaultPageSize
	}

	return requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// BearerToken extracts the token from an Authorization header, or "" when absent.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
	if len(header) <= len(constvars.AuthorizationBearerPrefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(constvars.AuthorizationBearerPrefix)], constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(constvars.AuthorizationBearerPrefix):])
}
