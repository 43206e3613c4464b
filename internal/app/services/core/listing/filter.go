package listing

import (
	"konsulin-portal/internal/pkg/constvars"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Filter is the open set of optional list filters (status, gender, search...).
// Blank values are treated as absent.
type Filter map[string]string

func (f Filter) Clone() Filter {
	clone := make(Filter, len(f))
	for key, value := range f {
		clone[key] = value
	}
	return clone
}

// With returns a copy of f with key set. A blank value removes the key.
func (f Filter) With(key, value string) Filter {
	clone := f.Clone()
	if strings.TrimSpace(value) == "" {
		delete(clone, key)
		return clone
	}
	clone[key] = value
	return clone
}

func (f Filter) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// Values encodes the filter with one parameter per non-blank key.
func (f Filter) Values() url.Values {
	values := url.Values{}
	for key, value := range f {
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		values.Set(key, value)
	}
	return values
}

// Keys returns the keys carrying a value, sorted.
func (f Filter) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f.Values() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (f Filter) Equal(other Filter) bool {
	return f.Values().Encode() == other.Values().Encode()
}

// Request is what a Fetcher receives for one page.
type Request struct {
	Filter   Filter
	Page     int
	PageSize int
}

// Query encodes the filter plus page and limit.
func (r Request) Query() url.Values {
	values := r.Filter.Values()
	values.Set(constvars.URLQueryParamPage, strconv.Itoa(r.Page))
	values.Set(constvars.URLQueryParamLimit, strconv.Itoa(r.PageSize))
	return values
}

// OffsetQuery encodes the filter plus skip and limit, for endpoints that
// page by offset.
func (r Request) OffsetQuery() url.Values {
	values := r.Filter.Values()
	values.Set(constvars.URLQueryParamSkip, strconv.Itoa(r.Offset()))
	values.Set(constvars.URLQueryParamLimit, strconv.Itoa(r.PageSize))
	return values
}

func (r Request) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}
