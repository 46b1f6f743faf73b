package web

import (
	"net/url"
	"strconv"

	"github.com/rshade/countrylist/internal/view"
)

// Query parameter names.
const (
	paramSort   = "sort"
	paramFilter = "filter"
	paramPage   = "page"
)

// StateFromQuery decodes a view state. Unknown or malformed values fall back
// to the initial state's values. The page is not clamped here.
func StateFromQuery(q url.Values) view.State {
	s := view.Initial()

	if order, ok := view.ParseSortOrder(q.Get(paramSort)); ok {
		s.Sort = order
	}
	var ids []view.FilterID
	for _, key := range q[paramFilter] {
		if id, ok := view.ParseFilterID(key); ok {
			ids = append(ids, id)
		}
	}
	s.Filters = view.NewFilterSet(ids...)
	if page, err := strconv.Atoi(q.Get(paramPage)); err == nil && page >= 1 {
		s.Page = page
	}
	return s
}

// QueryForState encodes s. Values equal to the initial state are omitted so
// the initial state encodes to an empty query.
func QueryForState(s view.State) url.Values {
	q := url.Values{}
	if s.Sort != view.Ascending {
		q.Set(paramSort, s.Sort.String())
	}
	for _, key := range s.Filters.Keys() {
		q.Add(paramFilter, key)
	}
	if s.Page > 1 {
		q.Set(paramPage, strconv.Itoa(s.Page))
	}
	return q
}

// HrefFor returns path with s encoded as its query string.
func HrefFor(path string, s view.State) string {
	q := QueryForState(s).Encode()
	if q == "" {
		return path
	}
	return path + "?" + q
}
