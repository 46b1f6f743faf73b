package view

import (
	"github.com/rshade/countrylist/internal/country"
)

// Result is the derived view for one State.
type Result struct {
	// Records is the visible page, at most PageSize long.
	Records []country.Record
	// Page is the clamped 1-based page number.
	Page int
	// PageCount is ceil(Total/PageSize); 0 when nothing passes the filters.
	PageCount int
	// Total is the number of records passing the filters.
	Total int
}

// HasPrevious reports whether a page before Page exists.
func (r Result) HasPrevious() bool { return r.PageCount > 0 && r.Page > 1 }

// HasNext reports whether a page after Page exists.
func (r Result) HasNext() bool { return r.Page < r.PageCount }

// Empty reports whether no record passes the filters.
func (r Result) Empty() bool { return r.Total == 0 }

// PageCountFor returns ceil(n/PageSize).
func PageCountFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage restricts page to [1, max(1, pageCount)].
func ClampPage(page, pageCount int) int {
	upper := max(1, pageCount)
	return min(max(page, 1), upper)
}

// Reduce filters, sorts, then paginates records for s. Sorting happens on
// the whole filtered set before slicing. records is not modified.
func Reduce(records []country.Record, s State) Result {
	filtered := s.Filters.Apply(records)
	SortByName(filtered, s.Sort)

	pageCount := PageCountFor(len(filtered))
	page := ClampPage(s.Page, pageCount)

	start := min((page-1)*PageSize, len(filtered))
	end := min(start+PageSize, len(filtered))

	return Result{
		Records:   filtered[start:end:end],
		Page:      page,
		PageCount: pageCount,
		Total:     len(filtered),
	}
}

// Clamp restores the page invariant of s against records.
func Clamp(records []country.Record, s State) State {
	pageCount := PageCountFor(countVisible(records, s.Filters))
	s.Page = ClampPage(s.Page, pageCount)
	return s
}

func countVisible(records []country.Record, filters FilterSet) int {
	n := 0
	for _, r := range records {
		if filters.Keep(r) {
			n++
		}
	}
	return n
}
