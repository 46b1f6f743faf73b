package view

import (
	"strings"
)

// PageSize is the number of records per page.
const PageSize = 10

// SortOrder is the direction of the name sort.
type SortOrder int

const (
	// Ascending sorts names A to Z.
	Ascending SortOrder = iota
	// Descending sorts names Z to A.
	Descending
)

// Sort order keys used by flags and query strings.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

func (o SortOrder) String() string {
	if o == Descending {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// ParseSortOrder parses "asc" or "desc", case-insensitively.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SortOrderAsc:
		return Ascending, true
	case SortOrderDesc:
		return Descending, true
	default:
		return Ascending, false
	}
}

// State is the user-chosen view parameters. It is a value; intents return a
// new State rather than editing one in place.
type State struct {
	Sort    SortOrder
	Filters FilterSet
	Page    int
}

// Initial returns the start-up state: ascending, no filters, page 1.
func Initial() State {
	return State{Sort: Ascending, Page: 1}
}
