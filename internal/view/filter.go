package view

import (
	"sort"
	"strings"

	"github.com/rshade/countrylist/internal/country"
)

// SmallAreaThreshold is the fixed area threshold in km². Records with an
// area at or below it are dropped by ExcludeSmall.
const SmallAreaThreshold = 65300.0

// ExcludedRegion is the region dropped by ExcludeOceania.
const ExcludedRegion = "Oceania"

// FilterID names one of the toggleable filters.
type FilterID uint8

const (
	// ExcludeSmall drops records with Area <= SmallAreaThreshold.
	ExcludeSmall FilterID = iota
	// ExcludeOceania drops records whose Region is ExcludedRegion.
	ExcludeOceania
)

// AllFilters lists every filter in display order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var AllFilters = []FilterID{ExcludeSmall, ExcludeOceania}

// Key returns the stable identifier used in flags and query strings.
func (id FilterID) Key() string {
	switch id {
	case ExcludeSmall:
		return "small"
	case ExcludeOceania:
		return "oceania"
	default:
		return ""
	}
}

// ParseFilterID is the inverse of Key.
func ParseFilterID(key string) (FilterID, bool) {
	for _, id := range AllFilters {
		if id.Key() == strings.ToLower(strings.TrimSpace(key)) {
			return id, true
		}
	}
	return 0, false
}

// Keep reports whether r passes the filter.
func (id FilterID) Keep(r country.Record) bool {
	switch id {
	case ExcludeSmall:
		return r.Area > SmallAreaThreshold
	case ExcludeOceania:
		return r.Region != ExcludedRegion
	default:
		return true
	}
}

// FilterSet is a set of active filters.
type FilterSet uint8

// NewFilterSet returns a set holding ids.
func NewFilterSet(ids ...FilterID) FilterSet {
	var s FilterSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

func filterBit(id FilterID) FilterSet { return 1 << id }

// Has reports whether id is active.
func (s FilterSet) Has(id FilterID) bool { return s&filterBit(id) != 0 }

// With returns s with id active.
func (s FilterSet) With(id FilterID) FilterSet { return s | filterBit(id) }

// Toggle flips id.
func (s FilterSet) Toggle(id FilterID) FilterSet { return s ^ filterBit(id) }

// Active returns the active filters in display order.
func (s FilterSet) Active() []FilterID {
	var ids []FilterID
	for _, id := range AllFilters {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Keys returns the sorted keys of the active filters.
func (s FilterSet) Keys() []string {
	keys := make([]string, 0, len(AllFilters))
	for _, id := range s.Active() {
		keys = append(keys, id.Key())
	}
	sort.Strings(keys)
	return keys
}

// Keep reports whether r passes every active filter.
func (s FilterSet) Keep(r country.Record) bool {
	for _, id := range AllFilters {
		if s.Has(id) && !id.Keep(r) {
			return false
		}
	}
	return true
}

// Apply returns the records passing every active filter, in input order.
func (s FilterSet) Apply(records []country.Record) []country.Record {
	out := make([]country.Record, 0, len(records))
	for _, r := range records {
		if s.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}
