package view

import (
	"strconv"
)

// Control describes one interactive element of the listing.
type Control struct {
	Label    string
	Active   bool
	Disabled bool
	Intent   Intent
}

// Controls is the full interactive surface for one State and Result.
type Controls struct {
	Filters  []Control
	Sort     Control
	Previous Control
	Next     Control
	Pages    []Control
}

// FilterLabel returns the label of a filter toggle. The label reflects
// whether the filter is currently on.
func FilterLabel(id FilterID, on bool) string {
	if on {
		switch id {
		case ExcludeSmall:
			return "Show all areas"
		case ExcludeOceania:
			return "Show Oceania"
		}
		return "Remove filter"
	}
	switch id {
	case ExcludeSmall:
		return "Hide area ≤ 65,300 km²"
	case ExcludeOceania:
		return "Hide Oceania"
	}
	return ""
}

// SortLabel names the order that toggling from current will produce.
func SortLabel(current SortOrder) string {
	if current.Toggle() == Descending {
		return "Sort by name Z→A"
	}
	return "Sort by name A→Z"
}

// BuildControls describes the controls for s and its derived result r.
// Page buttons exist only when there is at least one page.
func BuildControls(s State, r Result) Controls {
	c := Controls{
		Sort: Control{Label: SortLabel(s.Sort), Intent: ToggleSort{}},
		Previous: Control{
			Label:    "Previous",
			Disabled: !r.HasPrevious(),
			Intent:   PreviousPage{},
		},
		Next: Control{
			Label:    "Next",
			Disabled: !r.HasNext(),
			Intent:   NextPage{},
		},
	}

	for _, id := range AllFilters {
		on := s.Filters.Has(id)
		c.Filters = append(c.Filters, Control{
			Label:  FilterLabel(id, on),
			Active: on,
			Intent: ToggleFilter{ID: id},
		})
	}

	for p := 1; p <= r.PageCount; p++ {
		c.Pages = append(c.Pages, Control{
			Label:    strconv.Itoa(p),
			Active:   p == r.Page,
			Disabled: p == r.Page,
			Intent:   GoToPage{Page: p},
		})
	}
	return c
}
