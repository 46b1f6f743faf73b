package view

import (
	"github.com/rshade/countrylist/internal/country"
)

// Intent is a single user action. Each intent changes exactly one State field.
type Intent interface {
	apply(s State) State
}

// ToggleFilter flips one filter on or off.
type ToggleFilter struct{ ID FilterID }

func (i ToggleFilter) apply(s State) State {
	s.Filters = s.Filters.Toggle(i.ID)
	return s
}

// ToggleSort flips the sort order.
type ToggleSort struct{}

func (ToggleSort) apply(s State) State {
	s.Sort = s.Sort.Toggle()
	return s
}

// GoToPage requests a specific page.
type GoToPage struct{ Page int }

func (i GoToPage) apply(s State) State {
	s.Page = i.Page
	return s
}

// NextPage moves one page forward.
type NextPage struct{}

func (NextPage) apply(s State) State {
	s.Page++
	return s
}

// PreviousPage moves one page back.
type PreviousPage struct{}

func (PreviousPage) apply(s State) State {
	s.Page--
	return s
}

// Apply applies intent to s and reclamps the page against records.
// A nil intent only reclamps.
func Apply(records []country.Record, s State, intent Intent) State {
	if intent != nil {
		s = intent.apply(s)
	}
	return Clamp(records, s)
}
