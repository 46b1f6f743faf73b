package web

import (
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/view"
)

// Link is a rendered control: a link to the state its intent produces, or a
// disabled button.
type Link struct {
	Label    string
	Href     string
	Active   bool
	Disabled bool
}

// Row is one rendered country.
type Row struct {
	Name   string
	Area   string
	Region string
}

// ListPageData holds everything the list page renders.
type ListPageData struct {
	Toggles   []Link
	Previous  Link
	Pages     []Link
	Next      Link
	Rows      []Row
	Page      int
	PageCount int
	Total     int
	All       int
}

// NewListPageData derives the page for s from records. s must already be
// clamped against records.
func NewListPageData(records []country.Record, s view.State) ListPageData {
	result := view.Reduce(records, s)
	controls := view.BuildControls(s, result)

	link := func(c view.Control) Link {
		return Link{
			Label:    c.Label,
			Href:     HrefFor("/", view.Apply(records, s, c.Intent)),
			Active:   c.Active,
			Disabled: c.Disabled,
		}
	}

	data := ListPageData{
		Previous:  link(controls.Previous),
		Next:      link(controls.Next),
		Page:      result.Page,
		PageCount: result.PageCount,
		Total:     result.Total,
		All:       len(records),
	}
	for _, c := range controls.Filters {
		data.Toggles = append(data.Toggles, link(c))
	}
	data.Toggles = append(data.Toggles, link(controls.Sort))
	for _, c := range controls.Pages {
		data.Pages = append(data.Pages, link(c))
	}
	for _, r := range result.Records {
		data.Rows = append(data.Rows, Row{Name: r.Name, Area: view.FormatArea(r.Area), Region: r.Region})
	}
	return data
}
