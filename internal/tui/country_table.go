package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/view"
)

// tableHeaderHeight is the header row plus its bottom border.
const tableHeaderHeight = 2

// NewCountryTable builds the table used for one page of countries. Its
// height always fits a full page.
func NewCountryTable(records []country.Record) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 44},       //nolint:mnd // Column width.
		{Title: "Area (km²)", Width: 16}, //nolint:mnd // Column width.
		{Title: "Region", Width: 12},     //nolint:mnd // Column width.
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(CountryRows(records)),
		table.WithFocused(true),
		table.WithHeight(view.PageSize+tableHeaderHeight),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	t.SetStyles(s)

	return t
}

// CountryRows converts records to table rows: name, formatted area, region.
func CountryRows(records []country.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{r.Name, view.FormatArea(r.Area), r.Region}
	}
	return rows
}
