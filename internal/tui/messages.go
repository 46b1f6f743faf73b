package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/countrylist/internal/country"
)

// LoadFunc fetches the country records. country.Loader.Load satisfies it.
type LoadFunc func(ctx context.Context) ([]country.Record, error)

// CountriesLoadedMsg carries the result of the load identified by ID.
type CountriesLoadedMsg struct {
	ID      int
	Records []country.Record
	Err     error
}

// loadCountriesCmd runs load off the Update loop and reports its result.
func loadCountriesCmd(ctx context.Context, id int, load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		records, err := load(ctx)
		return CountriesLoadedMsg{ID: id, Records: records, Err: err}
	}
}
