package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/logging"
	"github.com/rshade/countrylist/internal/view"
)

// ErrorMessage is the only text shown once the load has failed.
const ErrorMessage = "Sorry, an error occurred. Please try restarting."

// maxPageInputDigits bounds the typed page number.
const maxPageInputDigits = 4

// ViewState is the screen the list model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the load is pending.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the interactive country list.
	ViewStateList
	// ViewStateError shows the static error text.
	ViewStateError
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// ListModel is the Bubble Tea model for the country browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ListModel struct {
	ctx    context.Context
	load   LoadFunc
	loadID int

	state   ViewState
	status  country.LoadStatus
	records []country.Record
	view    view.State
	result  view.Result

	table     table.Model
	loading   LoadingState
	keys      KeyMap
	help      help.Model
	pageInput string

	width  int
	height int
}

// NewListModel creates a model that will fetch records with load once Init runs.
func NewListModel(ctx context.Context, load LoadFunc) ListModel {
	return ListModel{
		ctx:     ctx,
		load:    load,
		loadID:  1,
		state:   ViewStateLoading,
		status:  country.StatusPending,
		view:    view.Initial(),
		table:   NewCountryTable(nil),
		loading: NewLoadingState(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the spinner and issues the single load (Bubble Tea interface).
func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), loadCountriesCmd(m.ctx, m.loadID, m.load))
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case CountriesLoadedMsg:
		return m.handleLoaded(msg), nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		if m.state != ViewStateList {
			return m, nil
		}
		return m.handleListKey(msg)
	}

	if m.state == ViewStateLoading {
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleLoaded resolves the pending load. Results for another load id, or
// arriving after the load already resolved, are dropped.
func (m ListModel) handleLoaded(msg CountriesLoadedMsg) ListModel {
	if m.status != country.StatusPending || msg.ID != m.loadID {
		return m
	}

	log := logging.ComponentLogger(*logging.FromContext(m.ctx), "tui")
	m.status = country.Resolve(msg.Err)
	if msg.Err != nil {
		log.Error().Ctx(m.ctx).Err(msg.Err).Msg("country load failed")
		m.state = ViewStateError
		return m
	}

	log.Debug().Ctx(m.ctx).Int("records", len(msg.Records)).Msg("countries loaded")
	m.records = msg.Records
	m.view = view.Clamp(m.records, m.view)
	m.state = ViewStateList
	m.refresh()
	return m
}

func (m ListModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if d, ok := digitKey(msg); ok {
		if len(m.pageInput) < maxPageInputDigits {
			m.pageInput += d
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ToggleSmall):
		return m.apply(view.ToggleFilter{ID: view.ExcludeSmall}), nil
	case key.Matches(msg, m.keys.ToggleOceania):
		return m.apply(view.ToggleFilter{ID: view.ExcludeOceania}), nil
	case key.Matches(msg, m.keys.ToggleSort):
		return m.apply(view.ToggleSort{}), nil
	case key.Matches(msg, m.keys.Previous):
		return m.apply(view.PreviousPage{}), nil
	case key.Matches(msg, m.keys.Next):
		return m.apply(view.NextPage{}), nil
	case key.Matches(msg, m.keys.First):
		return m.apply(view.GoToPage{Page: 1}), nil
	case key.Matches(msg, m.keys.Last):
		return m.apply(view.GoToPage{Page: m.result.PageCount}), nil
	case key.Matches(msg, m.keys.JumpToPage):
		if m.pageInput == "" {
			return m, nil
		}
		page, _ := strconv.Atoi(m.pageInput)
		m.pageInput = ""
		return m.apply(view.GoToPage{Page: page}), nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if m.pageInput != "" {
			m.pageInput = m.pageInput[:len(m.pageInput)-1]
		}
		return m, nil
	case tea.KeyEsc:
		m.pageInput = ""
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

// apply runs intent through the reducer and rebuilds the visible page.
func (m ListModel) apply(intent view.Intent) ListModel {
	m.view = view.Apply(m.records, m.view, intent)
	m.pageInput = ""
	m.refresh()
	return m
}

func (m *ListModel) refresh() {
	m.result = view.Reduce(m.records, m.view)
	m.table.SetRows(CountryRows(m.result.Records))
	m.table.SetCursor(0)
}

func digitKey(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return "", false
	}
	return string(r), true
}

// State returns the current view state.
func (m ListModel) State() view.State { return m.view }

// Status returns the load status.
func (m ListModel) Status() country.LoadStatus { return m.status }
