package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/view"
)

// testRecords returns 25 countries "Land 00".."Land 24". Every fifth is in
// Oceania and every fourth has a small area.
func testRecords() []country.Record {
	records := make([]country.Record, 25)
	for i := range records {
		r := country.Record{Name: fmt.Sprintf("Land %02d", i), Region: "Europe", Area: 100000}
		if i%5 == 0 {
			r.Region = "Oceania"
		}
		if i%4 == 0 {
			r.Area = 1000
		}
		records[i] = r
	}
	return records
}

func noLoad(context.Context) ([]country.Record, error) { return nil, nil }

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func press(t *testing.T, m ListModel, msgs ...tea.Msg) ListModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(ListModel)
		require.True(t, ok)
	}
	return m
}

func loadedModel(t *testing.T, records []country.Record) ListModel {
	t.Helper()
	m := NewListModel(context.Background(), noLoad)
	return press(t, m, CountriesLoadedMsg{ID: 1, Records: records})
}

func TestNewListModel(t *testing.T) {
	m := NewListModel(context.Background(), noLoad)

	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, country.StatusPending, m.Status())
	assert.Equal(t, view.Initial(), m.State())
	assert.Contains(t, m.View(), "Loading...")
	assert.NotNil(t, m.Init())
}

func TestLoadCountriesCmd(t *testing.T) {
	want := testRecords()
	cmd := loadCountriesCmd(context.Background(), 7, func(context.Context) ([]country.Record, error) {
		return want, nil
	})

	msg, ok := cmd().(CountriesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 7, msg.ID)
	assert.Equal(t, want, msg.Records)
	assert.NoError(t, msg.Err)
}

func TestListModel_LoadingIgnoresKeys(t *testing.T) {
	m := NewListModel(context.Background(), noLoad)
	m = press(t, m, runeKey('a'), runeKey('s'), tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, view.Initial(), m.State())
}

func TestListModel_Quit(t *testing.T) {
	for _, state := range []string{"loading", "list"} {
		t.Run(state, func(t *testing.T) {
			m := NewListModel(context.Background(), noLoad)
			if state == "list" {
				m = press(t, m, CountriesLoadedMsg{ID: 1, Records: testRecords()})
			}

			updated, cmd := m.Update(runeKey('q'))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, updated.View())
		})
	}
}

func TestListModel_LoadFailure(t *testing.T) {
	m := NewListModel(context.Background(), noLoad)
	m = press(t, m, CountriesLoadedMsg{ID: 1, Err: country.ErrLoadFailure})

	assert.Equal(t, ViewStateError, m.state)
	assert.Equal(t, country.StatusFailed, m.Status())

	out := m.View()
	assert.Contains(t, out, ErrorMessage)
	assert.NotContains(t, out, "Previous")
	assert.NotContains(t, out, "Hide Oceania")

	// Keys other than quit do nothing once failed.
	m = press(t, m, runeKey('a'))
	assert.Equal(t, ViewStateError, m.state)
}

func TestListModel_IgnoresStaleAndLateResults(t *testing.T) {
	t.Run("stale id", func(t *testing.T) {
		m := NewListModel(context.Background(), noLoad)
		m = press(t, m, CountriesLoadedMsg{ID: 99, Records: testRecords()})
		assert.Equal(t, ViewStateLoading, m.state)
		assert.Equal(t, country.StatusPending, m.Status())
	})

	t.Run("after failure", func(t *testing.T) {
		m := NewListModel(context.Background(), noLoad)
		m = press(t, m,
			CountriesLoadedMsg{ID: 1, Err: errors.New("boom")},
			CountriesLoadedMsg{ID: 1, Records: testRecords()},
		)
		assert.Equal(t, ViewStateError, m.state)
	})

	t.Run("after success", func(t *testing.T) {
		m := loadedModel(t, testRecords())
		m = press(t, m, CountriesLoadedMsg{ID: 1, Err: errors.New("late")})
		assert.Equal(t, ViewStateList, m.state)
		assert.Equal(t, 25, m.result.Total)
	})
}

func TestListModel_InitialList(t *testing.T) {
	m := loadedModel(t, testRecords())

	assert.Equal(t, ViewStateList, m.state)
	assert.Equal(t, country.StatusLoaded, m.Status())
	assert.Equal(t, 3, m.result.PageCount)
	require.Len(t, m.result.Records, view.PageSize)
	assert.Equal(t, "Land 00", m.result.Records[0].Name)

	out := m.View()
	assert.Contains(t, out, "Land 00")
	assert.Contains(t, out, "Hide area ≤ 65,300 km²")
	assert.Contains(t, out, "Hide Oceania")
	assert.Contains(t, out, "Sort by name Z→A")
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "100,000")
}

func TestListModel_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		wantPage int
	}{
		{"next", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, 2},
		{"next with l", []tea.Msg{runeKey('l')}, 2},
		{"next past end clamps", []tea.Msg{runeKey('l'), runeKey('l'), runeKey('l'), runeKey('l')}, 3},
		{"previous on first page stays", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, 1},
		{"next then previous with h", []tea.Msg{runeKey('l'), runeKey('h')}, 1},
		{"end", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnd}}, 3},
		{"end then home", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyHome}}, 1},
		{"jump", []tea.Msg{runeKey('2'), tea.KeyMsg{Type: tea.KeyEnter}}, 2},
		{"jump past end clamps", []tea.Msg{runeKey('4'), runeKey('2'), tea.KeyMsg{Type: tea.KeyEnter}}, 3},
		{"jump to zero clamps", []tea.Msg{runeKey('0'), tea.KeyMsg{Type: tea.KeyEnter}}, 1},
		{"enter without digits", []tea.Msg{runeKey('l'), tea.KeyMsg{Type: tea.KeyEnter}}, 2},
		{"escape clears input", []tea.Msg{runeKey('3'), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEnter}}, 1},
		{
			"backspace edits input",
			[]tea.Msg{runeKey('2'), runeKey('9'), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter}},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, loadedModel(t, testRecords()), tt.keys...)
			assert.Equal(t, tt.wantPage, m.State().Page)
			assert.Equal(t, tt.wantPage, m.result.Page)
		})
	}
}

func TestListModel_TypedPageShown(t *testing.T) {
	m := press(t, loadedModel(t, testRecords()), runeKey('1'), runeKey('2'))

	assert.Contains(t, m.View(), "Go to page: 12_")
}

func TestListModel_ToggleSort(t *testing.T) {
	m := press(t, loadedModel(t, testRecords()), runeKey('s'))

	assert.Equal(t, view.Descending, m.State().Sort)
	assert.Equal(t, "Land 24", m.result.Records[0].Name)
	assert.Contains(t, m.View(), "Sort by name A→Z")

	m = press(t, m, runeKey('s'))
	assert.Equal(t, view.Ascending, m.State().Sort)
	assert.Equal(t, "Land 00", m.result.Records[0].Name)
}

func TestListModel_Filters(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.Msg
		wantTotal int
		wantLabel string
	}{
		{"oceania", []tea.Msg{runeKey('o')}, 20, "Show Oceania"},
		{"small", []tea.Msg{runeKey('a')}, 18, "Show all areas"},
		{"both", []tea.Msg{runeKey('a'), runeKey('o')}, 15, "Show Oceania"},
		{"toggle twice", []tea.Msg{runeKey('o'), runeKey('o')}, 25, "Hide Oceania"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, loadedModel(t, testRecords()), tt.keys...)
			assert.Equal(t, tt.wantTotal, m.result.Total)
			assert.Contains(t, m.View(), tt.wantLabel)
			for _, r := range m.result.Records {
				assert.True(t, m.State().Filters.Keep(r))
			}
		})
	}
}

func TestListModel_FilterReclampsPage(t *testing.T) {
	m := press(t, loadedModel(t, testRecords()), tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 3, m.State().Page)

	m = press(t, m, runeKey('o'))

	assert.Equal(t, 2, m.State().Page)
	assert.Equal(t, 2, m.result.PageCount)
}

func TestListModel_EmptyResult(t *testing.T) {
	records := []country.Record{{Name: "Nauru", Region: "Oceania", Area: 21}}
	m := press(t, loadedModel(t, records), runeKey('o'))

	assert.True(t, m.result.Empty())
	assert.Equal(t, 1, m.State().Page)
	out := m.View()
	assert.Contains(t, out, emptyMessage)
	assert.NotContains(t, out, "Nauru")
}

func TestListModel_EmptyPayload(t *testing.T) {
	m := loadedModel(t, []country.Record{})

	assert.Equal(t, ViewStateList, m.state)
	assert.Equal(t, 0, m.result.PageCount)
	assert.Contains(t, m.View(), emptyMessage)
}

func TestListModel_WindowSize(t *testing.T) {
	m := press(t, NewListModel(context.Background(), noLoad), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
