package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingState is the spinner shown while the country data is in flight.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a dot spinner with the default message.
func NewLoadingState() LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return LoadingState{spinner: s, message: "Loading..."}
}

// Init starts the spinner animation.
func (l LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l LoadingState) Update(msg tea.Msg) (LoadingState, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return l, nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the spinner and message.
func (l LoadingState) View() string {
	return l.spinner.View() + loadingMsgStyle.Render(l.message)
}
