package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
//
//nolint:gochecknoglobals // Shared style palette.
var (
	accent      = lipgloss.Color("#7C3AED")
	accentLight = lipgloss.Color("#A78BFA")
	subtle      = lipgloss.Color("#6C6C6C")
	dimmed      = lipgloss.Color("#4A4A4A")
	highlight   = lipgloss.Color("#E8E8E8")
	surface     = lipgloss.Color("#2A2A2A")
	errorClr    = lipgloss.Color("#EF4444")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// TitleStyle renders the title bar.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1)

	// TitleCountStyle renders the record count inside the title bar.
	TitleCountStyle = lipgloss.NewStyle().
			Foreground(accentLight).
			Background(accent)

	// ControlStyle renders an enabled control.
	ControlStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Background(surface).
			Padding(0, 1)

	// ActiveControlStyle renders a control that is switched on or current.
	ActiveControlStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(accent).
				Bold(true).
				Padding(0, 1)

	// DisabledControlStyle renders a control that cannot be used.
	DisabledControlStyle = lipgloss.NewStyle().
				Foreground(dimmed).
				Padding(0, 1)

	// KeyHintStyle renders the key bound to a control.
	KeyHintStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	// LabelStyle renders secondary labels such as the page indicator.
	LabelStyle = lipgloss.NewStyle().
			Foreground(subtle)

	// EmptyStyle renders the message shown when no record passes the filters.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true).
			PaddingLeft(1)

	// ErrorStyle renders the error screen text.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorClr).
			Padding(1, 2)

	spinnerStyle = lipgloss.NewStyle().Foreground(accent)

	loadingMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")).
			MarginLeft(1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accent).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(dimmed).
				BorderBottom(true)

	tableSelectedStyle = lipgloss.NewStyle().
				Background(surface).
				Foreground(highlight).
				Bold(true)
)
