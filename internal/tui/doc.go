// Package tui renders the country list as a Bubble Tea program.
//
// ListModel starts in a loading state with a spinner and issues a single
// load command. Once the load resolves the model either shows the
// interactive list, whose key bindings map one-to-one onto view intents, or
// a static error screen. All view derivation goes through the view package;
// this package only maps keys to intents and results to lipgloss output.
package tui
