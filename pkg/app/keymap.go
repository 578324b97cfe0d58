package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global key bindings. Number keys map positionally onto
// prayer.Names for the adhaan toggles.
type KeyMap struct {
	Quit       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	PauseAudio key.Binding
	StopAudio  key.Binding
	Theme      key.Binding
	NextQuote  key.Binding
	Toggles    key.Binding
}

// DefaultKeyMap returns the kiosk bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		PauseAudio: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause/resume adhaan"),
		),
		StopAudio: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop adhaan until restart"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		NextQuote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next quote"),
		),
		Toggles: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "toggle adhaan per prayer"),
		),
	}
}
