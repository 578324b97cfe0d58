package app

import tea "github.com/charmbracelet/bubbletea"

// Widget is one panel of the kiosk. Widgets are pure views over state fed
// to them through Update; they never fetch or persist anything themselves.
//
// View must return content that fits exactly within width x height: the
// compositor blits it into a rune grid without reflowing.
type Widget interface {
	// ID returns the widget's unique identifier.
	ID() string

	// Title returns the display title for the widget's border.
	Title() string

	// Update handles a message from the update loop.
	Update(msg tea.Msg) tea.Cmd

	// View renders the widget content into the given area.
	View(width, height int) string

	// MinSize returns the minimum width and height the widget needs.
	MinSize() (int, int)

	// HandleKey processes key events when this widget has focus.
	HandleKey(key tea.KeyMsg) tea.Cmd
}
