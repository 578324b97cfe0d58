package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// PlaceholderWidget shows its title and render size. It stands in for a
// real panel when a data source is disabled (e.g. -no-audio kiosks with
// no weather configured) and carries the navigation tests.
type PlaceholderWidget struct {
	id    string
	title string
}

// NewPlaceholder creates a PlaceholderWidget with the given id and title.
func NewPlaceholder(id, title string) *PlaceholderWidget {
	return &PlaceholderWidget{id: id, title: title}
}

// ID returns the widget's unique identifier.
func (w *PlaceholderWidget) ID() string {
	return w.id
}

// Title returns the widget's display title.
func (w *PlaceholderWidget) Title() string {
	return w.title
}

// Update is a no-op for the placeholder widget.
func (w *PlaceholderWidget) Update(_ tea.Msg) tea.Cmd {
	return nil
}

// View renders the title and dimensions centered in the available area.
func (w *PlaceholderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	th := theme.Current
	titleLine := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(th.Accent)).Render(w.title)
	dimLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Dim)).
		Render(fmt.Sprintf("%dx%d", width, height))

	var lines []string
	topPad := (height - 2) / 2
	if topPad < 0 {
		topPad = 0
	}
	for i := 0; i < topPad; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, titleLine)
	if height > 1 {
		lines = append(lines, dimLine)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// MinSize returns the minimum dimensions for the placeholder widget.
func (w *PlaceholderWidget) MinSize() (int, int) {
	return 10, 3
}

// HandleKey is a no-op for the placeholder widget.
func (w *PlaceholderWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

var _ Widget = (*PlaceholderWidget)(nil)
