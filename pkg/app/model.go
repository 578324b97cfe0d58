package app

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/minaret/pkg/adhaan"
	"gitlab.com/tinyland/lab/minaret/pkg/cache"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/prayertimes"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/weather"
	"gitlab.com/tinyland/lab/minaret/pkg/config"
	"gitlab.com/tinyland/lab/minaret/pkg/layout"
	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
	"gitlab.com/tinyland/lab/minaret/pkg/settings"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
	"gitlab.com/tinyland/lab/minaret/pkg/tui"
)

// snapshot keys in the state store.
const (
	snapshotKeyPrayerTimes = "prayertimes"
	snapshotKeyWeather     = "weather"
)

// Options wires the root model to the pieces main constructs.
type Options struct {
	Config     *config.Config
	Store      *cache.Store         // nil disables snapshot persistence
	Registry   *collectors.Registry // nil disables source-health reporting
	Controller *adhaan.Controller
	Settings   settings.Settings
	Logger     *slog.Logger
	Fetches    []tea.Cmd            // one-shot collector commands run at startup
}

// Model is the bubbletea root model: it owns the widgets, the persisted
// settings, the prayer-moment ticker, and the adhaan state machine. All
// of its state is touched only from the update loop.
type Model struct {
	cfg      *config.Config
	store    *cache.Store
	registry *collectors.Registry
	ctrl     *adhaan.Controller
	logger   *slog.Logger

	keys          KeyMap
	widgets       map[string]Widget
	widgetOrder   []string
	focusedWidget string

	settings    settings.Settings
	ticker      *prayer.Ticker
	schedule    *prayer.Schedule
	firedPrayer prayer.Name

	width       int
	height      int
	compact     bool
	layoutDirty bool

	fetches []tea.Cmd
	nowFunc func() time.Time
}

// NewModel builds the root model. Widget order fixes both the layout
// order and the Tab focus cycle.
func NewModel(opts Options, ws ...Widget) Model {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Controller == nil {
		opts.Controller = adhaan.NewController(adhaan.NewNopPlayer(), "", opts.Logger)
	}
	if opts.Settings.Adhaan == nil {
		opts.Settings = settings.Default()
	}

	m := Model{
		cfg:         opts.Config,
		store:       opts.Store,
		registry:    opts.Registry,
		ctrl:        opts.Controller,
		logger:      opts.Logger,
		settings:    opts.Settings,
		ticker:      prayer.NewTicker(),
		keys:        DefaultKeyMap(),
		widgets:     make(map[string]Widget, len(ws)),
		fetches:     opts.Fetches,
		layoutDirty: true,
		nowFunc:     time.Now,
	}
	for _, w := range ws {
		m.widgets[w.ID()] = w
		m.widgetOrder = append(m.widgetOrder, w.ID())
	}
	if len(m.widgetOrder) > 0 {
		m.focusedWidget = m.widgetOrder[0]
	}
	return m
}

// Init starts the second ticker, replays the persisted settings to the
// widgets, and kicks off the one-shot collector fetches.
func (m Model) Init() tea.Cmd {
	st := m.settings
	cmds := []tea.Cmd{
		TickCmd(m.nowFunc()),
		func() tea.Msg { return SettingsEvent{Settings: st} },
	}
	cmds = append(cmds, m.fetches...)
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compact = m.cfg.Display.CompactMaxWidth > 0 && msg.Width < m.cfg.Display.CompactMaxWidth
		m.layoutDirty = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickEvent:
		cmds := []tea.Cmd{TickCmd(msg.Time)}
		if cmd := m.checkPrayerMoment(msg.Time); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if cmd := m.broadcast(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case DataUpdateEvent:
		m.recordSnapshot(msg)
		return m, m.broadcast(msg)

	case PlaybackDoneEvent:
		m.ctrl.Finished()
		return m, m.broadcastAdhaanState()

	case AdhaanToggleEvent:
		m.settings.Toggle(msg.Prayer)
		m.persistSettings()
		st := m.settings
		return m, m.broadcast(SettingsEvent{Settings: st})

	case ThemeChangeEvent:
		theme.SetCurrent(msg.Theme)
		m.settings.Theme = theme.Current.Name
		m.persistSettings()
		return m, m.broadcast(msg)

	case QuoteAdvanceEvent, SettingsEvent, AdhaanStateEvent:
		return m, m.broadcast(msg)
	}

	return m, m.broadcast(msg)
}

// handleKey maps global keys; anything unclaimed goes to the focused widget.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusNext):
		m.CycleFocusForward()
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		m.CycleFocusBackward()
		return m, nil

	case key.Matches(msg, m.keys.PauseAudio):
		m.ctrl.TogglePause()
		return m, m.broadcastAdhaanState()

	case key.Matches(msg, m.keys.StopAudio):
		m.ctrl.StopAndLock()
		return m, m.broadcastAdhaanState()

	case key.Matches(msg, m.keys.Theme):
		return m, m.cycleTheme()

	case key.Matches(msg, m.keys.NextQuote):
		return m, m.broadcast(QuoteAdvanceEvent{})

	case key.Matches(msg, m.keys.Toggles):
		idx, _ := strconv.Atoi(msg.String())
		p := prayer.Names[idx-1]
		return m.Update(AdhaanToggleEvent{Prayer: p})
	}

	if w, ok := m.widgets[m.focusedWidget]; ok {
		return m, w.HandleKey(msg)
	}
	return m, nil
}

// handleMouse resolves touch/click targets through the zone manager. Only
// left-button releases act, so drags and scrolls are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, p := range prayer.Names {
		if zone.Get("adhaan:" + p.String()).InBounds(msg) {
			return m.Update(AdhaanToggleEvent{Prayer: p})
		}
	}
	if zone.Get("adhaan:playpause").InBounds(msg) {
		m.ctrl.TogglePause()
		return m, m.broadcastAdhaanState()
	}
	if zone.Get("adhaan:stop").InBounds(msg) {
		m.ctrl.StopAndLock()
		return m, m.broadcastAdhaanState()
	}
	if zone.Get("quote:next").InBounds(msg) {
		return m, m.broadcast(QuoteAdvanceEvent{})
	}

	// Clicking anywhere inside a widget focuses it.
	for _, id := range m.widgetOrder {
		if zone.Get("widget:" + id).InBounds(msg) {
			m.FocusWidget(id)
			return m, nil
		}
	}
	return m, nil
}

// checkPrayerMoment fires the adhaan when the wall clock crosses a
// scheduled prayer time. The ticker guarantees at-most-once per moment
// even when ticks stall or repeat.
func (m *Model) checkPrayerMoment(now time.Time) tea.Cmd {
	if m.schedule == nil {
		return nil
	}
	name, ok := m.ticker.Fire(now, *m.schedule)
	if !ok {
		return nil
	}
	if !m.ctrl.Trigger(name, m.settings.Enabled(name)) {
		return nil
	}
	m.firedPrayer = name
	return tea.Batch(WaitPlaybackCmd(m.ctrl.Done()), m.broadcastAdhaanState())
}

// recordSnapshot keeps the latest successful collector payloads in the
// state store so a restart inside the reuse window skips the network.
func (m *Model) recordSnapshot(ev DataUpdateEvent) {
	if ev.Err != nil {
		m.logger.Warn("collector failed", "source", ev.Source, "error", ev.Err)
		return
	}
	switch data := ev.Data.(type) {
	case *prayertimes.Timings:
		m.schedule = &data.Schedule
		if m.store != nil {
			if err := cache.PutTyped(m.store, snapshotKeyPrayerTimes, *data); err != nil {
				m.logger.Warn("persist prayer snapshot", "error", err)
			}
		}
	case *weather.Report:
		if m.store != nil {
			if err := cache.PutTyped(m.store, snapshotKeyWeather, *data); err != nil {
				m.logger.Warn("persist weather snapshot", "error", err)
			}
		}
	}
}

func (m *Model) persistSettings() {
	if m.store == nil {
		return
	}
	if err := settings.Save(m.store, m.settings); err != nil {
		m.logger.Warn("persist settings", "error", err)
	}
}

func (m *Model) cycleTheme() tea.Cmd {
	names := theme.Names()
	if len(names) == 0 {
		return nil
	}
	next := names[0]
	for i, n := range names {
		if n == theme.Current.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return func() tea.Msg { return ThemeChangeEvent{Theme: next} }
}

// broadcast forwards a message to every widget and batches their commands.
func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.widgetOrder {
		if cmd := m.widgets[id].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) broadcastAdhaanState() tea.Cmd {
	return m.broadcast(AdhaanStateEvent{State: m.ctrl.State(), Prayer: m.firedPrayer})
}

// View composes the widget grid plus a one-line status bar, then runs the
// zone scanner so mouse targets stay registered.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 2 {
		return ""
	}

	body := layout.Rect{X: 0, Y: 0, Width: m.width, Height: m.height - 1}
	rects := m.layoutRects(body)

	cells := make([]tui.Cell, 0, len(m.widgetOrder))
	for i, id := range m.widgetOrder {
		if i >= len(rects) || rects[i].Empty() {
			continue
		}
		cells = append(cells, tui.Cell{
			Pane:    m.widgets[id],
			ZoneID:  "widget:" + id,
			Rect:    rects[i],
			Focused: id == m.focusedWidget,
		})
	}

	grid := tui.RenderGrid(cells, body.Width, body.Height)
	status := tui.RenderStatusBar(m.statusText(), m.width)
	return zone.Scan(grid + "\n" + status)
}

// layoutRects maps widgets to screen areas. The kiosk arrangement applies
// when the standard four panels are present; anything else stacks evenly.
func (m Model) layoutRects(area layout.Rect) []layout.Rect {
	if len(m.widgetOrder) == 0 {
		return nil
	}

	if len(m.widgetOrder) == 4 && !m.compact {
		rows := layout.Split(area, layout.Vertical,
			layout.Length{Value: 9},
			layout.Fill{Weight: 2},
			layout.Length{Value: 6},
		)
		mid := layout.Split(rows[1], layout.Horizontal,
			layout.Percentage{Value: 42},
			layout.Fill{Weight: 1},
		)
		return []layout.Rect{rows[0], mid[0], mid[1], rows[2]}
	}

	if len(m.widgetOrder) == 4 {
		return layout.Split(area, layout.Vertical,
			layout.Length{Value: 7},
			layout.Min{Value: 9},
			layout.Fill{Weight: 1},
			layout.Length{Value: 5},
		)
	}

	constraints := make([]layout.Constraint, len(m.widgetOrder))
	for i := range constraints {
		constraints[i] = layout.Fill{Weight: 1}
	}
	return layout.Split(area, layout.Vertical, constraints...)
}

// statusText picks the one-line status message: playback state while the
// adhaan is active, otherwise any sources whose fetch failed.
func (m Model) statusText() string {
	state := m.ctrl.State()
	switch state {
	case adhaan.StatePlaying:
		return "adhaan playing (" + m.firedPrayer.String() + ")  p:pause  s:stop"
	case adhaan.StatePaused:
		return "adhaan paused  p:resume  s:stop"
	case adhaan.StateLocked:
		return "adhaan off until restart"
	}
	return m.sourceHealthText()
}

// sourceHealthText lists the data sources whose last fetch failed. A
// snapshot-fed source never ran, so it reports healthy and stays quiet.
func (m Model) sourceHealthText() string {
	if m.registry == nil {
		return ""
	}
	var failed []string
	for _, st := range m.registry.AllStatus() {
		if !st.Healthy {
			failed = append(failed, st.Name+" unavailable")
		}
	}
	return strings.Join(failed, "  ")
}

// Width returns the last known terminal width.
func (m Model) Width() int { return m.width }

// Height returns the last known terminal height.
func (m Model) Height() int { return m.height }

// Compact reports whether the narrow-screen arrangement is active.
func (m Model) Compact() bool { return m.compact }

// LayoutDirty reports whether the layout needs recomputing.
func (m Model) LayoutDirty() bool { return m.layoutDirty }

// FocusedWidgetID returns the ID of the focused widget, or "".
func (m Model) FocusedWidgetID() string { return m.focusedWidget }

// Settings returns the current in-memory settings.
func (m Model) Settings() settings.Settings { return m.settings }

// PlaybackState exposes the adhaan state machine for the status bar and
// tests.
func (m Model) PlaybackState() adhaan.State { return m.ctrl.State() }
