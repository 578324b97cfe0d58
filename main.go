// minaret is a kiosk dashboard for a single always-on display.
//
// It shows the current time, the day's Islamic prayer times for a fixed
// location, local weather, and rotating quotes, and auto-plays the adhaan
// at each scheduled prayer time when enabled.
//
// Usage:
//
//	minaret [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/minaret/config.toml)
//	-theme string     Theme name override (dark|light|night|custom)
//	-term-width int   Terminal width override (0 = auto-detect)
//	-term-height int  Terminal height override (0 = auto-detect)
//	-no-audio         Disable adhaan playback entirely
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/minaret/pkg/adhaan"
	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/cache"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/prayertimes"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/weather"
	"gitlab.com/tinyland/lab/minaret/pkg/config"
	"gitlab.com/tinyland/lab/minaret/pkg/platform"
	"gitlab.com/tinyland/lab/minaret/pkg/quotes"
	"gitlab.com/tinyland/lab/minaret/pkg/settings"
	"gitlab.com/tinyland/lab/minaret/pkg/terminal"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
	"gitlab.com/tinyland/lab/minaret/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Theme name override")
		termWidth   = flag.Int("term-width", 0, "Terminal width override (0 = auto-detect)")
		termHeight  = flag.Int("term-height", 0, "Terminal height override (0 = auto-detect)")
		noAudio     = flag.Bool("no-audio", false, "Disable adhaan playback entirely")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("minaret %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	caps := terminal.DetectCapabilities()

	// A kiosk needs a terminal unless the size is pinned explicitly.
	if !caps.TTY && *termWidth == 0 {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal (use -term-width/-term-height to force)")
		os.Exit(1)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	lockFile := filepath.Join(cfg.General.StateDir, "minaret.pid")
	if err := platform.AcquireLock(lockFile); err != nil {
		logger.Error("another instance holds the display", "error", err)
		os.Exit(1)
	}
	defer platform.ReleaseLock(lockFile)

	store, err := cache.NewStore(cfg.General.StateDir, logger)
	if err != nil {
		logger.Warn("state store unavailable, settings will not persist", "error", err)
		store = nil
	}

	prefs := settings.Default()
	if store != nil {
		prefs = settings.Load(store, logger)
	}

	// Theme resolution order: flag, persisted setting, config file, then
	// the terminal background.
	if cfg.Theme.Dir != "" {
		if err := theme.LoadDir(cfg.Theme.Dir); err != nil {
			logger.Warn("custom themes failed to load", "dir", cfg.Theme.Dir, "error", err)
		}
	}
	switch {
	case *themeName != "":
		theme.SetCurrent(*themeName)
	case prefs.Theme != "":
		theme.SetCurrent(prefs.Theme)
	case cfg.Theme.Name != "":
		theme.SetCurrent(cfg.Theme.Name)
	case !caps.DarkBackground:
		theme.SetCurrent("light")
	}

	var player adhaan.Player
	if *noAudio {
		player = adhaan.NewNopPlayer()
		logger.Info("audio disabled by flag")
	} else {
		execPlayer, err := adhaan.NewExecPlayer(cfg.Adhaan.Player, logger)
		if err != nil {
			logger.Warn("no audio player found, adhaan disabled", "error", err)
			player = adhaan.NewNopPlayer()
		} else {
			player = execPlayer
		}
	}
	controller := adhaan.NewController(player, cfg.Adhaan.AudioFile, logger)

	registry, fetches := buildFetches(ctx, cfg, store, logger)
	rotator := buildRotator(cfg, logger)

	zone.NewGlobal()
	model := app.NewModel(app.Options{
		Config:     cfg,
		Store:      store,
		Registry:   registry,
		Controller: controller,
		Settings:   prefs,
		Logger:     logger,
		Fetches:    fetches,
	},
		widgets.NewClockWidget(),
		widgets.NewPrayerWidget(prefs),
		widgets.NewWeatherWidget(),
		widgets.NewQuoteWidget(rotator, cfg.Quotes.RotateInterval.Duration),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if *termWidth > 0 {
		height := *termHeight
		if height <= 0 {
			height = terminal.DetectSize(os.Stdout.Fd()).Rows
		}
		go p.Send(tea.WindowSizeMsg{Width: *termWidth, Height: height})
	}

	logger.Info("starting minaret",
		"city", cfg.Location.City,
		"country", cfg.Location.Country,
		"theme", theme.Current.Name,
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("kiosk error", "error", err)
		os.Exit(1)
	}
}

// setupLogging writes structured logs to stderr and the configured log
// file. The returned func closes the file.
func setupLogging(cfg *config.Config, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	switch cfg.General.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.General.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeLog, nil
}

// buildFetches assembles the collector registry and the startup commands
// for the two data sources. A snapshot from the state store inside its
// reuse window replaces the network fetch; each source is fetched at most
// once per session.
func buildFetches(ctx context.Context, cfg *config.Config, store *cache.Store, logger *slog.Logger) (*collectors.Registry, []tea.Cmd) {
	reg := collectors.NewRegistry()
	reg.Register(prayertimes.NewCollector(prayertimes.NewClient(prayertimes.ClientConfig{
		City:    cfg.Location.City,
		Country: cfg.Location.Country,
		Method:  cfg.Location.Method,
		Logger:  logger,
	})))
	reg.Register(weather.NewCollector(weather.NewClient(weather.ClientConfig{
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Timezone:  cfg.Location.Timezone,
		Logger:    logger,
	})))

	now := time.Now()
	var fetches []tea.Cmd
	for _, name := range reg.List() {
		c, _ := reg.Get(name)

		if store != nil {
			if cmd := snapshotCmd(store, name, now, cfg.Weather.SnapshotTTL.Duration); cmd != nil {
				logger.Info("reusing snapshot", "source", name)
				fetches = append(fetches, cmd)
				continue
			}
		}
		fetches = append(fetches, app.DataFetchCmd(ctx, reg, c))
	}
	return reg, fetches
}

// snapshotCmd returns a command replaying a stored snapshot, or nil when
// none is fresh enough. Prayer times are valid for the calendar day they
// were fetched; weather uses the configured TTL.
func snapshotCmd(store *cache.Store, source string, now time.Time, weatherTTL time.Duration) tea.Cmd {
	switch source {
	case prayertimes.SourceName:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		sinceMidnight := now.Sub(midnight)
		if t, _, err := cache.GetTyped[prayertimes.Timings](store, source, sinceMidnight); err == nil && t != nil {
			return app.CachedDataCmd(source, t)
		}
	case weather.SourceName:
		if weatherTTL <= 0 {
			return nil
		}
		if r, _, err := cache.GetTyped[weather.Report](store, source, weatherTTL); err == nil && r != nil {
			return app.CachedDataCmd(source, r)
		}
	}
	return nil
}

// buildRotator loads the configured quote pack, falling back to the
// built-in set.
func buildRotator(cfg *config.Config, logger *slog.Logger) *quotes.Rotator {
	if cfg.Quotes.PackFile == "" {
		return quotes.NewRotator(nil)
	}
	pack, err := quotes.LoadPack(cfg.Quotes.PackFile)
	if err != nil {
		logger.Warn("quote pack failed to load, using builtin", "path", cfg.Quotes.PackFile, "error", err)
		return quotes.NewRotator(nil)
	}
	return quotes.NewRotator(pack)
}
