package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/gamestate"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/settings"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

// settingsNotice is shown on the start overlay when the settings file had
// values that could not be used.
const settingsNotice = "Some settings could not be read; defaults were used for them."

// app is everything a command needs, resolved from flags, environment and
// the files in the home directory.
type app struct {
	home          string
	dbPath        string
	settingsPath  string
	highScorePath string

	logger  *log.Logger
	logSink io.Closer

	tuning   config.ClickerConfig
	settings settings.Settings
	notice   string
}

// logTarget selects where an app logs.
type logTarget int

const (
	logToFile   logTarget = iota // The terminal belongs to the TUI
	logToStderr                  // Plain CLI output and the SSH server
)

// newApp resolves paths, opens the logger and loads tuning and settings.
// Unreadable files are logged and replaced by defaults.
func newApp(target logTarget) (*app, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	a := &app{home: env.ResolveHome(flagHome)}
	a.settingsPath = settings.Path(a.home)
	a.highScorePath = gamestate.HighScorePath(a.home)
	a.dbPath = env.ResolveDB(flagDBPath)
	if a.dbPath == "" {
		a.dbPath = storage.DefaultPath(a.home)
	}

	level := env.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	a.openLogger(target, env.ResolveLogFile(flagLogFile, a.home), level)

	a.tuning, err = config.LoadClicker(flagConfig)
	if err != nil {
		a.logger.Warn("tuning unavailable, using defaults", "err", err)
	}

	a.settings, err = settings.Load(a.settingsPath)
	if err != nil {
		a.logger.Warn("settings partly unreadable", "path", a.settingsPath, "err", err)
		a.notice = settingsNotice
	}

	return a, nil
}

func (a *app) openLogger(target logTarget, path, level string) {
	var w io.Writer = os.Stderr
	if target == logToFile {
		w = io.Discard
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			// #nosec G302 -- log file is meant to be readable by the user
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				a.logSink = f
			}
		}
	}

	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "clicker",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		a.logger.SetLevel(lvl)
	} else {
		a.logger.Warn("unknown log level, using info", "level", level)
	}
}

// options returns the game options for a new session.
func (a *app) options() registry.Options {
	return registry.Options{
		Settings:      a.settings,
		Tuning:        a.tuning,
		HighScorePath: a.highScorePath,
		Notice:        a.notice,
		Logger:        a.logger,
	}
}

// deps opens the score history and bundles what a local session needs.
// A missing database only disables the history.
func (a *app) deps() *tui.Deps {
	store, err := storage.Open(a.dbPath)
	if err != nil {
		a.logger.Warn("score history unavailable", "path", a.dbPath, "err", err)
		store = nil
	}
	return &tui.Deps{
		Store:        store,
		Options:      a.options(),
		SettingsPath: a.settingsPath,
		SessionID:    uuid.NewString(),
		Bell:         os.Stdout,
	}
}

// runtimeConfig sizes the session to the terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

func (a *app) close(d *tui.Deps) {
	if d != nil && d.Store != nil {
		if err := d.Store.Close(); err != nil {
			a.logger.Warn("closing score history", "err", err)
		}
	}
	if a.logSink != nil {
		a.logSink.Close()
	}
}

// fail prints an error for the user and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
