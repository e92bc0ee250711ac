package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds the overrides read from the process environment.
// Command line flags take precedence over these.
type Env struct {
	Home     string `env:"CTB_HOME"`                        // Directory holding settings and high score files
	DB       string `env:"CTB_DB"`                          // Score history database
	LogFile  string `env:"CTB_LOG_FILE"`                    // Log destination for the local TUI
	LogLevel string `env:"CTB_LOG_LEVEL" envDefault:"info"` // debug, info, warn, error
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	return parseEnv(nil)
}

func parseEnv(environ map[string]string) (Env, error) {
	var e Env
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("config: failed to parse environment: %w", err)
	}
	e.LogLevel = strings.ToLower(strings.TrimSpace(e.LogLevel))
	return e, nil
}

// ResolveHome returns the directory for the per-user files: the override if
// set, otherwise the user's home directory, otherwise the working directory.
func (e Env) ResolveHome(override string) string {
	for _, dir := range []string{override, e.Home} {
		if dir != "" {
			return expandTilde(dir)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ResolveDB returns the score history path. Empty means the storage default.
func (e Env) ResolveDB(override string) string {
	if override != "" {
		return override
	}
	return e.DB
}

// ResolveLogFile returns the log destination. Empty means the default file
// under the home directory.
func (e Env) ResolveLogFile(override, home string) string {
	switch {
	case override != "":
		return expandTilde(override)
	case e.LogFile != "":
		return expandTilde(e.LogFile)
	default:
		return filepath.Join(home, ".ctb", "clicker.log")
	}
}

func expandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
