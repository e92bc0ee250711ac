package clicker

import (
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/settings"
)

// Registered mode identifiers.
const (
	ModeClassic   = "classic"
	ModeQuick     = "quick"
	ModeChallenge = "challenge"
)

func init() {
	register(ModeClassic, "Classic", settings.PresetClassic)
	register(ModeQuick, "Quick Round", settings.PresetQuick)
	register(ModeChallenge, "Challenge", settings.PresetChallenge)
}

func register(id, title string, preset settings.Preset) {
	registry.Register(id, func(opts registry.Options) registry.Game {
		return New(id, title, preset, opts)
	})
}
