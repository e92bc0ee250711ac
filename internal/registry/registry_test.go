package registry

import (
	"testing"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/settings"
)

type stubGame struct {
	id string
	s  settings.Settings
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Settings() settings.Settings          { return g.s }
func (g *stubGame) ApplySettings(settings.Settings) bool { return false }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func(opts Options) Game { return &stubGame{id: "stub-a", s: opts.Settings} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist")
	}
	if Exists("stub-missing") {
		t.Error("unregistered mode should not exist")
	}

	want := settings.New(settings.WithDuration(42))
	g, err := Create("stub-a", Options{Settings: want})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Settings() != want {
		t.Errorf("options were not passed to the factory: %+v", g.Settings())
	}

	if _, err := Create("stub-missing", Options{}); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-c", func(Options) Game { return &stubGame{id: "stub-c"} })
	Register("stub-b", func(Options) Game { return &stubGame{id: "stub-b"} })

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.Title != "Stub "+info.ID {
			t.Errorf("title for %s = %q", info.ID, info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(Options) Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", func(Options) Game { return &stubGame{id: "stub-dup"} })
}
