package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register("zz-stub", "Stub", func(opts Options) (Game, error) {
		got = opts
		return stubGame{id: "zz-stub"}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered game")
	}

	g, err := Create("zz-stub", Options{ConfigPath: "x.yaml", Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" || got.ConfigPath != "x.yaml" || got.Difficulty != "hard" {
		t.Errorf("factory got %+v, game %q", got, g.ID())
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-game", Options{}); err == nil {
		t.Error("unknown game should fail")
	}

	boom := errors.New("boom")
	Register("zz-broken", "Broken", func(Options) (Game, error) { return nil, boom })
	_, err := Create("zz-broken", Options{})
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "zz-broken") {
		t.Errorf("factory error not wrapped: %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })
}
