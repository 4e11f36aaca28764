package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
	"github.com/vovakirdan/cubehop/internal/storage"
)

func newTestModel(t *testing.T, holdTicks int) Model {
	t.Helper()
	cfg := config.DefaultHopperConfig()
	cfg.Input.HoldTicks = holdTicks

	m := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the clocks")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsPaused(t *testing.T) {
	m := newTestModel(t, 32)

	m, _ = update(t, m, TickMsg{})
	if !m.Game().State().Paused {
		t.Error("game should start paused")
	}
}

func TestModelPauseKeyStartsPlay(t *testing.T) {
	m := newTestModel(t, 32)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{})
	if m.Game().State().Paused {
		t.Error("pause key should toggle into play on the next tick")
	}
	if cmd == nil {
		t.Error("tick should re-arm the frame clock")
	}
}

func TestModelHeldMovementReleases(t *testing.T) {
	m := newTestModel(t, 3)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('d'))

	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	x := m.Game().Snapshot().PlayerX
	if math.Abs(x-0.3) > 1e-9 {
		t.Errorf("PlayerX = %v, expected 0.3 after a 3-tick hold", x)
	}
}

func TestModelTurnAroundDropsOtherDirection(t *testing.T) {
	m := newTestModel(t, 100)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, TickMsg{})

	// One step right, then one step left with right released
	x := m.Game().Snapshot().PlayerX
	if math.Abs(x) > 1e-9 {
		t.Errorf("PlayerX = %v, expected 0", x)
	}
}

func TestModelSpawnWhilePaused(t *testing.T) {
	m := newTestModel(t, 32)

	m, cmd := update(t, m, SpawnMsg{})
	if got := m.Game().State().Live; got != 1 {
		t.Errorf("Live = %d, expected 1", got)
	}
	if cmd == nil {
		t.Error("spawn should re-arm the spawn timer")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 32)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, 32)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "Cube Hopper") {
		t.Error("view should show the game title")
	}
	if !strings.Contains(view, pausedBanner) {
		t.Error("view should show the paused banner")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if strings.Contains(m.View(), pausedBanner) {
		t.Error("banner should disappear while playing")
	}
}

func TestModelQuitEndsRun(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer store.Close()

	cfg := config.DefaultHopperConfig()
	m := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, store, nil)
	m.Init()
	id := m.Recorder().RunID()

	m, _ = update(t, m, runeKey('q'))

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID error = %v", err)
	}
	if run.EndReason != storage.EndReasonQuit {
		t.Errorf("EndReason = %q, expected %q", run.EndReason, storage.EndReasonQuit)
	}
	if run.Digest != m.Game().Snapshot().Digest() {
		t.Errorf("Digest = %x, expected %x", run.Digest, m.Game().Snapshot().Digest())
	}
}
