package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
	"github.com/vovakirdan/groove-run/internal/games/runner"
	"github.com/vovakirdan/groove-run/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testOptions() Options {
	rt := core.DefaultConfig()
	rt.Seed = 7
	return Options{Runner: config.DefaultRunnerConfig(), Runtime: rt}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartAndTick(t *testing.T) {
	m := NewModel(testOptions())
	if m.Session().State() != runner.StateStart {
		t.Fatal("new model should be on the start screen")
	}
	if !strings.Contains(m.View(), "press enter to start") {
		t.Error("start overlay missing")
	}

	m = update(t, m, keyMsg("enter"))
	if m.Session().State() != runner.StatePlaying {
		t.Fatalf("State() = %v after enter, want playing", m.Session().State())
	}
	if m.hud.runID == "" {
		t.Error("run ID not assigned")
	}

	now := time.Now()
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*time.Second/60)))
	}
	if m.Session().Tick() != 5 {
		t.Errorf("Tick() = %d, want 5", m.Session().Tick())
	}
}

func TestModelJumpOnlyWhilePlaying(t *testing.T) {
	m := NewModel(testOptions())

	m = update(t, m, keyMsg(" "))
	m = update(t, m, keyMsg("enter"))
	m = update(t, m, TickMsg(time.Now()))
	if m.Session().Player().Airborne {
		t.Fatal("jump pressed on the start screen carried into the run")
	}

	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg(time.Now()))
	if !m.Session().Player().Airborne {
		t.Error("space did not jump")
	}
}

func TestModelToggles(t *testing.T) {
	m := NewModel(testOptions())

	m = update(t, m, keyMsg("d"))
	if !m.debug || !m.renderOptions().Debug {
		t.Error("d did not enable hitboxes")
	}
	m = update(t, m, keyMsg("m"))
	if !m.Session().Muted() || !strings.Contains(m.View(), "[muted]") {
		t.Error("m did not mute")
	}
	m = update(t, m, keyMsg("m"))
	if m.Session().Muted() {
		t.Error("second m did not unmute")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions())
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestModelShare(t *testing.T) {
	tests := []struct {
		name       string
		copyErr    error
		noCopy     bool
		wantStatus string
	}{
		{"clipboard", nil, false, "copied to clipboard"},
		{"clipboard fails", errors.New("no display"), false, "I scored 40 points"},
		{"no clipboard", nil, true, "I scored 40 points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copied string
			opts := testOptions()
			if !tt.noCopy {
				opts.Copy = func(s string) error {
					copied = s
					return tt.copyErr
				}
			}
			m := NewModel(opts)

			m = update(t, m, keyMsg("s"))
			if !strings.Contains(m.hud.status, "finish a run") {
				t.Errorf("status before any run = %q", m.hud.status)
			}

			m.hud.summary = &runner.Summary{Score: 40, Tokens: 0}
			m = update(t, m, keyMsg("s"))
			if !strings.HasPrefix(m.hud.status, tt.wantStatus) {
				t.Errorf("status = %q, want prefix %q", m.hud.status, tt.wantStatus)
			}
			if !tt.noCopy && !strings.HasPrefix(copied, "I scored 40 points") {
				t.Errorf("copied %q", copied)
			}
		})
	}
}

func TestModelBestScorePersistence(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveHighScore("ada", 500); err != nil {
		t.Fatal(err)
	}

	opts := testOptions()
	opts.Store = store
	opts.PlayerKey = "ada"
	m := NewModel(opts)

	if m.Session().HighScore() != 500 {
		t.Errorf("HighScore() = %d, want 500 from the store", m.Session().HighScore())
	}
	if !strings.Contains(m.hudLine(), "BEST 500") {
		t.Errorf("HUD = %q, want stored best", m.hudLine())
	}

	m.saveHighScore(900)
	got, err := store.HighScore("ada")
	if err != nil || got != 900 {
		t.Errorf("stored best = %d, %v; want 900", got, err)
	}
}

func TestModelGameOverOverlay(t *testing.T) {
	m := NewModel(testOptions())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, keyMsg("enter"))

	now := time.Now()
	for i := 0; i < 5000 && m.Session().State() == runner.StatePlaying; i++ {
		m = update(t, m, TickMsg(now))
	}
	if m.Session().State() != runner.StateGameOver {
		t.Fatal("run without jumping never ended")
	}

	view := m.View()
	if !strings.Contains(view, "GAME OVER") || !strings.Contains(view, "enter: run again") {
		t.Errorf("game over overlay missing:\n%s", view)
	}

	m = update(t, m, keyMsg("enter"))
	if m.Session().State() != runner.StatePlaying || m.hud.summary != nil {
		t.Error("enter did not restart from game over")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testOptions())
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 38 {
		t.Errorf("screen = %dx%d, want 120x38", m.screen.Width(), m.screen.Height())
	}
	w, h := m.surface.Size()
	if w != 800 || h != 480 {
		t.Errorf("logical surface changed to %vx%v", w, h)
	}
}
