package window

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
	"github.com/vovakirdan/groove-run/internal/games/runner"
	"github.com/vovakirdan/groove-run/internal/storage"
)

type cueLog []runner.Cue

func (l *cueLog) Play(c runner.Cue) error {
	*l = append(*l, c)
	return nil
}

func testOptions() Options {
	rt := core.DefaultConfig()
	rt.Seed = 11
	return Options{
		Runner:  config.DefaultRunnerConfig(),
		Runtime: rt,
		Copy:    func(string) error { return nil },
	}
}

func TestNewGame(t *testing.T) {
	g := New(testOptions())
	if g.Session().State() != runner.StateStart {
		t.Errorf("State() = %v, want start", g.Session().State())
	}
	if w, h := g.Layout(1920, 1080); w != 800 || h != 480 {
		t.Errorf("Layout() = %dx%d, want 800x480", w, h)
	}
}

func TestApplyStartAndJump(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"enter", Input{Start: true}},
		{"tap", Input{Jump: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cues cueLog
			opts := testOptions()
			opts.Audio = &cues
			g := New(opts)

			if err := g.Apply(tt.input); err != nil {
				t.Fatalf("Apply() failed: %v", err)
			}
			if g.Session().State() != runner.StatePlaying {
				t.Fatalf("State() = %v, want playing", g.Session().State())
			}
			if g.runID == "" {
				t.Error("run ID not assigned")
			}
			if len(cues) != 1 || cues[0] != runner.CueStart {
				t.Errorf("cues = %v, want start cue", cues)
			}
			// Starting must not also queue a jump.
			g.advance()
			if g.Session().Player().Airborne {
				t.Error("start input also jumped")
			}
		})
	}
}

func TestApplyJumpWhilePlaying(t *testing.T) {
	g := New(testOptions())
	g.Apply(Input{Start: true})
	g.Apply(Input{Jump: true})
	g.advance()

	if !g.Session().Player().Airborne {
		t.Error("jump input did not jump")
	}
}

func TestApplyJumpAfterGameOver(t *testing.T) {
	g := New(testOptions())
	g.Apply(Input{Start: true})
	for i := 0; i < 5000 && g.Session().State() == runner.StatePlaying; i++ {
		g.advance()
	}
	if g.Session().State() != runner.StateGameOver {
		t.Fatal("run without jumping never ended")
	}
	finished := g.runID

	g.Apply(Input{Jump: true})
	if g.Session().State() != runner.StateGameOver || g.summary == nil {
		t.Errorf("jump on the game over screen restarted: state=%v", g.Session().State())
	}

	g.Apply(Input{Start: true})
	if g.Session().State() != runner.StatePlaying {
		t.Fatalf("State() = %v after Start, want playing", g.Session().State())
	}
	if g.runID == finished {
		t.Error("restart kept the finished run ID")
	}
}

func TestApplyToggles(t *testing.T) {
	g := New(testOptions())

	g.Apply(Input{Debug: true})
	if !g.renderOptions().Debug {
		t.Error("debug not enabled")
	}
	g.Apply(Input{Mute: true})
	if !g.Session().Muted() || g.status != "sound off" {
		t.Errorf("mute: muted=%v status=%q", g.Session().Muted(), g.status)
	}
	g.Apply(Input{Debug: true, Mute: true})
	if g.renderOptions().Debug || g.Session().Muted() {
		t.Error("second toggle did not reset")
	}
}

func TestApplyQuit(t *testing.T) {
	g := New(testOptions())
	if err := g.Apply(Input{Quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Apply(Quit) = %v, want ebiten.Termination", err)
	}
}

func TestShare(t *testing.T) {
	var copied string
	opts := testOptions()
	opts.Copy = func(s string) error {
		copied = s
		return nil
	}
	g := New(opts)

	g.Apply(Input{Share: true})
	if !strings.Contains(g.status, "finish a run") {
		t.Errorf("status before any run = %q", g.status)
	}

	g.summary = &runner.Summary{Score: 70, Tokens: 1}
	g.Apply(Input{Share: true})
	if g.status != "copied to clipboard" || !strings.HasPrefix(copied, "I scored 70 points") {
		t.Errorf("status = %q, copied = %q", g.status, copied)
	}

	opts.Copy = func(string) error { return errors.New("no clipboard") }
	g = New(opts)
	g.summary = &runner.Summary{Score: 70}
	g.Apply(Input{Share: true})
	if !strings.Contains(g.status, "could not copy") {
		t.Errorf("status after clipboard failure = %q", g.status)
	}
}

func TestStatusExpires(t *testing.T) {
	g := New(testOptions())
	g.Apply(Input{Mute: true})
	for i := 0; i < statusTicks; i++ {
		g.advance()
	}
	if g.status != "" {
		t.Errorf("status = %q after %d updates, want cleared", g.status, statusTicks)
	}
}

func TestGameOverPersistsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions()
	opts.Store = store
	opts.PlayerKey = "pedro"
	g := New(opts)
	g.Apply(Input{Start: true})

	for i := 0; i < 5000 && g.Session().State() == runner.StatePlaying; i++ {
		g.advance()
	}
	if g.Session().State() != runner.StateGameOver || g.summary == nil {
		t.Fatal("run without jumping never ended")
	}

	got, err := store.HighScore("pedro")
	if err != nil {
		t.Fatal(err)
	}
	if got != g.Session().HighScore() {
		t.Errorf("stored best = %d, session best = %d", got, g.Session().HighScore())
	}
}

func TestStartMuted(t *testing.T) {
	var cues cueLog
	opts := testOptions()
	opts.Audio = &cues
	opts.Muted = true
	g := New(opts)

	g.Apply(Input{Start: true})
	if !g.Session().Muted() || len(cues) != 0 {
		t.Errorf("muted=%v cues=%v, want silent start", g.Session().Muted(), cues)
	}
}
