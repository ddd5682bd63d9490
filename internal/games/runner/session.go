// Package runner implements the Groove Run endless runner: a fixed-step
// simulation of a jumping player, scrolling obstacles and tokens, particle
// bursts and screen shake, plus a pure render step and the
// start/playing/game-over state machine that ties them together.
//
// A Session owns all mutable state and is driven from a single goroutine.
package runner

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyPlaying is returned by Start while a run is in progress.
	ErrAlreadyPlaying = errors.New("runner: session already playing")
	// ErrNotPlaying is returned by RecordGameOver outside a run.
	ErrNotPlaying = errors.New("runner: session not playing")
)

// Session is the game aggregate: lifecycle state, score, speed and the world.
type Session struct {
	cfg      config.RunnerConfig
	runtime  core.RuntimeConfig
	ramp     *config.SpeedRamp
	rng      *rand.Rand
	world    World
	commands *core.CommandQueue

	state     State
	score     int
	tokens    int
	speed     float64
	tick      int
	highScore int
	muted     bool

	listener Listener
	audio    AudioSink
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithListener sets the host UI collaborator.
func WithListener(l Listener) Option {
	return func(s *Session) { s.listener = l }
}

// WithAudio sets the audio sink for cues.
func WithAudio(a AudioSink) Option {
	return func(s *Session) { s.audio = a }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithHighScore seeds the persisted best score.
func WithHighScore(v int) Option {
	return func(s *Session) {
		if v > 0 {
			s.highScore = v
		}
	}
}

// NewSession creates a session in StateStart with the player on the ground.
func NewSession(cfg config.RunnerConfig, runtime core.RuntimeConfig, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		runtime:  runtime,
		ramp:     config.NewSpeedRamp(cfg.Physics.BaseSpeed, cfg.Difficulty),
		rng:      rand.New(rand.NewSource(runtime.Seed)),
		commands: core.NewCommandQueue(),
		state:    StateStart,
		listener: ListenerFuncs{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.world = World{
		Obstacles:    make([]Obstacle, 0, 8),
		Collectibles: make([]Collectible, 0, 8),
		Particles:    make([]Particle, 0, 64),
	}
	s.speed = s.ramp.Initial()
	s.placePlayer()
	return s
}

// Start begins a new run from StateStart or StateGameOver.
// All per-run values return to their defaults and every entity collection is
// emptied.
func (s *Session) Start() error {
	if s.state == StatePlaying {
		return ErrAlreadyPlaying
	}

	s.score = 0
	s.tokens = 0
	s.speed = s.ramp.Initial()
	s.tick = 0
	s.world.clear()
	s.commands.Clear()
	s.placePlayer()
	s.state = StatePlaying

	s.logger.Debug("run started", "speed", s.speed, "best", s.highScore)
	s.play(CueStart)
	s.emitScore()
	return nil
}

// RecordGameOver ends the current run. It updates the best score when beaten
// and emits the run summary.
func (s *Session) RecordGameOver() error {
	if s.state != StatePlaying {
		return ErrNotPlaying
	}
	s.state = StateGameOver

	newBest := false
	if s.score > s.highScore {
		s.highScore = s.score
		newBest = true
		s.listener.HighScoreChanged(s.highScore)
	}

	summary := Summary{
		Score:     s.score,
		Tokens:    s.tokens,
		HighScore: s.highScore,
		NewBest:   newBest,
		Ticks:     s.tick,
	}
	s.logger.Info("run over", "score", s.score, "tokens", s.tokens, "ticks", s.tick, "best", newBest)
	s.listener.GameOver(summary)
	s.play(CueGameOver)
	return nil
}

// RequestJump queues a jump for the next tick. This is the only entry point
// for input adapters.
func (s *Session) RequestJump() {
	s.commands.Push(core.CommandJump)
}

// Enqueue queues an arbitrary command for the next tick.
func (s *Session) Enqueue(c core.Command) {
	s.commands.Push(c)
}

// ToggleMute flips audio muting and returns the new muted state.
func (s *Session) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Muted reports whether cues are suppressed.
func (s *Session) Muted() bool {
	return s.muted
}

// Resize changes the surface size. A grounded player is moved onto the new
// ground line; an airborne one is clamped if it ended up below it.
func (s *Session) Resize(w, h float64) {
	s.runtime.SurfaceW = w
	s.runtime.SurfaceH = h

	p := &s.world.Player
	if !p.Airborne || p.Y > s.groundY() {
		p.Y = s.groundY()
		p.VY = 0
		p.Airborne = false
	}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current run score.
func (s *Session) Score() int { return s.score }

// Tokens returns tokens collected in the current run.
func (s *Session) Tokens() int { return s.tokens }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// Speed returns the current scroll speed in pixels per tick.
func (s *Session) Speed() float64 { return s.speed }

// Tick returns ticks simulated in the current run.
func (s *Session) Tick() int { return s.tick }

// Scoreboard returns the live score display values.
func (s *Session) Scoreboard() Scoreboard {
	return Scoreboard{Score: s.score, Tokens: s.tokens, HighScore: s.highScore}
}

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.world.Player }

// Obstacles returns the active obstacles. The slice must not be modified.
func (s *Session) Obstacles() []Obstacle { return s.world.Obstacles }

// Collectibles returns the active tokens. The slice must not be modified.
func (s *Session) Collectibles() []Collectible { return s.world.Collectibles }

// Particles returns the live particles. The slice must not be modified.
func (s *Session) Particles() []Particle { return s.world.Particles }

// Shake returns the current screen shake.
func (s *Session) Shake() Shake { return s.world.Shake }

// GroundY returns the player's resting Y coordinate.
func (s *Session) GroundY() float64 { return s.groundY() }

// groundLine returns the top edge of the ground strip.
func (s *Session) groundLine() float64 {
	return s.runtime.SurfaceH - s.cfg.Surface.GroundHeight
}

// groundY returns the top edge of a standing player.
func (s *Session) groundY() float64 {
	return s.groundLine() - s.cfg.Player.Height
}

// placePlayer resets the player onto the ground.
func (s *Session) placePlayer() {
	s.world.Player = Player{
		X: s.cfg.Player.X,
		Y: s.groundY(),
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
}

// play fires a cue. Failures never affect gameplay.
func (s *Session) play(c Cue) {
	if s.muted || s.audio == nil {
		return
	}
	if err := s.audio.Play(c); err != nil {
		s.logger.Debug("audio cue failed", "cue", c, "error", err)
	}
}

// emitScore pushes the live score to the listener.
func (s *Session) emitScore() {
	s.listener.ScoreChanged(s.Scoreboard())
}
