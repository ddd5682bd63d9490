package runner

import (
	"fmt"
	"image"

	"github.com/vovakirdan/groove-run/internal/assets"
)

// Scoreboard is the live score display emitted on every score change.
type Scoreboard struct {
	Score     int
	Tokens    int
	HighScore int
}

// Summary is emitted once per run when the session enters GameOver.
type Summary struct {
	Score     int
	Tokens    int
	HighScore int
	NewBest   bool
	Ticks     int
}

// Share returns the message offered to the host's share action.
func (s Summary) Share() string {
	return fmt.Sprintf(
		"I scored %d points and collected %d $PEDRO tokens in Pedro's Groove Run! Can you beat my score?",
		s.Score, s.Tokens,
	)
}

// Listener receives display and persistence notifications from a session.
// Calls happen synchronously on the goroutine that drives the session.
type Listener interface {
	ScoreChanged(Scoreboard)
	GameOver(Summary)
	HighScoreChanged(int)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnScore     func(Scoreboard)
	OnGameOver  func(Summary)
	OnHighScore func(int)
}

func (f ListenerFuncs) ScoreChanged(b Scoreboard) {
	if f.OnScore != nil {
		f.OnScore(b)
	}
}

func (f ListenerFuncs) GameOver(s Summary) {
	if f.OnGameOver != nil {
		f.OnGameOver(s)
	}
}

func (f ListenerFuncs) HighScoreChanged(v int) {
	if f.OnHighScore != nil {
		f.OnHighScore(v)
	}
}

// Cue names an audio event the host may play.
type Cue string

const (
	CueStart    Cue = "start"
	CueJump     Cue = "jump"
	CueGameOver Cue = "gameover"
)

// AudioSink plays cues. Play must not block; a returned error is logged and
// otherwise ignored.
type AudioSink interface {
	Play(Cue) error
}

// AssetSource is the view of the asset loader the render step needs.
// Readiness may change between frames; the renderer never waits for it.
type AssetSource interface {
	FramesReady(anim assets.Animation) bool
	Frame(anim assets.Animation, i int) (image.Image, bool)
	Backdrop() (image.Image, bool)
}
