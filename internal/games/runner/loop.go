package runner

import (
	"time"

	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
)

// Loop maps host frames to simulation ticks. It never owns a timer: hosts
// call Frame from their own refresh callback.
type Loop struct {
	session *Session
	cfg     config.LoopConfig
	step    time.Duration
	acc     time.Duration
}

// NewLoop creates a frame loop for the session.
func NewLoop(s *Session, cfg config.LoopConfig) *Loop {
	l := &Loop{session: s, cfg: cfg}
	if cfg.FixedTimestep && cfg.StepHz > 0 {
		l.step = time.Second / time.Duration(cfg.StepHz)
	}
	return l
}

// Session returns the driven session.
func (l *Loop) Session() *Session { return l.session }

// Fixed reports whether the loop runs a fixed-timestep accumulator.
func (l *Loop) Fixed() bool { return l.step > 0 }

// Frame advances the simulation for one host frame and renders into dst when
// it is not nil. Nothing happens unless the session is playing, so the last
// drawn frame stays on the host's surface after a run ends. It returns the
// number of ticks run.
func (l *Loop) Frame(dst core.Surface, opts RenderOptions, elapsed time.Duration) int {
	if l.session.State() != StatePlaying {
		l.acc = 0
		return 0
	}

	ticks := 0
	if !l.Fixed() {
		l.session.Step()
		ticks = 1
	} else {
		l.acc += elapsed
		limit := l.cfg.MaxCatchUp
		if limit <= 0 {
			limit = 1
		}
		for l.acc >= l.step && ticks < limit {
			l.session.Step()
			l.acc -= l.step
			ticks++
			if l.session.State() != StatePlaying {
				break
			}
		}
		if ticks == limit && l.acc >= l.step {
			// Too far behind; drop the backlog instead of spiralling.
			l.acc = 0
		}
	}

	if dst != nil {
		l.session.Render(dst, opts)
	}
	return ticks
}
