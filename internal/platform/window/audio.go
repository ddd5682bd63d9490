package window

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/vovakirdan/groove-run/internal/assets"
	"github.com/vovakirdan/groove-run/internal/games/runner"
)

const sampleRate = 44100

// Sounds plays runner cues through an ebiten audio context. Clips decode in
// the background and cues stay silent until their clip is ready.
type Sounds struct {
	ctx   *audio.Context
	clips *clipSet
}

// NewSounds creates the process audio context and starts decoding the start
// jingle from lib. A missing or broken jingle is logged and leaves the cue
// silent.
func NewSounds(lib *assets.Library, logger *log.Logger) *Sounds {
	s := &Sounds{
		ctx:   audio.NewContext(sampleRate),
		clips: newClipSet(logger),
	}
	if lib != nil {
		s.clips.load(runner.CueStart, assets.StartSound, func() ([]byte, error) {
			return decodeMP3(lib, assets.StartSound)
		})
	}
	return s
}

// Play starts the clip for c without waiting for it to finish.
func (s *Sounds) Play(c runner.Cue) error {
	pcm, ok := s.clips.get(c)
	if !ok {
		return nil
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	return nil
}

// Wait blocks until every started decode has finished.
func (s *Sounds) Wait() {
	s.clips.wait()
}

// clipSet holds decoded PCM per cue, published by background decoders.
type clipSet struct {
	logger *log.Logger

	mu  sync.RWMutex
	pcm map[runner.Cue][]byte

	wg sync.WaitGroup
}

func newClipSet(logger *log.Logger) *clipSet {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &clipSet{logger: logger, pcm: make(map[runner.Cue][]byte)}
}

// load runs decode on a new goroutine and stores the result for c.
// Failures are logged once and never retried.
func (cs *clipSet) load(c runner.Cue, name string, decode func() ([]byte, error)) {
	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		pcm, err := decode()
		if err != nil {
			cs.logger.Warn("sound unavailable", "name", name, "error", err)
			return
		}

		cs.mu.Lock()
		cs.pcm[c] = pcm
		cs.mu.Unlock()
		cs.logger.Debug("sound loaded", "name", name, "bytes", len(pcm))
	}()
}

func (cs *clipSet) get(c runner.Cue) ([]byte, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	pcm, ok := cs.pcm[c]
	return pcm, ok
}

func (cs *clipSet) wait() {
	cs.wg.Wait()
}

func decodeMP3(lib *assets.Library, name string) ([]byte, error) {
	data, err := lib.ReadFile(name)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("window: read %s: %w", name, err)
	}
	return pcm, nil
}
