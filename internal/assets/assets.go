// Package assets loads the runner's sprites and background image in the
// background and publishes each one as it becomes ready.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Background is a JPEG
	_ "image/png"  // Sprite frames are PNGs
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
)

// Animation identifies a sprite frame set.
type Animation int

const (
	AnimRun Animation = iota
	AnimJump
)

// String returns a human-readable name for the animation.
func (a Animation) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Manifest
var (
	RunFrames  = []string{"run0001.png", "run0003.png", "run0009.png", "run0011.png"}
	JumpFrames = []string{"jump0001.png", "jump0003.png", "jump0009.png", "jump0011.png"}
)

const (
	BackdropImage = "pedro.jpg"
	StartSound    = "pedro.mp3"
)

// Frames returns the file names of an animation's frames in play order.
func Frames(a Animation) []string {
	switch a {
	case AnimRun:
		return RunFrames
	case AnimJump:
		return JumpFrames
	default:
		return nil
	}
}

// Library decodes images from a file system on background goroutines.
// Readers never block on loading: an image is either ready or it is not.
// Failed loads are logged once and never retried.
type Library struct {
	fsys   fs.FS
	logger *log.Logger

	mu      sync.RWMutex
	images  map[string]image.Image
	failed  map[string]error
	pending map[string]bool

	wg sync.WaitGroup
}

// NewLibrary creates an empty library reading from fsys.
func NewLibrary(fsys fs.FS, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Library{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]image.Image),
		failed:  make(map[string]error),
		pending: make(map[string]bool),
	}
}

// Load starts decoding name in the background. Loading a name that is
// already ready, pending or failed does nothing.
func (l *Library) Load(name string) {
	l.mu.Lock()
	_, ready := l.images[name]
	_, failed := l.failed[name]
	if ready || failed || l.pending[name] {
		l.mu.Unlock()
		return
	}
	l.pending[name] = true
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.decode(name)

		l.mu.Lock()
		delete(l.pending, name)
		if err != nil {
			l.failed[name] = err
		} else {
			l.images[name] = img
		}
		l.mu.Unlock()

		if err != nil {
			l.logger.Warn("asset load failed", "name", name, "error", err)
			return
		}
		b := img.Bounds()
		l.logger.Debug("asset loaded", "name", name, "w", b.Dx(), "h", b.Dy())
	}()
}

// LoadAll starts loading every sprite frame and the backdrop.
func (l *Library) LoadAll() {
	for _, name := range RunFrames {
		l.Load(name)
	}
	for _, name := range JumpFrames {
		l.Load(name)
	}
	l.Load(BackdropImage)
}

// Wait blocks until every started load has finished.
func (l *Library) Wait() {
	l.wg.Wait()
}

// Ready reports whether name decoded successfully.
func (l *Library) Ready(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.images[name]
	return ok
}

// Image returns a decoded image if it is ready.
func (l *Library) Image(name string) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[name]
	return img, ok
}

// Err returns the load error for name, if loading failed.
func (l *Library) Err(name string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.failed[name]
}

// FramesReady reports whether every frame of the animation is ready. A
// partially loaded set is not drawn.
func (l *Library) FramesReady(a Animation) bool {
	names := Frames(a)
	if len(names) == 0 {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, name := range names {
		if _, ok := l.images[name]; !ok {
			return false
		}
	}
	return true
}

// Frame returns frame i of the animation, wrapping i into range.
func (l *Library) Frame(a Animation, i int) (image.Image, bool) {
	names := Frames(a)
	if len(names) == 0 {
		return nil, false
	}
	i %= len(names)
	if i < 0 {
		i += len(names)
	}
	return l.Image(names[i])
}

// Backdrop returns the translucent background image if it is ready.
func (l *Library) Backdrop() (image.Image, bool) {
	return l.Image(BackdropImage)
}

// ReadFile returns the raw bytes of a non-image asset such as a sound.
func (l *Library) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

func (l *Library) decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}
