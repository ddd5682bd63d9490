package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/groove-run/internal/assets"
	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
	"github.com/vovakirdan/groove-run/internal/games/runner"
	"github.com/vovakirdan/groove-run/internal/storage"
)

// statusTicks is how long a status message stays on screen.
const statusTicks = 180

// Options configures a window session.
type Options struct {
	Runner    config.RunnerConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // Nil runs without persistence
	PlayerKey string
	Logger    *log.Logger
	Assets    *assets.Library // Nil draws rectangles only
	Audio     runner.AudioSink
	Muted     bool // Start with cues silenced

	// Copy receives the share message. Defaults to the system clipboard.
	Copy func(string) error
}

// Input is the set of actions requested during one ebiten update.
type Input struct {
	Jump  bool // Mouse, touch, space or up
	Start bool
	Debug bool
	Mute  bool
	Share bool
	Quit  bool
}

// Game implements ebiten.Game around a runner session.
type Game struct {
	session *runner.Session
	loop    *runner.Loop
	surface *Surface
	assets  *assets.Library

	store     *storage.Store
	playerKey string
	logger    *log.Logger
	copy      func(string) error

	width, height float64
	tickRate      int
	touches       []ebiten.TouchID

	board      runner.Scoreboard
	summary    *runner.Summary
	runID      string
	debug      bool
	status     string
	statusLeft int
}

// New creates a game on the start screen and starts loading assets.
func New(opts Options) *Game {
	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.SurfaceW <= 0 || rt.SurfaceH <= 0 {
		rt.SurfaceW, rt.SurfaceH = def.SurfaceW, def.SurfaceH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	playerKey := opts.PlayerKey
	if playerKey == "" {
		playerKey = storage.DefaultKey
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	g := &Game{
		surface:   NewSurface(),
		assets:    opts.Assets,
		store:     opts.Store,
		playerKey: playerKey,
		logger:    logger,
		copy:      copyFn,
		width:     rt.SurfaceW,
		height:    rt.SurfaceH,
		tickRate:  rt.TickRate,
	}

	best := 0
	if g.store != nil {
		v, err := g.store.HighScore(playerKey)
		if err != nil {
			logger.Warn("could not load best score", "player", playerKey, "error", err)
		}
		best = v
	}

	sessionOpts := []runner.Option{
		runner.WithListener(runner.ListenerFuncs{
			OnScore:     func(b runner.Scoreboard) { g.board = b },
			OnGameOver:  g.gameOver,
			OnHighScore: g.saveHighScore,
		}),
		runner.WithLogger(logger),
		runner.WithHighScore(best),
	}
	if opts.Audio != nil {
		sessionOpts = append(sessionOpts, runner.WithAudio(opts.Audio))
	}
	g.session = runner.NewSession(opts.Runner, rt, sessionOpts...)
	g.loop = runner.NewLoop(g.session, opts.Runner.Loop)
	g.board = g.session.Scoreboard()
	if opts.Muted {
		g.session.ToggleMute()
	}

	if g.assets != nil {
		g.assets.LoadAll()
	}
	return g
}

// Session returns the driven session.
func (g *Game) Session() *runner.Session { return g.session }

// Update polls input and advances the simulation by one host frame.
func (g *Game) Update() error {
	if err := g.Apply(g.poll()); err != nil {
		return err
	}
	g.advance()
	return nil
}

// advance runs the simulation for one update at the configured TPS and ages
// the status line.
func (g *Game) advance() {
	g.loop.Frame(nil, g.renderOptions(), time.Second/time.Duration(g.tickRate))
	if g.statusLeft > 0 {
		g.statusLeft--
		if g.statusLeft == 0 {
			g.status = ""
		}
	}
}

// Draw renders the session and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.session.Render(g.surface, g.renderOptions())
	g.drawHUD()
	g.drawOverlay()
}

// Layout keeps the logical surface fixed and lets ebiten scale it.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.width), int(g.height)
}

// Apply performs the actions in one frame of input. Quit returns
// ebiten.Termination.
func (g *Game) Apply(in Input) error {
	if in.Quit {
		return ebiten.Termination
	}

	// Taps start the first run. After a game over only Start restarts.
	switch state := g.session.State(); {
	case state == runner.StatePlaying:
		if in.Jump {
			g.session.RequestJump()
		}
	case in.Start, in.Jump && state == runner.StateStart:
		g.startRun()
	}

	if in.Debug {
		g.debug = !g.debug
	}
	if in.Mute {
		if g.session.ToggleMute() {
			g.setStatus("sound off")
		} else {
			g.setStatus("sound on")
		}
	}
	if in.Share {
		g.share()
	}
	return nil
}

// poll reads this frame's input from ebiten.
func (g *Game) poll() Input {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])

	return Input{
		Jump: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(g.touches) > 0 ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Start: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Debug: inpututil.IsKeyJustPressed(ebiten.KeyD),
		Mute:  inpututil.IsKeyJustPressed(ebiten.KeyM),
		Share: inpututil.IsKeyJustPressed(ebiten.KeyS),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *Game) startRun() {
	g.summary = nil
	g.runID = uuid.NewString()
	if err := g.session.Start(); err != nil {
		g.logger.Error("could not start run", "error", err)
		return
	}
	g.logger.Info("run started", "run", g.runID, "player", g.playerKey)
}

func (g *Game) gameOver(s runner.Summary) {
	g.summary = &s
	g.logger.Info("run finished", "run", g.runID, "player", g.playerKey,
		"score", s.Score, "tokens", s.Tokens, "ticks", s.Ticks, "new_best", s.NewBest)
}

func (g *Game) saveHighScore(v int) {
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveHighScore(g.playerKey, v); err != nil {
		g.logger.Warn("could not save best score", "player", g.playerKey, "error", err)
	}
}

func (g *Game) share() {
	if g.summary == nil {
		g.setStatus("finish a run to share it")
		return
	}
	if err := g.copy(g.summary.Share()); err != nil {
		g.logger.Warn("clipboard unavailable", "error", err)
		g.setStatus("could not copy to clipboard")
		return
	}
	g.setStatus("copied to clipboard")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusLeft = statusTicks
}

func (g *Game) renderOptions() runner.RenderOptions {
	opts := runner.RenderOptions{Debug: g.debug}
	if g.assets != nil {
		opts.Assets = g.assets
	}
	return opts
}

func (g *Game) drawHUD() {
	s := g.surface
	s.Text(g.width/2, 20, fmt.Sprintf("SCORE %d   $PEDRO %d   BEST %d",
		g.board.Score, g.board.Tokens, g.board.HighScore), core.ColorGold)
	if g.status != "" {
		s.Text(g.width/2, g.height-16, g.status, core.ColorWhite)
	}
}

// drawOverlay dims the playfield and shows the start or game-over panel.
func (g *Game) drawOverlay() {
	var lines []string
	switch g.session.State() {
	case runner.StateStart:
		lines = []string{
			"PEDRO'S GROOVE RUN",
			"tap, click or press space to jump",
			"press enter to start",
		}
	case runner.StateGameOver:
		if g.summary == nil {
			return
		}
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("score %d   tokens %d   best %d", g.summary.Score, g.summary.Tokens, g.summary.HighScore),
		}
		if g.summary.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "enter: run again   s: share")
	default:
		return
	}

	s := g.surface
	s.FillRect(0, 0, g.width, g.height, core.ColorBlack.WithAlpha(0.6))
	y := g.height/2 - float64(len(lines)-1)*12
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorGold
		}
		s.Text(g.width/2, y+float64(i)*24, line, c)
	}
}

// Run opens the window and blocks until it closes.
func Run(opts Options, title string) error {
	g := New(opts)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(g.width), int(g.height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tickRate)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
