package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
	"github.com/vovakirdan/groove-run/internal/games/runner"
	"github.com/vovakirdan/groove-run/internal/storage"
)

// Rows reserved around the playfield.
const (
	hudRows  = 1
	helpRows = 1
)

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorGold.Hex()))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a terminal session.
type Options struct {
	Runner    config.RunnerConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // Nil runs without persistence
	PlayerKey string         // Best-score key; defaults to storage.DefaultKey
	Logger    *log.Logger

	// Copy receives the share message. Nil shows it in the status line
	// instead.
	Copy func(string) error
}

// hud holds values pushed by session callbacks. Bubble Tea copies the model
// on every update, so this lives behind a pointer.
type hud struct {
	board   runner.Scoreboard
	summary *runner.Summary
	status  string
	runID   string
}

// Model is the Bubble Tea model for one runner session.
type Model struct {
	session *runner.Session
	loop    *runner.Loop
	screen  *core.Screen
	surface *CellSurface
	hud     *hud

	keys KeyMap
	help help.Model

	store     *storage.Store
	playerKey string
	logger    *log.Logger
	copy      func(string) error

	tickRate int
	lastTick time.Time
	debug    bool
	dirty    bool // Redraw a frozen frame on the next tick
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with a session in the start state.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.SurfaceW <= 0 || rt.SurfaceH <= 0 {
		def := core.DefaultConfig()
		rt.SurfaceW, rt.SurfaceH = def.SurfaceW, def.SurfaceH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	playerKey := opts.PlayerKey
	if playerKey == "" {
		playerKey = storage.DefaultKey
	}

	best := 0
	if opts.Store != nil {
		v, err := opts.Store.HighScore(playerKey)
		if err != nil {
			logger.Warn("could not load best score", "player", playerKey, "error", err)
		}
		best = v
	}

	h := &hud{}
	m := Model{
		hud:       h,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		store:     opts.Store,
		playerKey: playerKey,
		logger:    logger,
		copy:      opts.Copy,
		tickRate:  rt.TickRate,
		dirty:     true,
		width:     80,
		height:    24,
	}

	listener := runner.ListenerFuncs{
		OnScore: func(b runner.Scoreboard) { h.board = b },
		OnGameOver: func(s runner.Summary) {
			h.summary = &s
			logger.Info("run finished", "run", h.runID, "player", playerKey,
				"score", s.Score, "tokens", s.Tokens, "ticks", s.Ticks, "new_best", s.NewBest)
		},
		OnHighScore: m.saveHighScore,
	}

	m.session = runner.NewSession(opts.Runner, rt,
		runner.WithListener(listener),
		runner.WithLogger(logger),
		runner.WithHighScore(best),
	)
	m.loop = runner.NewLoop(m.session, opts.Runner.Loop)
	m.screen = core.NewScreen(m.width, m.height-hudRows-helpRows)
	m.surface = NewCellSurface(m.screen, rt.SurfaceW, rt.SurfaceH)
	h.board = m.session.Scoreboard()
	return m
}

// Session returns the driven session.
func (m Model) Session() *runner.Session { return m.session }

// Init starts the frame timer.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		if m.session.State() == runner.StatePlaying {
			m.session.RequestJump()
		}

	case key.Matches(msg, m.keys.Start):
		if m.session.State() != runner.StatePlaying {
			m.startRun()
		}

	case key.Matches(msg, m.keys.Debug):
		m.debug = !m.debug
		m.dirty = true

	case key.Matches(msg, m.keys.Mute):
		if m.session.ToggleMute() {
			m.hud.status = "sound off"
		} else {
			m.hud.status = "sound on"
		}

	case key.Matches(msg, m.keys.Share):
		m.share()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize fits the playfield to the terminal. The logical surface keeps
// its size; only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-hudRows-helpRows, 1))
	m.help.Width = msg.Width
	m.dirty = true
	return m, nil
}

// handleTick runs one host frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	opts := m.renderOptions()
	m.loop.Frame(m.surface, opts, elapsed)

	// Frames stop while not playing; redraw the frozen state on demand.
	if m.session.State() != runner.StatePlaying && m.dirty {
		m.session.Render(m.surface, opts)
	}
	m.dirty = false

	return m, tickCmd(m.tickRate)
}

// startRun begins a new run under a fresh run ID.
func (m *Model) startRun() {
	m.hud.summary = nil
	m.hud.status = ""
	m.hud.runID = uuid.NewString()
	m.lastTick = time.Time{}

	if err := m.session.Start(); err != nil {
		m.logger.Error("could not start run", "error", err)
		return
	}
	m.logger.Info("run started", "run", m.hud.runID, "player", m.playerKey)
}

// share hands the last run's share message to the clipboard.
func (m *Model) share() {
	if m.hud.summary == nil {
		m.hud.status = "finish a run to share it"
		return
	}
	text := m.hud.summary.Share()
	if m.copy == nil {
		m.hud.status = text
		return
	}
	if err := m.copy(text); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.hud.status = text
		return
	}
	m.hud.status = "copied to clipboard"
}

// saveHighScore persists a new best score. Failures are logged only.
func (m Model) saveHighScore(v int) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveHighScore(m.playerKey, v); err != nil {
		m.logger.Warn("could not save best score", "player", m.playerKey, "error", err)
	}
}

func (m Model) renderOptions() runner.RenderOptions {
	return runner.RenderOptions{Debug: m.debug}
}

// View renders the HUD, playfield and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawOverlay()

	var b strings.Builder
	b.WriteString(m.hudLine())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.hud.status != "" {
		b.WriteString(statusStyle.Render(m.hud.status))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// hudLine renders the score display.
func (m Model) hudLine() string {
	board := m.hud.board
	line := hudStyle.Render(fmt.Sprintf("SCORE %d   $PEDRO %d   BEST %d   SPEED %.1f",
		board.Score, board.Tokens, board.HighScore, m.session.Speed()))

	var flags []string
	if m.debug {
		flags = append(flags, "[hitboxes]")
	}
	if m.session.Muted() {
		flags = append(flags, "[muted]")
	}
	if len(flags) > 0 {
		line += "  " + flagStyle.Render(strings.Join(flags, " "))
	}
	return line
}

// drawOverlay writes the start or game-over panel onto the screen.
func (m Model) drawOverlay() {
	var lines []string
	switch m.session.State() {
	case runner.StateStart:
		lines = []string{
			"PEDRO'S GROOVE RUN",
			"",
			"jump the FUD, grab the $PEDRO",
			"",
			"press enter to start",
		}
	case runner.StateGameOver:
		sum := m.hud.summary
		if sum == nil {
			return
		}
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("score %d   tokens %d", sum.Score, sum.Tokens),
			fmt.Sprintf("best %d", sum.HighScore),
		}
		if sum.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "", "enter: run again   s: share")
	default:
		return
	}

	top := (m.screen.Height() - len(lines)) / 2
	for i, line := range lines {
		x := (m.screen.Width() - len([]rune(line))) / 2
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorGold
		}
		m.screen.DrawTextColor(x, top+i, line, c)
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
