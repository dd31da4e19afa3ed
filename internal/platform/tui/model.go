package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/host"
	"github.com/reone-boardgame/palette-roulette/internal/palette"
	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

// footerHeight is the number of terminal rows below the playfield.
const footerHeight = 2

// Options configures the terminal front-end.
type Options struct {
	Runtime core.RuntimeConfig
	Runner  config.RunnerConfig
	Logger  *log.Logger
	Host    runner.HostChannel // optional extra receiver of host events
	Clock   core.Clock         // times long presses; the system clock when nil
}

// Result is what the session ended with.
type Result struct {
	Played  bool // at least one run reached game over
	Score   int
	Theme   palette.Theme
	Adopted bool // the player chose to use the final colors
	Closed  bool // the game asked to be closed
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	inbox    *host.Recorder
	keys     KeyMap
	help     help.Model
	theme    Theme
	logger   *log.Logger
	runtime  core.RuntimeConfig
	display  config.RunnerDisplay
	ticking  bool // a TickMsg is already scheduled
	holdID   int
	result   Result
	quitting bool
}

// NewModel creates a model and builds the game for the initial viewport.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if rt.ViewportW <= 0 || rt.ViewportH <= 0 {
		def := core.DefaultConfig()
		rt.ViewportW, rt.ViewportH = def.ViewportW, def.ViewportH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	display := opts.Runner.Display
	cols := max(int(float64(rt.ViewportW)/display.CellWidth), 1)
	rows := max(int(float64(rt.ViewportH)/display.CellHeight), 1)
	screen := core.NewScreen(cols, rows)
	renderer := NewScreenRenderer(screen, display.CellWidth, display.CellHeight)
	rt.ViewportW, rt.ViewportH = renderer.Viewport()

	inbox := &host.Recorder{}
	gameOpts := []runner.Option{runner.WithHost(host.Multi{inbox, host.NewLog(logger), opts.Host})}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, runner.WithClock(opts.Clock))
	}
	game := runner.New(opts.Runner, gameOpts...)
	game.Reset(rt)
	game.Render(renderer)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		screen:   screen,
		renderer: renderer,
		inbox:    inbox,
		keys:     DefaultKeyMap(),
		help:     h,
		theme:    DefaultTheme(),
		logger:   logger,
		runtime:  rt,
		display:  display,
	}
}

// Init implements tea.Model. Frames are only requested once a run starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case releaseMsg:
		if msg.id == m.holdID {
			m.game.PressEnd()
		}
	}

	return m, nil
}

func (m Model) phase() runner.Phase {
	return m.game.Status().Phase
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.phase()
	intent, action := m.keys.MapKey(msg, phase)

	var cmd tea.Cmd
	switch intent {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case IntentTap:
		m.game.PressStart()
		m.game.PressEnd()

	case IntentHold:
		if m.game.PressStart() {
			m.holdID++
			cmd = releaseCmd(m.holdID, m.display.KeyHold())
		}

	case IntentAction:
		in := core.NewInputFrame()
		in.Set(action)
		m.game.Apply(in)
		if action == core.ActionRestart {
			m.logger.Debug("restart")
		}
	}

	return m.afterInput(cmd)
}

// handleMouse binds the pointer to press start/end. On the start screen a
// click inside the box starts the run and a click outside dismisses it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.phase() {
	case runner.PhaseStart:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		box := startBox(m.screen.Width(), m.screen.Height())
		if msg.X >= box.X && msg.X < box.Right() && msg.Y >= box.Y && msg.Y < box.Bottom() {
			m.game.Start()
		} else {
			m.game.Dismiss()
		}

	case runner.PhaseRunning:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.game.PressStart()
			}
		case tea.MouseActionRelease:
			m.game.PressEnd()
		}
	}

	return m.afterInput(nil)
}

// handleResize rebuilds the game for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols := max(msg.Width, 1)
	rows := max(msg.Height-footerHeight, 1)
	m.screen.Resize(cols, rows)

	w, h := m.renderer.Viewport()
	m.runtime.ViewportW, m.runtime.ViewportH = w, h
	m.game.Resize(w, h)
	m.game.Render(m.renderer)
	m.help.Width = msg.Width

	m.logger.Debug("resize", "cols", cols, "rows", rows, "viewport", fmt.Sprintf("%dx%d", w, h))
	return m.afterInput(nil)
}

// handleTick runs one frame and requests the next while the run lasts.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false

	var cmd tea.Cmd
	if m.game.Frame(m.renderer) {
		m.ticking = true
		cmd = tickCmd(m.runtime.TickRate)
	}
	return m.drainHost(cmd)
}

// afterInput makes sure frames flow while a run is active.
func (m Model) afterInput(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.phase() == runner.PhaseRunning && !m.ticking {
		m.ticking = true
		cmd = tea.Batch(cmd, tickCmd(m.runtime.TickRate))
	}
	return m.drainHost(cmd)
}

// drainHost reacts to the events the game sent since the last message.
func (m Model) drainHost(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	for _, e := range m.inbox.Events() {
		switch ev := e.(type) {
		case runner.GameEnded:
			m.result.Played = true
			m.result.Score = ev.Score
			m.result.Theme = palette.Theme{Main: ev.Main, Sub: ev.Sub}
		case runner.ThemeAdopted:
			m.result.Adopted = true
			m.result.Theme = palette.Theme{Main: ev.Main, Sub: ev.Sub}
		case runner.ModalCloseRequested:
			m.result.Closed = true
			m.quitting = true
		}
	}
	m.inbox.Reset()

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// Result returns what the session ended with.
func (m Model) Result() Result {
	return m.result
}

// startBox is the start screen dialog area.
func startBox(w, h int) core.Area {
	bw := min(w, 38)
	bh := min(h, 6)
	return core.Area{X: (w - bw) / 2, Y: (h - bh) / 2, W: bw, H: bh}
}

// drawOverlay puts the start or game over dialog on top of the playfield.
func (m Model) drawOverlay() {
	var title, line string
	switch m.phase() {
	case runner.PhaseStart:
		title, line = "PALETTE ROULETTE", "space / click to start"
	case runner.PhaseGameOver:
		title, line = "GAME OVER", fmt.Sprintf("Score: %d", m.game.Status().Score)
	default:
		return
	}

	box := startBox(m.screen.Width(), m.screen.Height())
	m.screen.FillArea(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorBrightWhite)
	m.screen.DrawTextCentered(box.Y+2, title, core.ColorBrightWhite)
	m.screen.DrawTextCentered(box.Y+3, line, core.ColorYellow)
}

// footer renders the status line.
func (m Model) footer() string {
	st := m.game.Status()
	switch st.Phase {
	case runner.PhaseRunning:
		return m.theme.HUD(st.Score, st.Speed, m.game.JumpButtonVisible())
	case runner.PhaseGameOver:
		return m.theme.Swatch("main", st.Theme.Main) + "   " + m.theme.Swatch("sub", st.Theme.Sub)
	default:
		return m.theme.HUDLabel.Render("hold the jump for a higher leap")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawOverlay()
	keys := m.keys.ForPhase(m.phase())
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.footer(),
		m.theme.Help.Render(m.help.View(keys)),
	)
}

// Run starts the Bubble Tea program and returns how the session ended.
func Run(opts Options) (Result, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // reports press and release
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return Result{}, nil
}
