package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
	"github.com/vovakirdan/cubehop/internal/games/hopper"
	"github.com/vovakirdan/cubehop/internal/logging"
	"github.com/vovakirdan/cubehop/internal/scene"
	"github.com/vovakirdan/cubehop/internal/storage"
)

const pausedBanner = "PAUSED  press P to play"

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a Cube Hopper session.
// Game state lives behind pointers so value copies made by Bubble Tea
// all drive the same game.
type Model struct {
	game       *hopper.Game
	scene      *scene.Terminal
	screen     *core.Screen
	recorder   *Recorder
	logger     *log.Logger
	keys       KeyMap
	keyMapper  *KeyMapper
	holds      *holdTracker
	help       help.Model
	config     core.RuntimeConfig
	spawnEvery time.Duration
	inputFrame core.InputFrame
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model running a fresh game. store and logger may be nil.
func NewModel(cfg config.HopperConfig, runtime core.RuntimeConfig, store *storage.Store, logger *log.Logger) Model {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	terminal := scene.NewTerminal(scene.DefaultCamera(), cfg.Player.HalfExtent)
	game := hopper.New(cfg, terminal)
	terminal.SetTitle(game.Title())
	logger = logger.With("game", game.ID())
	keys := DefaultKeyMap()

	return Model{
		game:       game,
		scene:      terminal,
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		recorder:   NewRecorder(store, logger),
		logger:     logger,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		holds:      newHoldTracker(game.Config().Input.HoldTicks),
		help:       help.New(),
		config:     runtime,
		spawnEvery: game.Config().Obstacles.SpawnInterval,
		inputFrame: core.NewInputFrame(),
		width:      runtime.ScreenW,
		height:     runtime.ScreenH,
	}
}

// Init resets the game, opens the first run and starts both clocks.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.recorder.Begin()
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate)

	return tea.Batch(
		tickCmd(m.config.TickRate),
		spawnCmd(m.spawnEvery),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case SpawnMsg:
		// The spawn timer runs whether or not the game is playing
		m.game.Spawn()
		return m, spawnCmd(m.spawnEvery)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recorder.Sync(m.game)
		m.recorder.Close(storage.EndReasonQuit)
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		// Turning around lets go of the other direction
		m.holds.Drop(opposite(action), &m.inputFrame)
		if m.holds.Press(action) {
			// A release queued by an expired hold must not cancel the new press
			delete(m.inputFrame.Released, action)
			m.inputFrame.Set(action)
		}
	case core.ActionJump, core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.recorder.Observe(result, m.game)

	// Clear input for next frame, then queue releases of expired holds into it
	m.inputFrame.Clear()
	m.holds.Advance(&m.inputFrame)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	gameH := m.height - lipgloss.Height(helpView)
	if gameH < 1 {
		gameH = 1
	}
	m.screen.Resize(m.width, gameH)

	if m.game.State().Paused {
		m.scene.SetStatus(pausedBanner)
	} else {
		m.scene.SetStatus("")
	}
	m.scene.SetBest(m.recorder.Best())
	m.scene.Draw(m.screen)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Game returns the running game.
func (m Model) Game() *hopper.Game {
	return m.game
}

// Recorder returns the session's run recorder.
func (m Model) Recorder() *Recorder {
	return m.recorder
}

// Best returns the best finished run score of this session.
func (m Model) Best() int {
	return m.recorder.Best()
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.HopperConfig, runtime core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, runtime, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
