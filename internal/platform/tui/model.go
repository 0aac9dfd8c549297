package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/score"
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	session   *game.Session
	scores    score.Service
	screen    *core.Screen
	config    core.RuntimeConfig
	input     *Input
	keyMapper *KeyMapper
	gameState core.GameState
	embedded  bool // Back returns to a parent model instead of quitting
	fetched   bool // Leaderboard requested for the current game over
	quitting  bool
	back      bool
}

// NewModel creates a model for the given session. scores may be nil.
func NewModel(session *game.Session, scores score.Service, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		session:   session,
		scores:    scores,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		input:     NewInput(),
		keyMapper: NewKeyMapper(),
	}
}

// Init resets the session and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has its own units; only the viewport changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case LeaderboardMsg:
		m.session.SetLeaderboard(msg.Scores)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	m.input.Press(action)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	frame := m.input.Frame()

	// A restart gets a fresh seed so games differ
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.session.Reset(m.config)
		m.gameState = m.session.State()
		m.fetched = false
		m.input.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.session.Step(frame)
	m.gameState = result.State

	var cmds []tea.Cmd
	if m.gameState.GameOver && !m.fetched {
		m.fetched = true
		m.input.Reset()
		cmds = append(cmds, fetchLeaderboard(m.scores))
	}
	cmds = append(cmds, tickCmd(m.config.TickRate))

	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays session in the terminal until the player quits. The caller
// owns session and closes it afterwards.
func Run(session *game.Session, scores score.Service, cfg core.RuntimeConfig) error {
	model := NewModel(session, scores, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
