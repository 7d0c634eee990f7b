package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Model is the Bubble Tea model driving a blockfall session.
type Model struct {
	game    *tetris.Game
	gameCfg tetris.Config
	screen  *core.Screen
	store   *storage.Store
	runtime core.RuntimeConfig
	keys    *KeyMapper

	pending    tetris.Action // at most one action per tick
	lastGame   *tetris.GameView
	lastMenu   *tetris.MenuView
	quitting   bool
	scoreSaved bool // whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given engine config.
func NewModel(gameCfg tetris.Config, store *storage.Store, runtime core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	gameCfg.Seed = runtime.Seed

	return Model{
		game:    tetris.New(gameCfg, time.Now()),
		gameCfg: gameCfg,
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:   store,
		runtime: runtime,
		keys:    NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Keep the earliest unconsumed action; the engine takes one per tick.
	if m.pending == tetris.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick feeds one timestamp and one action to the engine and
// dispatches the resulting change.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	action := m.pending
	m.pending = tetris.ActionNone

	ch := m.game.Frame(time.Time(msg), action)
	switch ch.Kind {
	case tetris.ChangeDraw:
		m.lastGame = ch.Game
		m.lastMenu = nil
	case tetris.ChangeText:
		m.lastMenu = ch.Menu
	case tetris.ChangeRestart:
		return m.restart()
	case tetris.ChangeExit:
		m.quitting = true
		return m, tea.Quit
	}

	// Save score on game over (once)
	if m.game.Over() && !m.scoreSaved {
		if m.store != nil && m.game.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.Score(), m.game.Lines())
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.runtime.TickRate)
}

// restart constructs a fresh engine with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.runtime.Seed = time.Now().UnixNano()
	m.gameCfg.Seed = m.runtime.Seed
	m.game = tetris.New(m.gameCfg, time.Now())
	m.lastGame = nil
	m.lastMenu = nil
	m.scoreSaved = false
	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.lastGame != nil {
		drawGame(m.screen, m.lastGame)
	}
	if m.lastMenu != nil {
		drawMenu(m.screen, m.lastMenu)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg tetris.Config, store *storage.Store, runtime core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
