package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/game"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// Model hosts a running game inside Bubble Tea. The terminal owns the
// cadence: each TickMsg advances the loop by one frame with the real
// elapsed time, and key messages are forwarded to the backend's event
// queue so the loop sees them at the top of the next frame.
type Model struct {
	game    *game.Game
	backend *ScreenBackend
	store   *storage.Store
	sceneID string
	fps     int

	last     time.Time
	started  time.Time
	saved    bool // session persisted for the current game over
	quitting bool
}

// NewModel wraps an already started game for terminal hosting.
func NewModel(g *game.Game, backend *ScreenBackend, store *storage.Store, sceneID string, fps int) Model {
	return Model{
		game:    g,
		backend: backend,
		store:   store,
		sceneID: sceneID,
		fps:     fps,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and advances the game on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := MapKey(msg); ok {
			m.backend.PushEvent(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation keeps its configured world size; only the
		// render surface follows the terminal.
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.last.IsZero() {
		m.last = now
		m.started = now
	}
	dt := now.Sub(m.last).Seconds()
	m.last = now

	m.game.StepFrame(dt)

	// Persist the score once per game over. Restarts rearm it.
	if sc := m.game.Scene(); sc != nil {
		if sc.Finished() && !m.saved {
			if m.store != nil {
				//nolint:errcheck // best-effort save, play continues regardless
				m.store.SaveSession(m.sceneID, sc.Score(), now.Sub(m.started))
			}
			m.saved = true
		} else if !sc.Finished() {
			m.saved = false
		}
	}

	if m.game.QuitRequested() || m.game.State() == game.StateStopped {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// View renders the backend's cell grid.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.backend.Screen())
}

// Run starts the game and blocks in the Bubble Tea program until the
// player quits. The game is stopped and the backend released on every
// exit path.
func Run(g *game.Game, backend *ScreenBackend, store *storage.Store, sceneID string, fps int) (err error) {
	if startErr := g.Start(); startErr != nil {
		return startErr
	}
	defer func() {
		if stopErr := g.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	p := tea.NewProgram(
		NewModel(g, backend, store, sceneID, fps),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
