package game

import (
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Command is the only allowed write path from input and scene logic
// into game lifecycle: quit, pause, scene changes, captures. Commands
// are queued during a frame and executed after its draw, keeping all
// cross-frame mutation at one well-defined point.
type Command interface {
	Execute(g *Game)
}

// Queue stores commands until the end of the frame.
type Queue struct {
	items []Command
}

// Push appends a command.
func (q *Queue) Push(cmd Command) {
	q.items = append(q.items, cmd)
}

// Drain removes and returns all queued commands.
func (q *Queue) Drain() []Command {
	items := q.items
	q.items = nil
	return items
}

// QuitCommand requests a loop stop at the next frame boundary.
type QuitCommand struct{}

// Execute requests the stop.
func (QuitCommand) Execute(g *Game) {
	g.Quit()
}

// TogglePauseCommand flips between Running and Paused.
type TogglePauseCommand struct{}

// Execute toggles the pause state.
func (TogglePauseCommand) Execute(g *Game) {
	switch g.State() {
	case StateRunning:
		g.Pause()
	case StatePaused:
		g.Resume()
	}
}

// ScreenshotCommand captures the current frame to the game's
// screenshot directory. Capture failures are logged and never
// propagate; a failed save must not take down a running loop.
type ScreenshotCommand struct {
	Label string
}

// Execute captures and saves the frame, logging on failure.
func (c ScreenshotCommand) Execute(g *Game) {
	path := g.paths.Build(c.Label)
	if err := g.Screenshot(path); err != nil {
		g.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	g.logger.Info("screenshot saved", "path", path)
}

// ChangeSceneCommand replaces the active scene with a fresh instance
// built from the registry.
type ChangeSceneCommand struct {
	SceneID string
}

// Execute builds the scene and schedules the swap for the next frame
// boundary. An unknown or failing factory is logged and the current
// scene stays active.
func (c ChangeSceneCommand) Execute(g *Game) {
	next, err := registry.Create(c.SceneID, g.cfg.Runtime)
	if err != nil {
		g.logger.Error("scene change failed", "scene", c.SceneID, "error", err)
		return
	}
	g.SetScene(next)
}
