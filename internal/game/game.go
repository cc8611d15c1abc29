// Package game contains the top-level loop: an explicit state machine
// that owns the active scene, the backend handle, frame pacing and the
// end-of-frame command queue.
package game

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/capture"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/scene"
)

// State is the game loop lifecycle state.
// Transitions: Created -> Running <-> Paused -> Stopped. Stopped is
// terminal; a Game instance runs at most once.
type State int

const (
	StateCreated State = iota
	StateRunning
	StatePaused
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Config holds game-level options beyond the runtime scene config.
type Config struct {
	Runtime core.RuntimeConfig
	Title   string
	// ScreenshotDir is where capture commands write PNG files.
	ScreenshotDir string
}

// Game drives the tick -> update -> draw cycle over exactly one
// active scene. Single-threaded and cooperative: one call stack, no
// suspension points inside a frame, stop requests observed at frame
// boundaries.
type Game struct {
	cfg     Config
	backend core.Backend
	logger  *log.Logger

	state   State
	current *scene.Scene
	pending *scene.Scene
	quitReq bool
	paths   capture.PathBuilder
	queue   Queue
	frame   uint64
}

// New creates a game bound to the given backend. A missing backend is
// a configuration failure surfaced here, at setup, never mid-frame.
func New(cfg Config, backend core.Backend) (*Game, error) {
	if backend == nil {
		return nil, fmt.Errorf("game: backend must be set")
	}
	if cfg.Runtime.FPS <= 0 {
		cfg.Runtime.FPS = core.DefaultRuntimeConfig().FPS
	}

	paths := capture.DefaultPathBuilder()
	if cfg.ScreenshotDir != "" {
		paths.Dir = cfg.ScreenshotDir
	}

	return &Game{
		cfg:     cfg,
		backend: backend,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
		}),
		paths: paths,
	}, nil
}

// State returns the loop's current lifecycle state.
func (g *Game) State() State { return g.state }

// Scene returns the active scene.
func (g *Game) Scene() *scene.Scene { return g.current }

// Frame returns the number of completed frames.
func (g *Game) Frame() uint64 { return g.frame }

// SetScene replaces the active scene. Before the loop starts the
// replacement is immediate; while running it takes effect atomically
// between one frame's draw and the next frame's update, and the
// outgoing scene receives no further update or draw calls.
func (g *Game) SetScene(s *scene.Scene) {
	if g.state == StateCreated {
		g.swapScene(s)
		return
	}
	g.pending = s
}

// swapScene runs the exit/enter hooks around the replacement.
func (g *Game) swapScene(next *scene.Scene) {
	if g.current != nil && g.current.Exit != nil {
		g.current.Exit(g.current)
	}
	g.current = next
	if next != nil && next.Enter != nil {
		next.Enter(next)
	}
}

// Quit requests that the loop stop. The request is observed at the
// top of the next iteration, never mid-frame.
func (g *Game) Quit() {
	g.quitReq = true
}

// Pause suspends scene updates. Drawing continues so the last frame
// stays visible.
func (g *Game) Pause() {
	if g.state == StateRunning {
		g.state = StatePaused
	}
}

// Resume continues scene updates after a pause.
func (g *Game) Resume() {
	if g.state == StatePaused {
		g.state = StateRunning
	}
}

// QuitRequested reports whether a stop has been asked for. External
// hosts driving StepFrame use this to know when to wind down.
func (g *Game) QuitRequested() bool { return g.quitReq }

// Start transitions Created -> Running and initializes the backend.
// Hosts that own their own cadence call Start, drive StepFrame, then
// call Stop. Run does all three.
func (g *Game) Start() error {
	if g.state != StateCreated {
		return fmt.Errorf("game: cannot start from state %s", g.state)
	}
	if g.current == nil {
		return fmt.Errorf("game: no scene set")
	}

	rt := g.cfg.Runtime
	if initErr := g.backend.Init(int(rt.Width), int(rt.Height), g.cfg.Title); initErr != nil {
		return fmt.Errorf("game: backend init: %w", initErr)
	}
	g.backend.SetClearColor(rt.Background)
	g.state = StateRunning
	return nil
}

// Stop finalizes the loop and releases the backend. Stopped is
// terminal, so a second call is a no-op.
func (g *Game) Stop() error {
	if g.state == StateStopped {
		return nil
	}
	g.state = StateStopped
	if closeErr := g.backend.Close(); closeErr != nil {
		return fmt.Errorf("game: backend close: %w", closeErr)
	}
	return nil
}

// Run executes the main loop until a quit is requested, guaranteeing
// cleanup on every exit path.
func (g *Game) Run() (err error) {
	if startErr := g.Start(); startErr != nil {
		return startErr
	}
	defer func() {
		if stopErr := g.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	target := time.Second / time.Duration(g.cfg.Runtime.FPS)
	last := time.Now()

	for !g.quitReq {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		g.StepFrame(dt)

		// Advisory pacing: sleep off the remainder of the frame
		// interval. Not a hard real-time guarantee.
		if elapsed := time.Since(now); elapsed < target {
			time.Sleep(target - elapsed)
		}
	}
	return nil
}

// StepFrame advances exactly one frame without pacing: pending scene
// swap, input, update (unless paused), draw, then command drain.
// Exported for hosts that own their own cadence and for tests.
func (g *Game) StepFrame(dt float64) {
	if g.state == StateStopped || g.current == nil {
		return
	}

	if g.pending != nil {
		next := g.pending
		g.pending = nil
		g.swapScene(next)
	}

	in := g.pollInput()
	g.current.HandleInput(in)

	if g.state != StatePaused {
		g.current.Update(dt)
	}

	g.backend.Clear(g.cfg.Runtime.Background)
	g.current.Draw(g.backend)
	g.backend.EndFrame()

	// Commands execute at the end of the frame: one consistent write
	// path for scene changes, captures and lifecycle requests.
	for _, cmd := range g.queue.Drain() {
		cmd.Execute(g)
	}

	g.frame++
}

// pollInput drains backend events, translates them to actions and
// handles the game-level ones (quit, pause, screenshot) itself.
func (g *Game) pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, ev := range g.backend.PollEvents() {
		switch ev.Type {
		case core.EventQuit:
			g.queue.Push(QuitCommand{})
		case core.EventKeyDown:
			if a := actionForKey(ev); a != core.ActionNone {
				in.Set(a)
			}
		}
	}

	if in.Has(core.ActionQuit) {
		g.queue.Push(QuitCommand{})
	}
	if in.Has(core.ActionPause) {
		g.queue.Push(TogglePauseCommand{})
	}
	if in.Has(core.ActionShot) {
		g.queue.Push(ScreenshotCommand{Label: g.sceneLabel()})
	}
	return in
}

func (g *Game) sceneLabel() string {
	if g.current == nil {
		return ""
	}
	return g.current.ID()
}

// Commands returns the game's command queue for scenes and hosts that
// need to enqueue lifecycle requests.
func (g *Game) Commands() *Queue { return &g.queue }

// Screenshot captures the current frame through the backend and
// encodes it as PNG at the given path.
func (g *Game) Screenshot(path string) error {
	img, err := g.backend.CaptureFrame()
	if err != nil {
		return fmt.Errorf("game: capture frame: %w", err)
	}
	return capture.SavePNG(path, img)
}

// actionForKey maps a key event to a semantic action.
func actionForKey(ev core.Event) core.Action {
	switch ev.Key {
	case core.KeyUp:
		return core.ActionUp
	case core.KeyDown:
		return core.ActionDown
	case core.KeyLeft:
		return core.ActionLeft
	case core.KeyRight:
		return core.ActionRight
	case core.KeyEnter:
		return core.ActionConfirm
	case core.KeyEscape:
		return core.ActionBack
	case core.KeySpace:
		return core.ActionUp
	case core.KeyCtrlS:
		return core.ActionShot
	case core.KeyRune:
		switch ev.Rune {
		case 'w':
			return core.ActionUp
		case 's':
			return core.ActionDown
		case 'a':
			return core.ActionLeft
		case 'd':
			return core.ActionRight
		case 'r':
			return core.ActionRestart
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
