// Package pong is the classic two-paddle demo built on the engine:
// kinematic entities for the paddles and ball, bounce policies for the
// walls, collider checks for the paddle hits and a text overlay for
// game over. The right paddle is CPU controlled.
package pong

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/scene"
)

const (
	serveDelay   = 1.0  // seconds the ball waits centered before moving
	spinFactor   = 0.5  // vertical speed added per unit of off-center hit
	speedupRatio = 1.02 // horizontal speedup per paddle hit
)

type match struct {
	cfg core.RuntimeConfig
	pc  config.PongConfig
	rng *rand.Rand

	player *entity.Kinematic
	cpu    *entity.Kinematic
	ball   *entity.Kinematic
	score  *entity.Text

	playerDir   float64 // -1, 0, +1 from this frame's input
	playerScore int
	cpuScore    int
	serveTimer  float64
	serveDir    float64 // initial horizontal direction of the next serve
}

// NewScene builds the pong scene for the given runtime config.
func NewScene(rt core.RuntimeConfig) (*scene.Scene, error) {
	pc, err := config.LoadPong("")
	if err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}
	return build(rt, pc)
}

func build(rt core.RuntimeConfig, pc config.PongConfig) (*scene.Scene, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &match{
		cfg:      rt,
		pc:       pc,
		rng:      rand.New(rand.NewSource(seed)),
		serveDir: -1,
	}

	sc := scene.New("pong", core.Size{W: rt.Width, H: rt.Height})

	// The bounce policy doubles as a clamp: paddle velocity is
	// rewritten from input every tick, so the reflected sign never
	// survives a frame.
	player, err := sc.SpawnKinematic(
		core.Position{X: pc.Paddle.Offset, Y: (rt.Height - pc.Paddle.Height) / 2},
		pc.Paddle.Width, pc.Paddle.Height, core.Velocity{},
		core.VerticalBounce{},
	)
	if err != nil {
		return nil, fmt.Errorf("pong: player paddle: %w", err)
	}
	player.SetStyle(core.Style{Color: core.ColorGreen})
	m.player = player

	cpu, err := sc.SpawnKinematic(
		core.Position{X: rt.Width - pc.Paddle.Offset - pc.Paddle.Width, Y: (rt.Height - pc.Paddle.Height) / 2},
		pc.Paddle.Width, pc.Paddle.Height, core.Velocity{},
		core.VerticalBounce{},
	)
	if err != nil {
		return nil, fmt.Errorf("pong: cpu paddle: %w", err)
	}
	cpu.SetStyle(core.Style{Color: core.ColorRed})
	m.cpu = cpu

	ball, err := sc.SpawnKinematic(
		core.Position{X: rt.Width / 2, Y: rt.Height / 2},
		pc.Ball.Size, pc.Ball.Size, core.Velocity{},
		core.VerticalBounce{},
	)
	if err != nil {
		return nil, fmt.Errorf("pong: ball: %w", err)
	}
	ball.SetStyle(core.Style{Color: core.ColorWhite, Fill: '●'})
	m.ball = ball

	m.score = sc.SpawnText(
		core.Position{X: rt.Width/2 - 3, Y: 0},
		"0 - 0",
		core.Style{Color: core.ColorYellow},
	)

	m.startServe()

	sc.Input = m.handleInput
	sc.Tick = m.tick
	return sc, nil
}

// startServe centers the ball and arms the serve countdown.
func (m *match) startServe() {
	m.ball.SetPosition(core.Position{
		X: (m.cfg.Width - m.pc.Ball.Size) / 2,
		Y: (m.cfg.Height - m.pc.Ball.Size) / 2,
	})
	m.ball.Velocity().Stop()
	m.serveTimer = serveDelay
}

// serve launches the ball at a random vertical angle.
func (m *match) serve() {
	vel := m.ball.Velocity()
	vel.DX = m.pc.Ball.Speed * m.serveDir
	vel.DY = m.pc.Ball.Speed * (m.rng.Float64() - 0.5) * 0.6
}

func (m *match) handleInput(sc *scene.Scene, in core.InputFrame) {
	m.playerDir = 0
	if in.Has(core.ActionUp) {
		m.playerDir = -1
	}
	if in.Has(core.ActionDown) {
		m.playerDir = 1
	}
	if in.Has(core.ActionRestart) && sc.Finished() {
		m.reset(sc)
	}
}

// reset rearms a finished match for another round.
func (m *match) reset(sc *scene.Scene) {
	m.playerScore = 0
	m.cpuScore = 0
	m.updateScoreText()
	sc.ClearOverlays()
	sc.SetScore(0)
	sc.Restart()
	m.serveDir = -1
	m.startServe()
}

func (m *match) tick(sc *scene.Scene, dt float64) {
	if sc.Finished() {
		return
	}

	m.player.Velocity().DY = m.playerDir * m.pc.Paddle.Speed
	m.driveCPU()

	if m.serveTimer > 0 {
		m.serveTimer -= dt
		if m.serveTimer <= 0 {
			m.serve()
		}
	}

	m.handlePaddleHits()
	m.handleScoring(sc)
}

// driveCPU tracks the ball with configured imperfection. The CPU only
// reacts while the ball travels toward it.
func (m *match) driveCPU() {
	vel := m.cpu.Velocity()
	if m.ball.Velocity().DX <= 0 {
		vel.StopY()
		return
	}

	target := m.ball.Position().Y + m.pc.Ball.Size/2
	center := m.cpu.Position().Y + m.pc.Paddle.Height/2
	diff := target - center

	speed := m.pc.Paddle.Speed * m.pc.CPUSkill
	if math.Abs(diff) < m.pc.Paddle.Height/4 {
		vel.StopY()
	} else if diff > 0 {
		vel.MoveDown(speed)
	} else {
		vel.MoveUp(speed)
	}
}

// handlePaddleHits reflects the ball off paddles with spin.
func (m *match) handlePaddleHits() {
	vel := m.ball.Velocity()

	if vel.DX < 0 && m.ball.Collider().Intersects(m.player.Collider()) {
		m.reflect(m.player, 1)
	}
	if vel.DX > 0 && m.ball.Collider().Intersects(m.cpu.Collider()) {
		m.reflect(m.cpu, -1)
	}
}

// reflect bounces the ball off a paddle: push it clear, flip and speed
// up the horizontal velocity, and add spin from the hit offset.
func (m *match) reflect(paddle *entity.Kinematic, dir float64) {
	pos := m.ball.Position()
	if dir > 0 {
		pos.X = paddle.Position().X + m.pc.Paddle.Width
	} else {
		pos.X = paddle.Position().X - m.pc.Ball.Size
	}
	m.ball.SetPosition(pos)

	vel := m.ball.Velocity()
	vel.ReverseX()
	vel.DX *= speedupRatio

	hit := (pos.Y + m.pc.Ball.Size/2 - paddle.Position().Y) / m.pc.Paddle.Height
	vel.DY += (hit - 0.5) * m.pc.Ball.Speed * spinFactor

	maxVY := m.pc.Ball.Speed * 1.5
	vel.DY = core.ClampF(vel.DY, -maxVY, maxVY)
}

// handleScoring detects the ball leaving the court left or right.
func (m *match) handleScoring(sc *scene.Scene) {
	x := m.ball.Position().X

	switch {
	case x+m.pc.Ball.Size < 0:
		m.cpuScore++
		m.serveDir = 1
	case x > m.cfg.Width:
		m.playerScore++
		m.serveDir = -1
	default:
		return
	}

	m.updateScoreText()
	sc.SetScore(m.playerScore)

	if m.playerScore >= m.pc.WinScore || m.cpuScore >= m.pc.WinScore {
		m.finish(sc)
		return
	}
	m.startServe()
}

func (m *match) updateScoreText() {
	m.score.SetContent(fmt.Sprintf("%d - %d", m.playerScore, m.cpuScore))
}

// finish ends the match and pushes the game-over overlay.
func (m *match) finish(sc *scene.Scene) {
	m.ball.Velocity().Stop()
	m.player.Velocity().Stop()
	m.cpu.Velocity().Stop()

	msg := "YOU WIN!"
	if m.cpuScore > m.playerScore {
		msg = "CPU WINS!"
	}
	sc.PushOverlay(entity.NewText(
		core.Position{X: m.cfg.Width/2 - float64(len(msg))/2, Y: m.cfg.Height / 2},
		msg,
		core.Style{Color: core.ColorYellow},
	))
	sc.PushOverlay(entity.NewText(
		core.Position{X: m.cfg.Width/2 - 10, Y: m.cfg.Height/2 + 2},
		"Press R to restart",
		core.Style{Color: core.ColorGray},
	))
	sc.Finish()
}

func init() {
	registry.Register("pong", "Pong", NewScene)
}
