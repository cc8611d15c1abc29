// Package bounce is a screensaver-style demo: a swarm of balls
// ricocheting inside the scene under the engine's bounce policies.
// Up adds a ball, Down removes one, the score counts elapsed seconds.
package bounce

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/scene"
)

const maxBalls = 200

var palette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorWhite,
}

type swarm struct {
	cfg     core.RuntimeConfig
	bc      config.BounceConfig
	rng     *rand.Rand
	balls   []*entity.Kinematic
	counter *entity.Text
	elapsed float64
}

// NewScene builds the bouncing-balls scene for the given runtime config.
func NewScene(rt core.RuntimeConfig) (*scene.Scene, error) {
	bc, err := config.LoadBounce("")
	if err != nil {
		return nil, fmt.Errorf("bounce: %w", err)
	}
	return build(rt, bc)
}

func build(rt core.RuntimeConfig, bc config.BounceConfig) (*scene.Scene, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &swarm{
		cfg: rt,
		bc:  bc,
		rng: rand.New(rand.NewSource(seed)),
	}

	sc := scene.New("bounce", core.Size{W: rt.Width, H: rt.Height})

	for i := 0; i < bc.Balls; i++ {
		if err := s.addBall(sc); err != nil {
			return nil, err
		}
	}

	s.counter = sc.SpawnText(
		core.Position{X: 1, Y: 0},
		s.label(),
		core.Style{Color: core.ColorGray},
	)

	sc.Input = s.handleInput
	sc.Tick = s.tick
	return sc, nil
}

// addBall spawns one ball with a random position, direction and speed.
func (s *swarm) addBall(sc *scene.Scene) error {
	size := s.bc.BallSize
	pos := core.Position{
		X: 1 + s.rng.Float64()*(s.cfg.Width-size-2),
		Y: 1 + s.rng.Float64()*(s.cfg.Height-size-2),
	}

	speed := s.bc.MinSpeed + s.rng.Float64()*(s.bc.MaxSpeed-s.bc.MinSpeed)
	vel := core.Velocity{DX: speed, DY: speed / 2}
	if s.rng.Intn(2) == 0 {
		vel.DX = -vel.DX
	}
	if s.rng.Intn(2) == 0 {
		vel.DY = -vel.DY
	}

	ball, err := sc.SpawnKinematic(pos, size, size, vel, core.Bounce{})
	if err != nil {
		return fmt.Errorf("bounce: ball: %w", err)
	}
	ball.SetStyle(core.Style{
		Color: palette[s.rng.Intn(len(palette))],
		Fill:  '●',
	})
	s.balls = append(s.balls, ball)
	return nil
}

// removeBall destroys the most recently added ball.
func (s *swarm) removeBall(sc *scene.Scene) {
	if len(s.balls) == 0 {
		return
	}
	last := s.balls[len(s.balls)-1]
	s.balls = s.balls[:len(s.balls)-1]
	sc.Remove(last.ID())
}

func (s *swarm) handleInput(sc *scene.Scene, in core.InputFrame) {
	if in.Has(core.ActionUp) && len(s.balls) < maxBalls {
		//nolint:errcheck // geometry is derived from a valid config
		s.addBall(sc)
	}
	if in.Has(core.ActionDown) {
		s.removeBall(sc)
	}
}

func (s *swarm) tick(sc *scene.Scene, dt float64) {
	s.elapsed += dt
	sc.SetScore(int(s.elapsed))
	s.counter.SetContent(s.label())
}

func (s *swarm) label() string {
	return fmt.Sprintf("balls: %d  |  %ds  |  Up: add  Down: remove", len(s.balls), int(s.elapsed))
}

func init() {
	registry.Register("bounce", "Bouncing Balls", NewScene)
}
