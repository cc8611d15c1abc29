package pong

import (
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
	"github.com/vovakirdan/mini-arcade/internal/scene"
)

func testConfig() (core.RuntimeConfig, config.PongConfig) {
	rt := core.RuntimeConfig{Width: 80, Height: 24, FPS: 60, Seed: 42}
	pc := config.PongConfig{
		Paddle:   config.PongPaddle{Height: 5, Width: 1, Offset: 2, Speed: 30},
		Ball:     config.PongBall{Size: 1, Speed: 20},
		WinScore: 3,
		CPUSkill: 0.75,
	}
	return rt, pc
}

// newMatch builds the scene and digs out the spawned entities in their
// insertion order: player, cpu, ball, score text.
func newMatch(t *testing.T) (*scene.Scene, *entity.Kinematic, *entity.Kinematic, *entity.Kinematic) {
	t.Helper()
	rt, pc := testConfig()
	sc, err := build(rt, pc)
	if err != nil {
		t.Fatalf("build() failed: %v", err)
	}

	ents := sc.Entities()
	if len(ents) != 4 {
		t.Fatalf("got %d entities, expected 4", len(ents))
	}
	player, ok := ents[0].(*entity.Kinematic)
	if !ok {
		t.Fatalf("entity 0 is %T, expected kinematic player paddle", ents[0])
	}
	cpu, ok := ents[1].(*entity.Kinematic)
	if !ok {
		t.Fatalf("entity 1 is %T, expected kinematic cpu paddle", ents[1])
	}
	ball, ok := ents[2].(*entity.Kinematic)
	if !ok {
		t.Fatalf("entity 2 is %T, expected kinematic ball", ents[2])
	}
	return sc, player, cpu, ball
}

func step(sc *scene.Scene, in core.InputFrame, dt float64) {
	sc.HandleInput(in)
	sc.Update(dt)
}

func TestServeDelayHoldsBall(t *testing.T) {
	sc, _, _, ball := newMatch(t)

	step(sc, core.NewInputFrame(), 0.5)
	if v := ball.Velocity(); v.DX != 0 || v.DY != 0 {
		t.Errorf("ball moving during serve delay: %+v", v)
	}

	step(sc, core.NewInputFrame(), 0.6)
	if ball.Velocity().DX == 0 {
		t.Error("ball not served after delay elapsed")
	}
}

func TestFirstServeTowardPlayer(t *testing.T) {
	sc, _, _, ball := newMatch(t)

	step(sc, core.NewInputFrame(), 1.1)
	if ball.Velocity().DX >= 0 {
		t.Errorf("first serve DX = %v, expected negative (toward player)", ball.Velocity().DX)
	}
}

func TestPlayerPaddleInput(t *testing.T) {
	sc, player, _, _ := newMatch(t)
	startY := player.Position().Y

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	step(sc, up, 0.1)

	if player.Position().Y >= startY {
		t.Errorf("paddle Y = %v after up input, expected above %v", player.Position().Y, startY)
	}

	// With no input the paddle stops
	movedY := player.Position().Y
	step(sc, core.NewInputFrame(), 0.1)
	if player.Position().Y != movedY {
		t.Errorf("paddle drifted without input: %v -> %v", movedY, player.Position().Y)
	}
}

func TestPlayerPaddleClampedAtEdge(t *testing.T) {
	sc, player, _, _ := newMatch(t)

	for range 100 {
		in := core.NewInputFrame()
		in.Set(core.ActionUp)
		step(sc, in, 0.1)
	}

	if player.Position().Y < 0 {
		t.Errorf("paddle escaped the court: Y = %v", player.Position().Y)
	}
}

func TestBallReflectsOffPlayerPaddle(t *testing.T) {
	sc, player, _, ball := newMatch(t)

	// Launch, then teleport the ball onto the player paddle moving left.
	step(sc, core.NewInputFrame(), 1.1)
	ball.SetPosition(core.Position{X: player.Position().X + 0.5, Y: player.Position().Y + 2})
	ball.Velocity().DX = -20
	ball.Velocity().DY = 0

	step(sc, core.NewInputFrame(), 0.001)

	if ball.Velocity().DX <= 0 {
		t.Errorf("ball DX = %v after paddle hit, expected positive", ball.Velocity().DX)
	}
	if ball.Position().X < player.Position().X+1 {
		t.Errorf("ball not pushed clear of paddle: X = %v", ball.Position().X)
	}
}

func TestScoringAndGameOver(t *testing.T) {
	sc, _, _, ball := newMatch(t)
	rt, pc := testConfig()

	// Force the CPU to concede until the player wins.
	for i := 0; i < pc.WinScore; i++ {
		step(sc, core.NewInputFrame(), 1.1) // serve
		ball.SetPosition(core.Position{X: rt.Width + 1, Y: rt.Height / 2})
		step(sc, core.NewInputFrame(), 0.001)
	}

	if sc.Score() != pc.WinScore {
		t.Errorf("scene score = %d, expected %d", sc.Score(), pc.WinScore)
	}
	if !sc.Finished() {
		t.Error("scene not finished after reaching win score")
	}
	if len(sc.Overlays()) == 0 {
		t.Error("no game-over overlay pushed")
	}
}

func TestRestartRearmsMatch(t *testing.T) {
	sc, _, _, ball := newMatch(t)
	rt, pc := testConfig()

	for i := 0; i < pc.WinScore; i++ {
		step(sc, core.NewInputFrame(), 1.1)
		ball.SetPosition(core.Position{X: rt.Width + 1, Y: rt.Height / 2})
		step(sc, core.NewInputFrame(), 0.001)
	}
	if !sc.Finished() {
		t.Fatal("scene should be finished")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	step(sc, restart, 0.001)

	if sc.Finished() {
		t.Error("scene still finished after restart")
	}
	if sc.Score() != 0 {
		t.Errorf("score = %d after restart, expected 0", sc.Score())
	}
	if len(sc.Overlays()) != 0 {
		t.Errorf("%d overlays remain after restart, expected 0", len(sc.Overlays()))
	}
}

func TestBallBouncesOffWalls(t *testing.T) {
	sc, _, _, ball := newMatch(t)

	step(sc, core.NewInputFrame(), 1.1)
	ball.SetPosition(core.Position{X: 40, Y: 0.5})
	ball.Velocity().DY = -20

	step(sc, core.NewInputFrame(), 0.1)

	if ball.Velocity().DY < 0 {
		t.Errorf("ball DY = %v after ceiling hit, expected positive", ball.Velocity().DY)
	}
	if ball.Position().Y < 0 {
		t.Errorf("ball above the court: Y = %v", ball.Position().Y)
	}
}
