package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
	"github.com/stretchr/testify/assert"
)

func TestDrive1DFromRest(t *testing.T) {
	sim := NewDrive1D(0).WithBoost(0)
	for i := 0; i < 60; i++ {
		sim.Step(1.0/60.0, 1.0, false)
	}

	assert.Greater(t, sim.Speed, float32(900), "one second of throttle from rest")
	assert.LessOrEqual(t, sim.Speed, float32(game.CarNormalSpeed))
	assert.Greater(t, sim.Dist, float32(400))
	assert.InDelta(t, 1.0, sim.Time, 1e-4)
}

func TestDrive1DSupersonicHold(t *testing.T) {
	sim := NewDrive1D(game.CarMaxSpeed).WithBoost(0)
	sim.Step(1.0/60.0, 1.0, false)

	// Full throttle holds speed above the throttle cap instead of braking.
	assert.Equal(t, float32(game.CarMaxSpeed), sim.Speed)
}

func TestDrive1DBoostDepletion(t *testing.T) {
	sim := NewDrive1D(0)
	for i := 0; i < 180; i++ {
		sim.Step(1.0/60.0, 1.0, true)
	}

	assert.LessOrEqual(t, sim.Boost, float32(1))
	assert.GreaterOrEqual(t, sim.Boost, float32(0))
	assert.Greater(t, sim.Speed, float32(game.CarNormalSpeed), "boost pushes past the throttle cap")
	assert.LessOrEqual(t, sim.Speed, float32(game.CarMaxSpeed))
}

func TestDrive1DCoastStops(t *testing.T) {
	sim := NewDrive1D(500).WithBoost(0)
	for i := 0; i < 120; i++ {
		sim.Step(1.0/60.0, 0, false)
		if sim.Speed < 0 {
			t.Fatalf("coasting went negative: %v", sim.Speed)
		}
	}
	assert.Equal(t, float32(0), sim.Speed)
}

func TestInterceptTimeStationaryBall(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	ball := state.RigidBodyState{Pos: mgl32.Vec3{1000, 0, game.BallRadius}}
	traj, err := sim.PredictBall(ball, 6, game.DefaultTickDelta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	car := state.CarState{OnGround: true, Boost: 100}
	car.Pos = mgl32.Vec3{0, 0, game.CarRestHeight}

	sample, ok := InterceptTime(car, traj, 200, game.BallRadius+160)
	if !ok {
		t.Fatal("expected the stationary ball to be reachable")
	}
	assert.Greater(t, sample.T, float32(0))
	assert.Less(t, sample.T, float32(2), "800uu from rest with boost")
}

func TestInterceptTimeUnreachable(t *testing.T) {
	opts := DefaultOptions()
	opts.LookaheadHorizon = 0.3
	sim := NewSimulator(opts)

	ball := state.RigidBodyState{Pos: mgl32.Vec3{4000, 5000, game.BallRadius}}
	traj, err := sim.PredictBall(ball, opts.LookaheadHorizon, game.DefaultTickDelta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	car := state.CarState{OnGround: true}
	car.Pos = mgl32.Vec3{-4000, -5000, game.CarRestHeight}

	if _, ok := InterceptTime(car, traj, 200, game.BallRadius+160); ok {
		t.Fatal("expected the far ball to be unreachable within the horizon")
	}
}

func TestRoughDriveTimeTurnPenalty(t *testing.T) {
	car := state.CarState{OnGround: true, Boost: 100}
	car.Pos = mgl32.Vec3{0, 0, game.CarRestHeight}

	ahead := RoughDriveTime(car, mgl32.Vec2{1000, 0})
	behind := RoughDriveTime(car, mgl32.Vec2{-1000, 0})
	assert.Greater(t, behind, ahead, "turning around costs time")
}
