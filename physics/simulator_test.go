package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/serror"
	"github.com/strafe-rl/strafe/state"
)

func draglessSim() *Simulator {
	opts := DefaultOptions()
	opts.AirDrag = 0
	return NewSimulator(opts)
}

func TestPredictZeroDuration(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	initial := state.RigidBodyState{Pos: mgl32.Vec3{100, 200, 300}, Vel: mgl32.Vec3{1, 2, 3}}

	traj, err := sim.PredictBall(initial, 0, game.DefaultTickDelta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(traj.Samples) != 1 {
		t.Fatalf("expected a single sample, got %d", len(traj.Samples))
	}
	if traj.Start().Body != initial {
		t.Fatalf("expected the sample to equal the input, got %+v", traj.Start().Body)
	}
}

func TestPredictRejectsBadArguments(t *testing.T) {
	sim := NewSimulator(DefaultOptions())

	_, err := sim.PredictBall(state.RigidBodyState{}, -1, game.DefaultTickDelta)
	if !serror.IsKind(err, serror.KindInvalidArgument) {
		t.Fatalf("expected invalid-argument for negative duration, got %v", err)
	}

	_, err = sim.PredictBall(state.RigidBodyState{Pos: mgl32.Vec3{math32.NaN(), 0, 0}}, 1, game.DefaultTickDelta)
	if !serror.IsKind(err, serror.KindInvalidArgument) {
		t.Fatalf("expected invalid-argument for non-finite state, got %v", err)
	}

	_, err = sim.PredictBall(state.RigidBodyState{}, 1, 0)
	if !serror.IsKind(err, serror.KindInvalidArgument) {
		t.Fatalf("expected invalid-argument for zero step, got %v", err)
	}
}

func TestFreeFallMatchesClosedForm(t *testing.T) {
	sim := draglessSim()
	const (
		z0       = float32(1000)
		dt       = float32(game.DefaultTickDelta)
		duration = float32(0.5)
	)

	traj, err := sim.PredictBall(state.RigidBodyState{Pos: mgl32.Vec3{0, 0, z0}}, duration, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := float32(len(traj.Samples) - 1)
	wantVel := -game.Gravity * n * dt
	wantZ := z0 - game.Gravity*dt*dt*n*(n+1)/2

	last := traj.Last().Body
	if math32.Abs(last.Vel.Z()-wantVel) > 1e-2 {
		t.Fatalf("expected velocity %v, got %v", wantVel, last.Vel.Z())
	}
	if math32.Abs(last.Pos.Z()-wantZ) > 5e-2 {
		t.Fatalf("expected height %v, got %v", wantZ, last.Pos.Z())
	}
}

func TestStepSizeConvergence(t *testing.T) {
	sim := draglessSim()
	initial := state.RigidBodyState{Pos: mgl32.Vec3{0, 0, 1500}, Vel: mgl32.Vec3{500, 0, 0}}

	coarse, err := sim.PredictBall(initial, 0.5, 1.0/30.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fine, err := sim.PredictBall(initial, 0.5, 1.0/120.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	diff := coarse.Last().Body.Pos.Sub(fine.Last().Body.Pos).Len()
	if diff > 10 {
		t.Fatalf("expected step sizes to agree within tolerance, diverged by %v", diff)
	}
}

func TestSchedulePolicySwitchesControls(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	car := state.CarState{OnGround: true}
	car.Pos = mgl32.Vec3{0, 0, game.CarRestHeight}

	policy := SchedulePolicy{Entries: []ScheduleEntry{
		{Until: 1, Controls: state.ControlOutput{Throttle: 1}},
		{Until: 3, Controls: state.ControlOutput{Throttle: -1}},
	}}
	traj, err := sim.PredictCar(car, 2, game.DefaultTickDelta, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mid := traj.AtOrLast(1).Body
	if mid.Vel.X() < 700 {
		t.Fatalf("expected the throttle leg to build speed, got %v", mid.Vel.X())
	}
	last := traj.Last().Body
	if last.Vel.X() >= mid.Vel.X() {
		t.Fatalf("expected the brake leg to shed speed, got %v after %v", last.Vel.X(), mid.Vel.X())
	}
}

func TestFloorBounceRestitution(t *testing.T) {
	sim := draglessSim()
	initial := state.RigidBodyState{
		Pos: mgl32.Vec3{0, 0, game.BallRadius + 10},
		Vel: mgl32.Vec3{0, 0, -1000},
	}

	after := sim.StepBall(initial, 0.1)
	if after.Vel.Z() <= 0 {
		t.Fatalf("expected upward velocity after bounce, got %v", after.Vel.Z())
	}
	// Gravity applies before the bounce within the step.
	wantVz := float32((1000 + game.Gravity*0.1) * game.GroundRestitution)
	if math32.Abs(after.Vel.Z()-wantVz) > 0.5 {
		t.Fatalf("expected bounce velocity near %v, got %v", wantVz, after.Vel.Z())
	}
	if after.Pos.Z() < game.BallRadius-1e-3 {
		t.Fatalf("ball penetrated the floor: z=%v", after.Pos.Z())
	}
}

func TestNoTunnelingWithLargeStep(t *testing.T) {
	sim := draglessSim()
	initial := state.RigidBodyState{
		Pos: mgl32.Vec3{0, 0, 200},
		Vel: mgl32.Vec3{0, 0, -6000},
	}

	after := sim.StepBall(initial, 0.5)
	if after.Pos.Z() < game.BallRadius-1e-3 {
		t.Fatalf("ball tunneled through the floor: z=%v", after.Pos.Z())
	}
	if after.Pos.Z() > game.CeilingZ {
		t.Fatalf("ball escaped through the ceiling: z=%v", after.Pos.Z())
	}
}

func TestWallBounceKeepsBallInField(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	initial := state.RigidBodyState{
		Pos: mgl32.Vec3{game.FieldMaxX - 200, 0, 500},
		Vel: mgl32.Vec3{3000, 0, 0},
	}

	traj, err := sim.PredictBall(initial, 1, game.DefaultTickDelta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sample := range traj.Samples {
		if math32.Abs(sample.Body.Pos.X()) > game.FieldMaxX-game.BallRadius+1e-2 {
			t.Fatalf("ball left the field at t=%v: x=%v", sample.T, sample.Body.Pos.X())
		}
	}
	if traj.Last().Body.Vel.X() >= 0 {
		t.Fatalf("expected the wall to reverse x velocity, got %v", traj.Last().Body.Vel.X())
	}
}

func TestBallSpeedClamp(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	initial := state.RigidBodyState{
		Pos: mgl32.Vec3{0, 0, 500},
		Vel: mgl32.Vec3{9000, 0, 0},
	}

	after := sim.StepBall(initial, game.DefaultTickDelta)
	if after.Vel.Len() > game.BallMaxSpeed+1e-2 {
		t.Fatalf("expected speed clamp at %v, got %v", game.BallMaxSpeed, after.Vel.Len())
	}
}

func TestCarThrottleAcceleratesForward(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	car := state.CarState{OnGround: true}
	car.Pos = mgl32.Vec3{0, 0, game.CarRestHeight}

	traj, err := sim.PredictCar(car, 1, game.DefaultTickDelta, FixedPolicy{
		Controls: state.ControlOutput{Throttle: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := traj.Last().Body
	if last.Vel.X() < 700 {
		t.Fatalf("expected substantial forward speed after 1s, got %v", last.Vel.X())
	}
	if last.Vel.X() > game.CarNormalSpeed+1 {
		t.Fatalf("expected throttle-only speed below %v, got %v", game.CarNormalSpeed, last.Vel.X())
	}
	if last.Pos.X() <= 0 {
		t.Fatalf("expected forward displacement, got %v", last.Pos.X())
	}
	if math32.Abs(last.Pos.Z()-game.CarRestHeight) > 1e-2 {
		t.Fatalf("expected the car to stay on the ground, got z=%v", last.Pos.Z())
	}
}

func TestStepCarJumpLeavesGround(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	car := state.CarState{OnGround: true, Boost: 50}
	car.Pos = mgl32.Vec3{0, 0, game.CarRestHeight}

	after := sim.StepCar(car, state.ControlOutput{Jump: true}, game.DefaultTickDelta)
	if after.OnGround {
		t.Fatal("expected the car to leave the ground")
	}
	if after.Vel.Z() != game.JumpImpulse {
		t.Fatalf("expected jump impulse %v, got %v", game.JumpImpulse, after.Vel.Z())
	}
}

func TestStepCarBoostDepletes(t *testing.T) {
	sim := NewSimulator(DefaultOptions())
	car := state.CarState{OnGround: true, Boost: 10}
	car.Pos = mgl32.Vec3{0, 0, game.CarRestHeight}

	after := sim.StepCar(car, state.ControlOutput{Throttle: 1, Boost: true}, 0.5)
	if after.Boost >= car.Boost {
		t.Fatalf("expected boost to deplete, got %v", after.Boost)
	}
	if after.Boost < 0 {
		t.Fatalf("expected boost to stay non-negative, got %v", after.Boost)
	}
}
