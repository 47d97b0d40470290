package bot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/serror"
	"github.com/strafe-rl/strafe/state"
)

// LoopbackOptions tune the self-hosted match.
type LoopbackOptions struct {
	TickDelta      float32
	KickoffSeconds float32
	ReplaySeconds  float32
	MatchSeconds   float32
}

func DefaultLoopbackOptions() LoopbackOptions {
	return LoopbackOptions{
		TickDelta:      game.DefaultTickDelta,
		KickoffSeconds: 3,
		ReplaySeconds:  3,
		MatchSeconds:   300,
	}
}

type loopCar struct {
	spawn    state.CarState
	car      state.CarState
	controls state.ControlOutput
	// jumpHeld distinguishes a fresh jump press from a held button across steps.
	jumpHeld bool
}

// LoopbackBridge hosts a match in-process by advancing the simulator itself:
// each PullSnapshot steps every car under its last pushed controls, steps the
// ball, runs the kickoff/goal/replay phase machine and returns the resulting
// snapshot. It exists so the full stack can run without a real game attached.
type LoopbackBridge struct {
	sim  *physics.Simulator
	opts LoopbackOptions
	log  *logrus.Entry

	tick      int64
	time      float32
	phase     state.GamePhase
	phaseLeft float32

	ball  state.RigidBodyState
	order []int
	cars  map[int]*loopCar

	scoreBlue   int
	scoreOrange int
}

// NewLoopbackBridge seeds a match with the given cars at their kickoff
// positions. The cars' initial states double as their respawn positions.
func NewLoopbackBridge(sim *physics.Simulator, opts LoopbackOptions, cars []state.CarState, log *logrus.Entry) *LoopbackBridge {
	serror.Assert(sim != nil, "loopback bridge requires a simulator")
	serror.Assert(len(cars) > 0, "loopback bridge requires at least one car")

	b := &LoopbackBridge{
		sim:  sim,
		opts: opts,
		log:  log,
		cars: make(map[int]*loopCar, len(cars)),
	}
	for _, c := range cars {
		b.order = append(b.order, c.ID)
		b.cars[c.ID] = &loopCar{spawn: c, car: c}
	}
	b.resetKickoff()
	return b
}

// Score returns the current blue and orange goal tallies.
func (b *LoopbackBridge) Score() (blue, orange int) {
	return b.scoreBlue, b.scoreOrange
}

// PullSnapshot advances the hosted match by one tick and returns its state.
func (b *LoopbackBridge) PullSnapshot() (*state.GameSnapshot, error) {
	if b.tick > 0 {
		b.step()
	}
	b.tick++

	cars := make([]state.CarState, 0, len(b.order))
	for _, id := range b.order {
		cars = append(cars, b.cars[id].car)
	}
	remaining := b.opts.MatchSeconds - b.time
	if remaining < 0 {
		remaining = 0
	}
	return state.NewGameSnapshot(b.time, b.tick, b.phase, remaining, b.ball, cars), nil
}

// PushControls stores the frame a car plays on the next step.
func (b *LoopbackBridge) PushControls(carID int, controls state.ControlOutput) error {
	lc, ok := b.cars[carID]
	if !ok {
		return serror.New(serror.KindInvalidArgument, "unknown car %d", carID)
	}
	lc.controls = controls.Clamped()
	return nil
}

func (b *LoopbackBridge) step() {
	dt := b.opts.TickDelta
	b.time += dt

	switch b.phase {
	case state.PhaseKickoff:
		b.stepCars(dt)
		// The ball stays pinned at center until the countdown ends.
		b.phaseLeft -= dt
		if b.phaseLeft <= 0 {
			b.phase = state.PhaseActive
		}
	case state.PhaseActive:
		b.stepCars(dt)
		b.ball = b.sim.StepBall(b.ball, dt)
		if team, scored := b.goalScored(); scored {
			b.recordGoal(team)
		} else if b.time >= b.opts.MatchSeconds {
			b.phase = state.PhaseEnded
		}
	case state.PhaseGoalReplay:
		// World frozen during the replay.
		b.phaseLeft -= dt
		if b.phaseLeft <= 0 {
			if b.time >= b.opts.MatchSeconds {
				b.phase = state.PhaseEnded
			} else {
				b.resetKickoff()
			}
		}
	case state.PhaseEnded:
	}
}

func (b *LoopbackBridge) stepCars(dt float32) {
	for _, id := range b.order {
		lc := b.cars[id]
		wasAirborne := !lc.car.OnGround
		lc.car = b.sim.StepCar(lc.car, lc.controls, dt)
		b.trackJumpState(lc, wasAirborne, dt)
	}
}

// trackJumpState maintains the jump and dodge bookkeeping the physics step
// doesn't own: timers reset on wheel contact, run while airborne, and a fresh
// jump press in the air consumes the dodge. The press that launched the
// ground jump itself never counts as the dodge press.
func (b *LoopbackBridge) trackJumpState(lc *loopCar, wasAirborne bool, dt float32) {
	pressed := lc.controls.Jump && !lc.jumpHeld
	lc.jumpHeld = lc.controls.Jump

	if lc.car.OnGround {
		lc.car.JumpTimer = 0
		lc.car.DodgeTimer = 0
		lc.car.HasDodge = true
		return
	}

	lc.car.JumpTimer += dt
	if lc.car.DodgeTimer > 0 {
		lc.car.DodgeTimer += dt
	} else if wasAirborne && pressed && lc.car.HasDodge {
		lc.car.HasDodge = false
		lc.car.DodgeTimer = dt
	}
}

// goalScored reports which team scored once the ball sits fully inside a goal
// volume, i.e. its center is within the goal box shrunk by the ball's radius.
func (b *LoopbackBridge) goalScored() (state.Team, bool) {
	switch {
	case game.BoxContains(game.GoalBox(1).Grow(-game.BallRadius), b.ball.Pos):
		return state.TeamBlue, true
	case game.BoxContains(game.GoalBox(-1).Grow(-game.BallRadius), b.ball.Pos):
		return state.TeamOrange, true
	}
	return 0, false
}

func (b *LoopbackBridge) recordGoal(team state.Team) {
	if team == state.TeamBlue {
		b.scoreBlue++
	} else {
		b.scoreOrange++
	}
	if b.log != nil {
		b.log.WithFields(logrus.Fields{
			"team": team, "blue": b.scoreBlue, "orange": b.scoreOrange,
		}).Info("goal scored")
	}
	b.phase = state.PhaseGoalReplay
	b.phaseLeft = b.opts.ReplaySeconds
}

// resetKickoff puts the world back into its kickoff arrangement.
func (b *LoopbackBridge) resetKickoff() {
	b.ball = state.RigidBodyState{Pos: mgl32.Vec3{0, 0, game.BallRadius}}
	for _, lc := range b.cars {
		lc.car = lc.spawn
		lc.car.Boost = 100 / 3.0
		lc.car.HasDodge = true
		lc.controls = state.ControlOutput{}
		lc.jumpHeld = false
	}
	b.phase = state.PhaseKickoff
	b.phaseLeft = b.opts.KickoffSeconds
}
