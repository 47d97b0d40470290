package physics

import (
	"github.com/strafe-rl/strafe/serror"
	"github.com/strafe-rl/strafe/state"
)

// Simulator advances rigid body states forward in time under a fixed physical
// rule set. It is pure and side-effect free: it never mutates caller-owned
// state, so independent prediction calls may run in parallel within a tick.
type Simulator struct {
	Opts Options
}

func NewSimulator(opts Options) *Simulator {
	return &Simulator{Opts: opts}
}

// Predict advances initial forward by duration, sampling every step seconds.
// A nil policy means passive ball physics: gravity, drag and surface bounces
// with no control input. A non-nil policy predicts a car holding the policy's
// controls; car-specific resources (boost) are assumed full — use PredictCar
// when they matter.
//
// A duration of zero returns a single-sample trajectory equal to the input.
// Negative durations and non-finite states fail with an invalid-argument error.
func (s *Simulator) Predict(initial state.RigidBodyState, duration, step float32, policy ControlPolicy) (*Trajectory, error) {
	if err := s.validate(initial, duration, step); err != nil {
		return nil, err
	}
	if duration == 0 {
		return &Trajectory{Step: step, Samples: []Sample{{T: 0, Body: initial}}}, nil
	}

	if policy == nil {
		return s.run(initial, duration, step, func(b state.RigidBodyState, dt float32) state.RigidBodyState {
			return s.stepBall(b, dt)
		}), nil
	}

	car := carSim{body: initial, boost: 100, onGround: initial.Pos.Z() <= carGroundedZ}
	return s.run(initial, duration, step, func(b state.RigidBodyState, dt float32) state.RigidBodyState {
		car.body = b
		car = s.stepCar(car, policy.ControlsAt(car.time), dt)
		return car.body
	}), nil
}

// PredictBall predicts the ball under passive physics.
func (s *Simulator) PredictBall(initial state.RigidBodyState, duration, step float32) (*Trajectory, error) {
	return s.Predict(initial, duration, step, nil)
}

// PredictCar predicts a car holding the given control policy, tracking boost
// depletion and ground contact from the car's current state.
func (s *Simulator) PredictCar(initial state.CarState, duration, step float32, policy ControlPolicy) (*Trajectory, error) {
	if policy == nil {
		policy = FixedPolicy{}
	}
	if err := s.validate(initial.RigidBodyState, duration, step); err != nil {
		return nil, err
	}
	if duration == 0 {
		return &Trajectory{Step: step, Samples: []Sample{{T: 0, Body: initial.RigidBodyState}}}, nil
	}

	car := carSim{body: initial.RigidBodyState, boost: initial.Boost, onGround: initial.OnGround}
	return s.run(initial.RigidBodyState, duration, step, func(b state.RigidBodyState, dt float32) state.RigidBodyState {
		car.body = b
		car = s.stepCar(car, policy.ControlsAt(car.time), dt)
		return car.body
	}), nil
}

func (s *Simulator) validate(initial state.RigidBodyState, duration, step float32) error {
	if !initial.Finite() {
		return serror.New(serror.KindInvalidArgument, "non-finite state values in prediction request")
	}
	if duration < 0 {
		return serror.New(serror.KindInvalidArgument, "negative prediction duration %v", duration)
	}
	if duration > 0 && step <= 0 {
		return serror.New(serror.KindInvalidArgument, "non-positive prediction step %v", step)
	}
	return nil
}

func (s *Simulator) run(initial state.RigidBodyState, duration, step float32, advance func(state.RigidBodyState, float32) state.RigidBodyState) *Trajectory {
	n := int(duration/step + 0.5)
	if n < 1 {
		n = 1
	}
	samples := make([]Sample, 0, n+1)
	samples = append(samples, Sample{T: 0, Body: initial})

	body := initial
	t := float32(0)
	for i := 0; i < n; i++ {
		dt := step
		if t+dt > duration {
			dt = duration - t
		}
		if dt <= 0 {
			break
		}
		body = advance(body, dt)
		t += dt
		samples = append(samples, Sample{T: t, Body: body})
	}
	return &Trajectory{Step: step, Samples: samples}
}
