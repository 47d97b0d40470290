package behavior

import (
	"github.com/sirupsen/logrus"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/serror"
	"github.com/strafe-rl/strafe/state"
)

// Context carries everything a maneuver may consult during one tick: the
// current snapshot, the car being controlled, and the simulator for lookahead.
// One context exists per tick and is discarded afterwards; there is no shared
// mutable state between ticks outside the maneuvers themselves.
type Context struct {
	Snapshot *state.GameSnapshot
	Me       state.CarState
	Sim      *physics.Simulator
	Log      *logrus.Entry

	ballPrediction *physics.Trajectory
}

// NewContext builds the per-tick context. A nil snapshot or simulator is a
// programming-contract violation.
func NewContext(snapshot *state.GameSnapshot, me state.CarState, sim *physics.Simulator, log *logrus.Entry) *Context {
	serror.Assert(snapshot != nil, "maneuver context requires a snapshot")
	serror.Assert(sim != nil, "maneuver context requires a simulator")
	return &Context{Snapshot: snapshot, Me: me, Sim: sim, Log: log}
}

// BallPrediction returns the passive ball trajectory over the lookahead
// horizon. It is computed at most once per tick; the cache dies with the
// context at the end of the tick.
func (c *Context) BallPrediction() (*physics.Trajectory, error) {
	if c.ballPrediction != nil {
		return c.ballPrediction, nil
	}
	traj, err := c.Sim.PredictBall(c.Snapshot.Ball, c.Sim.Opts.LookaheadHorizon, c.Sim.Opts.TickDelta)
	if err != nil {
		return nil, err
	}
	c.ballPrediction = traj
	return traj, nil
}
