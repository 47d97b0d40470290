package strategy

import (
	"github.com/sirupsen/logrus"
	"github.com/strafe-rl/strafe/behavior"
	"github.com/strafe-rl/strafe/state"
)

// Plan is the selector's high-level intent.
type Plan uint8

const (
	PlanNone Plan = iota
	PlanKickoff
	PlanOffense
	PlanDefense
	PlanIdle
)

func (p Plan) String() string {
	switch p {
	case PlanKickoff:
		return "kickoff"
	case PlanOffense:
		return "offense"
	case PlanDefense:
		return "defense"
	case PlanIdle:
		return "idle"
	}
	return "none"
}

// Options tune the selector's candidate comparison.
type Options struct {
	// SwitchMargin is how decisively a candidate's score must beat the
	// incumbent's before the active root maneuver is replaced. Equal or
	// nearly-equal candidates keep the incumbent, which stops the selector
	// thrashing between maneuvers every tick.
	SwitchMargin float32
}

func DefaultOptions() Options {
	return Options{SwitchMargin: 0.15}
}

// Selector is the top-level policy: each tick it inspects the game phase and
// the predicted outcomes and installs the best root maneuver on its engine.
type Selector struct {
	opts   Options
	engine *behavior.Engine
	log    *logrus.Entry

	plan Plan
}

func NewSelector(opts Options, log *logrus.Entry) *Selector {
	return &Selector{opts: opts, engine: behavior.NewEngine(), log: log}
}

// Plan returns the currently active plan.
func (s *Selector) Plan() Plan {
	return s.plan
}

// Reset interrupts whatever is running, e.g. between matches.
func (s *Selector) Reset() {
	s.engine.Interrupt()
	s.plan = PlanNone
}

// Tick chooses the root maneuver for this tick and advances it. If the active
// maneuver finishes or aborts, the selector falls back to the next sensible
// plan within the same tick, so one ControlOutput is always produced.
func (s *Selector) Tick(ctx *behavior.Context) state.ControlOutput {
	plan := s.choosePlan(ctx)
	if plan != s.plan || !s.engine.Active() {
		s.install(ctx, plan)
	}

	for attempt := 0; attempt < 3; attempt++ {
		out, status := s.engine.Tick(ctx)
		if status == behavior.StatusRunning {
			return out
		}
		s.install(ctx, s.fallbackPlan(s.plan))
	}
	// Idle can't terminate, so this is unreachable unless a maneuver is
	// misbehaving; neutral output is the safe answer either way.
	return state.ControlOutput{}
}

func (s *Selector) choosePlan(ctx *behavior.Context) Plan {
	switch ctx.Snapshot.Phase {
	case state.PhaseKickoff:
		return PlanKickoff
	case state.PhaseGoalReplay, state.PhaseEnded:
		return PlanIdle
	}
	if ctx.Me.Demolished {
		// Nothing to decide until the respawn.
		return PlanIdle
	}

	offense, defense := s.scores(ctx)

	// Hysteresis: the incumbent holds unless the rival is strictly better by
	// the switch margin.
	switch s.plan {
	case PlanOffense:
		if defense > offense+s.opts.SwitchMargin {
			return PlanDefense
		}
		return PlanOffense
	case PlanDefense:
		if offense > defense+s.opts.SwitchMargin {
			return PlanOffense
		}
		return PlanDefense
	}

	if defense > offense {
		return PlanDefense
	}
	return PlanOffense
}

func (s *Selector) install(ctx *behavior.Context, plan Plan) {
	if s.log != nil && plan != s.plan {
		s.log.WithFields(logrus.Fields{"from": s.plan.String(), "to": plan.String()}).
			Debug("root maneuver replaced")
	}
	s.engine.SetRoot(ctx, buildManeuver(plan))
	s.plan = plan
}

// fallbackPlan is where the selector goes when the plan's maneuver reports
// Done or Aborted mid-tick: offense that can no longer reach the ball falls
// back to recovery, finished recovery parks idle.
func (s *Selector) fallbackPlan(plan Plan) Plan {
	switch plan {
	case PlanDefense, PlanIdle:
		return PlanIdle
	default:
		return PlanDefense
	}
}

func buildManeuver(plan Plan) behavior.Maneuver {
	switch plan {
	case PlanKickoff:
		return behavior.Kickoff{}
	case PlanOffense:
		return &behavior.ChaseIntercept{AllowDodge: true}
	case PlanDefense:
		// Recover first so a car knocked into the air doesn't slide past its
		// own net; on flat ground it finishes immediately.
		return behavior.NewSequence("Defense", behavior.Recover{}, behavior.Retreat{})
	default:
		return behavior.NewNull()
	}
}
