package physics

import "github.com/strafe-rl/strafe/state"

// ControlPolicy supplies the control input assumed at each point of a
// predicted trajectory. Policies must be pure; the simulator may evaluate
// them from multiple prediction calls at once.
type ControlPolicy interface {
	// ControlsAt returns the controls held at t seconds after the start of
	// the prediction.
	ControlsAt(t float32) state.ControlOutput
}

// FixedPolicy holds the same controls for the whole prediction.
type FixedPolicy struct {
	Controls state.ControlOutput
}

func (p FixedPolicy) ControlsAt(float32) state.ControlOutput {
	return p.Controls
}

// ScheduleEntry is one leg of a SchedulePolicy.
type ScheduleEntry struct {
	// Until is the end of this leg, in seconds from prediction start.
	Until    float32
	Controls state.ControlOutput
}

// SchedulePolicy replays a time-varying control sequence. Entries must be
// sorted by Until; times past the last entry hold its controls.
type SchedulePolicy struct {
	Entries []ScheduleEntry
}

func (p SchedulePolicy) ControlsAt(t float32) state.ControlOutput {
	for _, e := range p.Entries {
		if t < e.Until {
			return e.Controls
		}
	}
	if n := len(p.Entries); n > 0 {
		return p.Entries[n-1].Controls
	}
	return state.ControlOutput{}
}
