package behavior

import "github.com/strafe-rl/strafe/state"

// Status is the externally visible state of a maneuver. Siblings and parents
// only ever observe this; a maneuver's internal progress is its own.
type Status uint8

const (
	StatusRunning Status = iota
	StatusDone
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusAborted:
		return "aborted"
	}
	return "unknown"
}

// Step is the outcome of one maneuver tick: either controls to emit, a child
// maneuver to delegate to, or a terminal status.
type Step struct {
	Controls state.ControlOutput
	Child    Maneuver
	Status   Status
}

// Maneuver is a node in the behavior tree. Enter clears internal progress,
// Tick advances it by one snapshot, and Interrupt stops it synchronously and
// immediately. A maneuver must be resumable purely from its stored state plus
// the next snapshot; it must not raise for normal gameplay variance, only for
// malformed context.
type Maneuver interface {
	Name() string
	Enter(ctx *Context)
	Tick(ctx *Context) Step
	Interrupt()
}

// Yield emits controls and keeps the maneuver running.
func Yield(controls state.ControlOutput) Step {
	return Step{Controls: controls, Status: StatusRunning}
}

// Delegate hands the rest of this maneuver over to child.
func Delegate(child Maneuver) Step {
	return Step{Child: child, Status: StatusRunning}
}

// Finish reports successful completion.
func Finish() Step {
	return Step{Status: StatusDone}
}

// Abort reports that the maneuver can no longer achieve its goal. The engine
// never emits partial control output for an aborted maneuver.
func Abort() Step {
	return Step{Status: StatusAborted}
}
