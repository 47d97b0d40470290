package behavior

import "github.com/strafe-rl/strafe/state"

// maxDelegations bounds how many times a single tick may delegate to a child.
// Hitting the bound means a maneuver is delegating in a loop, which is a bug.
const maxDelegations = 16

// Engine runs one maneuver chain for one car. The strategic selector owns it
// and replaces the root whenever a better plan exists; the engine only walks
// delegation chains and reports terminal statuses upward.
type Engine struct {
	// chain[0] is the root; the last element is the maneuver being ticked.
	// Keeping the whole chain lets Interrupt reach every ancestor that
	// delegated, not just the deepest maneuver.
	chain []Maneuver
}

func NewEngine() *Engine {
	return &Engine{}
}

// Active reports whether a root maneuver is currently running.
func (e *Engine) Active() bool {
	return len(e.chain) > 0
}

// RootName returns the name of the current root maneuver, or "" when idle.
func (e *Engine) RootName() string {
	if len(e.chain) == 0 {
		return ""
	}
	return e.chain[0].Name()
}

// SetRoot replaces the active root maneuver. The outgoing chain is always
// interrupted first so no stale internal timers leak into the next maneuver's
// first tick.
func (e *Engine) SetRoot(ctx *Context, m Maneuver) {
	e.Interrupt()
	e.chain = append(e.chain, m)
	m.Enter(ctx)
}

// Interrupt stops the active chain, deepest maneuver first, without replacing it.
func (e *Engine) Interrupt() {
	for i := len(e.chain) - 1; i >= 0; i-- {
		e.chain[i].Interrupt()
	}
	e.chain = nil
}

// Tick advances the active chain by one snapshot. On Done or Aborted the
// engine goes idle; the selector is expected to install a fresh root within
// the same tick. Controls are only meaningful while the returned status is
// Running.
func (e *Engine) Tick(ctx *Context) (state.ControlOutput, Status) {
	if len(e.chain) == 0 {
		return state.ControlOutput{}, StatusAborted
	}

	for i := 0; i < maxDelegations; i++ {
		step := e.chain[len(e.chain)-1].Tick(ctx)
		if step.Child != nil {
			step.Child.Enter(ctx)
			e.chain = append(e.chain, step.Child)
			continue
		}
		if step.Status != StatusRunning {
			e.chain = nil
			return state.ControlOutput{}, step.Status
		}
		return step.Controls, StatusRunning
	}

	if ctx.Log != nil {
		ctx.Log.WithField("maneuver", e.chain[len(e.chain)-1].Name()).Error("delegation loop, aborting maneuver")
	}
	e.chain = nil
	return state.ControlOutput{}, StatusAborted
}
