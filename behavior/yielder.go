package behavior

import "github.com/strafe-rl/strafe/state"

// Yielder emits fixed controls for a fixed duration, then finishes. Timed
// input scripts (jumps, dodges) are sequences of these.
type Yielder struct {
	duration float32
	controls state.ControlOutput

	started bool
	start   float32
}

func NewYielder(duration float32, controls state.ControlOutput) *Yielder {
	return &Yielder{duration: duration, controls: controls}
}

func (y *Yielder) Name() string {
	return "Yielder"
}

func (y *Yielder) Enter(*Context) {
	y.started = false
	y.start = 0
}

func (y *Yielder) Tick(ctx *Context) Step {
	if !y.started {
		y.started = true
		y.start = ctx.Snapshot.Time
	}
	if ctx.Snapshot.Time-y.start < y.duration {
		return Yield(y.controls)
	}
	return Finish()
}

func (y *Yielder) Interrupt() {
	y.started = false
}
