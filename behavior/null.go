package behavior

import "github.com/strafe-rl/strafe/state"

// Null yields neutral controls forever. It is the root of last resort during
// replays and after the match ends.
type Null struct{}

func NewNull() Null {
	return Null{}
}

func (Null) Name() string {
	return "Null"
}

func (Null) Enter(*Context) {}

func (Null) Tick(*Context) Step {
	return Yield(state.ControlOutput{})
}

func (Null) Interrupt() {}
