package behavior

import (
	"github.com/chewxy/math32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
)

// NewJumpAndDodge builds the dodge input script: press jump, release, flip
// towards the given direction, float until the car can act again, then recover
// into a clean landing. direction is the dodge angle in radians relative to
// the car's nose.
func NewJumpAndDodge(direction float32) *Sequence {
	flip := state.ControlOutput{
		Jump:  true,
		Pitch: -math32.Cos(direction),
		Yaw:   math32.Sin(direction),
	}
	return NewSequence("JumpAndDodge",
		NewYielder(game.JumpPressTime, state.ControlOutput{Jump: true}),
		NewYielder(game.DodgeWaitTime, state.ControlOutput{}),
		NewYielder(game.JumpPressTime, flip),
		NewYielder(game.DodgeFloatTime-game.JumpPressTime, state.ControlOutput{}),
		Recover{},
	)
}
