package state

import "github.com/strafe-rl/strafe/game"

// ControlOutput is one tick's worth of controller input for one car. Analog
// axes are in [-1, 1] except Throttle which also spans [-1, 1] (negative is
// reverse). Values outside the documented ranges are clamped before emission,
// never passed through.
type ControlOutput struct {
	Steer    float32
	Throttle float32

	Pitch float32
	Yaw   float32
	Roll  float32

	Boost     bool
	Jump      bool
	Handbrake bool
}

// Clamped returns a copy with every analog axis clamped to its documented range.
func (c ControlOutput) Clamped() ControlOutput {
	c.Steer = game.ClampFloat(c.Steer, -1, 1)
	c.Throttle = game.ClampFloat(c.Throttle, -1, 1)
	c.Pitch = game.ClampFloat(c.Pitch, -1, 1)
	c.Yaw = game.ClampFloat(c.Yaw, -1, 1)
	c.Roll = game.ClampFloat(c.Roll, -1, 1)
	return c
}
