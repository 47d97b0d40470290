package state

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/strafe-rl/strafe/game"
)

// Team identifies which half of the field a car defends.
type Team uint8

const (
	TeamBlue Team = iota
	TeamOrange
)

// DefendSign returns the sign of the y coordinate of the goal this team defends.
func (t Team) DefendSign() float32 {
	if t == TeamBlue {
		return -1
	}
	return 1
}

func (t Team) String() string {
	if t == TeamBlue {
		return "blue"
	}
	return "orange"
}

// CarState is the per-tick state of one car. ID, Team and Hitbox are fixed for
// the car's lifetime; everything else changes every tick.
type CarState struct {
	RigidBodyState

	ID     int
	Team   Team
	Hitbox cube.BBox

	// Boost holds the remaining boost amount in [0, 100].
	Boost    float32
	OnGround bool

	// JumpTimer counts seconds since the car left the ground with a jump, and
	// DodgeTimer seconds since its dodge was consumed. Both are zero on the ground.
	JumpTimer  float32
	DodgeTimer float32
	HasDodge   bool

	Demolished bool
}

// OnFlatGround reports whether the car has wheel contact on terrain flat
// enough to drive normally.
func (c CarState) OnFlatGround() bool {
	const maxTilt = 15.0 * 3.14159265 / 180.0
	return c.OnGround && game.AbsVec32(c.Rot).X() < maxTilt && game.AbsVec32(c.Rot).Z() < maxTilt
}

// WorldHitbox returns the hitbox translated to the car's current position.
func (c CarState) WorldHitbox() cube.BBox {
	return c.Hitbox.Translate(c.Pos)
}
