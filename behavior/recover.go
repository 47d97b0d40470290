package behavior

import (
	"github.com/chewxy/math32"
	"github.com/strafe-rl/strafe/game"
)

const (
	// recoverAlignCutoff is the largest yaw error, relative to the velocity
	// direction, at which the car counts as recovered.
	recoverAlignCutoff = math32.Pi / 10
	// recoverMinSpeed is the speed below which skid alignment is moot.
	recoverMinSpeed = 300
)

// Recover gets the car back into a drivable attitude after a dodge, aerial or
// bump. Airborne it levels pitch and roll and turns the nose toward the
// velocity direction so the landing carries momentum; on the ground it
// counter-steers out of any remaining skid. Done once the car has wheel
// contact and points roughly where it is sliding.
type Recover struct{}

func (Recover) Name() string {
	return "Recover"
}

func (Recover) Enter(*Context) {}

func (Recover) Tick(ctx *Context) Step {
	me := ctx.Me

	if !me.OnGround {
		out := DriveTowards(ctx, me.Loc2D().Add(me.Vel2D()))
		out.Handbrake = false
		out.Pitch = game.ClampFloat(-me.Pitch()*2, -1, 1)
		out.Roll = game.ClampFloat(-me.Roll()*2, -1, 1)
		out.Yaw = out.Steer
		return Yield(out)
	}

	if me.Speed() < recoverMinSpeed {
		return Finish()
	}
	velYaw := math32.Atan2(me.Vel.Y(), me.Vel.X())
	yawDiff := game.NormalizeAngle(velYaw - me.Yaw())
	if math32.Abs(yawDiff) < recoverAlignCutoff {
		return Finish()
	}

	// Still skidding: steer into the slide until the nose catches up.
	return Yield(DriveTowards(ctx, me.Loc2D().Add(me.Vel2D())))
}

func (Recover) Interrupt() {}
