package behavior

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
)

// DriveTowards is the basic ground steering law: full throttle, steer twice
// the yaw error, handbrake when the error exceeds a speed-dependent cutoff.
func DriveTowards(ctx *Context, target mgl32.Vec2) state.ControlOutput {
	me := ctx.Me
	yawDiff := game.NormalizeAngle(game.YawTo(me.Loc2D(), target) - me.Yaw())

	handbrakeCutoff := game.LinearInterpolate(
		[]float32{0, game.CarNormalSpeed},
		[]float32{math32.Pi * 0.25, math32.Pi * 0.50},
		me.Speed(),
	)

	return state.ControlOutput{
		Throttle:  1,
		Steer:     game.ClampFloat(yawDiff*2, -1, 1),
		Handbrake: math32.Abs(yawDiff) >= handbrakeCutoff,
	}
}

// boostAlignCutoff is how straight the car must point before boosting is
// worth the fuel.
const boostAlignCutoff = math32.Pi / 12

func shouldBoost(me state.CarState, target mgl32.Vec2) bool {
	if me.Boost <= 0 || me.Speed() >= game.CarAlmostMaxSpeed {
		return false
	}
	yawDiff := game.NormalizeAngle(game.YawTo(me.Loc2D(), target) - me.Yaw())
	return math32.Abs(yawDiff) < boostAlignCutoff
}

// DriveTo drives to a fixed ground target and finishes on arrival. It is
// naive on purpose; wrap it in AbortIf or a Sequence for anything clever.
type DriveTo struct {
	Target       mgl32.Vec2
	ArriveRadius float32
	UseBoost     bool
}

func (d *DriveTo) Name() string {
	return "DriveTo"
}

func (d *DriveTo) Enter(*Context) {}

func (d *DriveTo) Tick(ctx *Context) Step {
	if ctx.Me.Loc2D().Sub(d.Target).Len() <= d.ArriveRadius {
		return Finish()
	}
	out := DriveTowards(ctx, d.Target)
	if d.UseBoost && shouldBoost(ctx.Me, d.Target) {
		out.Boost = true
	}
	return Yield(out)
}

func (d *DriveTo) Interrupt() {}
