package behavior

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
)

const (
	retreatArriveRadius = 300
	retreatBoostRange   = 2500
	retreatParkedSpeed  = 100
)

// Retreat falls back to a defensible position in front of our own net and
// parks there. It finishes once parked; it never aborts, which makes it the
// selector's safe fallback when offense is off the table.
type Retreat struct{}

func (Retreat) Name() string {
	return "Retreat"
}

func (Retreat) Enter(*Context) {}

func (Retreat) Tick(ctx *Context) Step {
	sign := ctx.Me.Team.DefendSign()
	target := mgl32.Vec2{0, (game.FieldMaxY - 400) * sign}

	dist := ctx.Me.Loc2D().Sub(target).Len()
	if dist <= retreatArriveRadius {
		if ctx.Me.Speed() <= retreatParkedSpeed {
			return Finish()
		}
		// Coast to a stop in position.
		return Yield(state.ControlOutput{})
	}

	out := DriveTowards(ctx, target)
	if dist > retreatBoostRange && shouldBoost(ctx.Me, target) {
		out.Boost = true
	}
	return Yield(out)
}

func (Retreat) Interrupt() {}
