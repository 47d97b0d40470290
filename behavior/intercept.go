package behavior

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/serror"
	"github.com/strafe-rl/strafe/state"
)

const (
	// maxGroundHitZ is the highest ball a grounded car can plausibly touch.
	maxGroundHitZ = game.BallRadius + 160
	// hitSlack pads the car's contact volume; the host's collision physics,
	// not ours, decide the actual touch.
	hitSlack = 60
	// hitDistance is the reach used when racing the 1-D car model against the
	// predicted ball trajectory.
	hitDistance = 200
	// aimStandoff is how far behind the ball, along the line away from the
	// opponent goal, the approach point sits.
	aimStandoff = game.BallRadius
)

// ChaseIntercept drives toward a future ball position instead of the current
// one: each tick it walks the predicted ball trajectory alongside a 1-D model
// of its own car and aims for the earliest sample it can reach in time. The
// approach point is bent behind the ball so the hit pushes it toward the
// opponent goal. If no sample within the lookahead horizon is reachable it
// aborts rather than producing undefined output.
type ChaseIntercept struct {
	AllowDodge bool
}

func (c *ChaseIntercept) Name() string {
	return "ChaseIntercept"
}

func (c *ChaseIntercept) Enter(*Context) {}

func (c *ChaseIntercept) Tick(ctx *Context) Step {
	ball := ctx.Snapshot.Ball
	if contactReached(ctx.Me, ball) {
		return Finish()
	}

	sample, err := c.findIntercept(ctx)
	if err != nil {
		if serror.IsKind(err, serror.KindPredictionUnavailable) {
			if ctx.Log != nil {
				ctx.Log.Debug("no reachable intercept within horizon")
			}
			return Abort()
		}
		// Anything else is a malformed prediction request, i.e. our bug.
		if ctx.Log != nil {
			ctx.Log.WithError(err).Error("ball prediction failed")
		}
		return Abort()
	}

	target := aimPoint(ctx.Me, sample.Body.Loc2D())
	if c.AllowDodge && c.shouldDodge(ctx, sample) {
		return Delegate(NewJumpAndDodge(0))
	}

	out := DriveTowards(ctx, target)
	if shouldBoost(ctx.Me, target) {
		out.Boost = true
	}
	return Yield(out)
}

func (c *ChaseIntercept) Interrupt() {}

// contactReached reports whether the ball is inside the car's padded hitbox,
// i.e. the hit has effectively happened.
func contactReached(me state.CarState, ball state.RigidBodyState) bool {
	return game.BoxContains(me.WorldHitbox().Grow(game.BallRadius+hitSlack), ball.Pos)
}

// aimPoint bends the approach so the hit sends the ball toward the opponent
// goal: the target sits behind the ball on the line away from the goal mouth.
// When the bent point would leave the field (ball against a wall or in a
// corner) the ball itself is the target.
func aimPoint(me state.CarState, ball mgl32.Vec2) mgl32.Vec2 {
	goal := game.GoalCenter2D(-me.Team.DefendSign())
	away := ball.Sub(goal)
	if l := away.Len(); l > 1e-3 {
		away = away.Mul(1 / l)
	}

	target := ball.Add(away.Mul(aimStandoff))
	if !game.InsideField(game.Vec3From2(target, game.BallRadius)) {
		return ball
	}
	return target
}

// findIntercept looks up the earliest reachable sample of the predicted ball
// trajectory.
func (c *ChaseIntercept) findIntercept(ctx *Context) (physics.Sample, error) {
	traj, err := ctx.BallPrediction()
	if err != nil {
		return physics.Sample{}, err
	}
	sample, ok := physics.InterceptTime(ctx.Me, traj, hitDistance, maxGroundHitZ)
	if !ok {
		return physics.Sample{}, serror.New(serror.KindPredictionUnavailable,
			"ball unreachable within %.1fs horizon", traj.Duration())
	}
	return sample, nil
}

// shouldDodge decides whether a speed dodge pays off on the way to the
// intercept. Thresholds follow the usual ground-dodge heuristics: only with a
// dodge in hand, low on boost, lined up, fast but not capped, and far enough
// that the dodge completes before arrival.
func (c *ChaseIntercept) shouldDodge(ctx *Context, sample physics.Sample) bool {
	me := ctx.Me
	if !me.HasDodge || me.Boost > 1 || !me.OnFlatGround() {
		return false
	}

	target := sample.Body.Loc2D()
	yawDiff := game.NormalizeAngle(game.YawTo(me.Loc2D(), target) - me.Yaw())
	if math32.Abs(yawDiff) >= math32.Pi/60 {
		return false
	}

	speed := me.Speed()
	if speed < 1300 || speed >= game.CarAlmostMaxSpeed {
		return false
	}

	travelTime := me.Loc2D().Sub(target).Len() / (speed + game.DodgeImpulse)
	return travelTime > game.DodgeFloatTime
}
