package strategy

import (
	"sync"

	"github.com/strafe-rl/strafe/behavior"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/state"
	"github.com/strafe-rl/strafe/worker"
)

const (
	interceptReach = 200
	interceptMaxZ  = game.BallRadius + 160

	// raceClamp bounds the race-time advantage fed into the offense score, in
	// seconds. Anything past it is a foregone conclusion either way.
	raceClamp = 3.0
)

// scores values the offense and defense candidates for this tick. Offense is
// the clamped race-to-ball advantage over the nearest opponent mapped into
// [-1, 1]; defense is a threat estimate built from where the ball is and
// where it is going. The comparison is deliberately explicit and tunable
// rather than a learned policy.
func (s *Selector) scores(ctx *behavior.Context) (offense, defense float32) {
	traj, err := ctx.BallPrediction()
	if err != nil {
		// Malformed prediction request; treat as maximum threat and let
		// recovery handle the tick.
		return -1, 1
	}

	me := ctx.Me
	enemy, hasEnemy := ctx.Snapshot.NearestOpponent(me.Team, ctx.Snapshot.Ball.Loc2D())

	// The two race walks only read the shared trajectory, so they can run on
	// the worker pool and be joined before scoring.
	var (
		wg                  sync.WaitGroup
		meSample, enSample  physics.Sample
		meReach, enemyReach bool
	)
	worker.Go(&wg, func() {
		meSample, meReach = physics.InterceptTime(me, traj, interceptReach, interceptMaxZ)
	})
	if hasEnemy {
		worker.Go(&wg, func() {
			enSample, enemyReach = physics.InterceptTime(enemy, traj, interceptReach, interceptMaxZ)
		})
	}
	wg.Wait()

	offense = offenseScore(meSample, meReach, enSample, enemyReach)
	defense = threatScore(ctx.Snapshot, me, traj, offense)
	return offense, defense
}

func offenseScore(me physics.Sample, meReach bool, enemy physics.Sample, enemyReach bool) float32 {
	if !meReach {
		return -1
	}
	if !enemyReach {
		// Free ball.
		return 1
	}
	advantage := game.ClampFloat(enemy.T-me.T, -raceClamp, raceClamp)
	return advantage / raceClamp
}

func threatScore(snap *state.GameSnapshot, me state.CarState, traj *physics.Trajectory, offense float32) float32 {
	sign := me.Team.DefendSign()

	if dangerT, danger := ballDangerTime(traj, sign); danger {
		// The ball is headed into our net; the only question left is whether
		// the save is makeable in time.
		if physics.RoughDriveTime(me, game.GoalCenter2D(sign)) > dangerT {
			return 1
		}
		return 0.8
	}

	var threat float32
	if snap.Ball.Pos.Y()*sign > 0 {
		threat += 0.3
	}
	if snap.Ball.Vel.Y()*sign > 500 {
		threat += 0.4
	}
	if offense < 0 {
		threat += 0.3
	}
	return threat
}

// ballDangerTime scans the predicted trajectory for the moment the ball
// crosses our goal line through the goal mouth, i.e. a shot that scores
// unless somebody touches it first.
func ballDangerTime(traj *physics.Trajectory, sign float32) (float32, bool) {
	for _, sample := range traj.Samples {
		pos := sample.Body.Pos
		if pos.Y()*sign > game.FieldMaxY-game.BallRadius && game.InGoalMouth(pos, 0) {
			return sample.T, true
		}
	}
	return 0, false
}
