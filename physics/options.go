package physics

import "github.com/strafe-rl/strafe/game"

// Options are the static per-run physical parameters. They affect only the
// simulator's step computation and are never mutated mid-run.
type Options struct {
	// Gravity is the downward acceleration magnitude.
	Gravity float32
	// AirDrag is the per-second velocity decay applied to the ball in flight.
	AirDrag float32

	GroundRestitution float32
	WallRestitution   float32
	// BounceFriction scales the tangential velocity component on every bounce.
	BounceFriction float32

	MaxCarSpeed  float32
	MaxBallSpeed float32

	// LookaheadHorizon bounds how far ahead behaviors search trajectories for
	// an intercept, in seconds.
	LookaheadHorizon float32
	// TickDelta is the host's tick length. Prediction callers should use this
	// (or a multiple) as their step to stay consistent with in-game behaviour.
	TickDelta float32
}

// DefaultOptions returns options matching observed in-game physics.
func DefaultOptions() Options {
	return Options{
		Gravity:           game.Gravity,
		AirDrag:           game.BallAirDrag,
		GroundRestitution: game.GroundRestitution,
		WallRestitution:   game.WallRestitution,
		BounceFriction:    game.BounceFriction,
		MaxCarSpeed:       game.CarMaxSpeed,
		MaxBallSpeed:      game.BallMaxSpeed,
		LookaheadHorizon:  6.0,
		TickDelta:         game.DefaultTickDelta,
	}
}
