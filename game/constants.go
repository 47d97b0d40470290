package game

// Field geometry. Values copied from https://github.com/RLBot/RLBot/wiki/Useful-Game-Values.
const (
	FieldMaxX = 4096.0
	FieldMaxY = 5120.0
	CeilingZ  = 2044.0
	CrossbarZ = 642.775
	GoalpostX = 892.755

	BallRadius    = 91.25
	CarRestHeight = 17.01
	GoalDepth     = 880.0
)

// Car physics.
const (
	// CarNormalSpeed is the max speed a car can reach using only the throttle.
	CarNormalSpeed = 1410.0
	// CarMaxSpeed is the max speed a car can reach by boosting.
	CarMaxSpeed = 2299.98
	// CarAlmostMaxSpeed leaves a little slack below CarMaxSpeed so speed
	// comparisons don't flap at the cap.
	CarAlmostMaxSpeed = CarMaxSpeed - 10.0
	SupersonicSpeed   = 2200.0

	// BoostDepletion is boost consumed per second while the boost button is held.
	BoostDepletion = 100.0 / 3.0
	BoostAccel     = 991.667
	BrakeAccel     = 3500.0
	CoastAccel     = 525.0

	JumpImpulse    = 292.0
	DodgeImpulse   = 500.0
	JumpPressTime  = 6.0 / 120.0
	DodgeWaitTime  = 6.0 / 120.0
	DodgeFloatTime = 1.33333333
)

// Ball physics.
const (
	Gravity      = 650.0
	BallAirDrag  = 0.0305
	BallMaxSpeed = 6000.0

	GroundRestitution = 0.60
	WallRestitution   = 0.78
	// BounceFriction scales the tangential velocity component on every bounce.
	BounceFriction = 0.714
)

// DefaultTickDelta is the host's physics tick length. Callers of the
// predictor should use this (or a multiple of it) to stay consistent with
// in-game behaviour.
const DefaultTickDelta = 1.0 / 120.0
