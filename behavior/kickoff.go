package behavior

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Kickoff classifies the spawn position and delegates to the matching
// approach: diagonal and off-center spawns first drive to a staging point so
// the final run at the ball is straight, the center spawn goes directly.
type Kickoff struct{}

func (Kickoff) Name() string {
	return "Kickoff"
}

func (Kickoff) Enter(*Context) {}

func (Kickoff) Tick(ctx *Context) Step {
	var (
		x  = ctx.Me.Pos.X()
		sx = math32.Copysign(1, x)
		sy = math32.Copysign(1, ctx.Me.Pos.Y())
	)

	chase := &ChaseIntercept{AllowDodge: true}
	switch {
	case isDiagonalSpawn(x):
		approach := &DriveTo{Target: mgl32.Vec2{600 * sx, 1000 * sy}, ArriveRadius: 200, UseBoost: true}
		return Delegate(NewSequence("KickoffDiagonal", approach, chase))
	case isOffCenterSpawn(x):
		approach := &DriveTo{Target: mgl32.Vec2{100 * sx, 2500 * sy}, ArriveRadius: 300, UseBoost: true}
		return Delegate(NewSequence("KickoffOffCenter", approach, chase))
	default:
		return Delegate(NewSequence("KickoffCenter", chase))
	}
}

func (Kickoff) Interrupt() {}

func isDiagonalSpawn(x float32) bool {
	return math32.Abs(x) >= 1000
}

func isOffCenterSpawn(x float32) bool {
	return math32.Abs(math32.Abs(x)-256) < 50
}
