package state

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
)

// RigidBodyState is an immutable snapshot of a body's kinematics at a point in
// time. Simulation steps produce new values rather than mutating in place so
// trajectory histories stay safe to share.
type RigidBodyState struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3
	// Rot holds pitch, yaw and roll in radians.
	Rot    mgl32.Vec3
	AngVel mgl32.Vec3
}

func (b RigidBodyState) Pitch() float32 { return b.Rot[0] }
func (b RigidBodyState) Yaw() float32   { return b.Rot[1] }
func (b RigidBodyState) Roll() float32  { return b.Rot[2] }

// Forward returns the unit vector the body's nose points along.
func (b RigidBodyState) Forward() mgl32.Vec3 {
	return game.DirectionVector(b.Yaw(), b.Pitch())
}

// Forward2D returns the facing direction projected onto the ground plane.
func (b RigidBodyState) Forward2D() mgl32.Vec2 {
	return game.Forward2D(b.Yaw())
}

// Loc2D returns the position projected onto the ground plane.
func (b RigidBodyState) Loc2D() mgl32.Vec2 {
	return game.Vec2From3(b.Pos)
}

// Vel2D returns the velocity projected onto the ground plane.
func (b RigidBodyState) Vel2D() mgl32.Vec2 {
	return game.Vec2From3(b.Vel)
}

func (b RigidBodyState) Speed() float32 {
	return b.Vel.Len()
}

// Finite reports whether all kinematic components hold finite values.
func (b RigidBodyState) Finite() bool {
	return game.IsFiniteVec3(b.Pos) && game.IsFiniteVec3(b.Vel) &&
		game.IsFiniteVec3(b.Rot) && game.IsFiniteVec3(b.AngVel)
}
