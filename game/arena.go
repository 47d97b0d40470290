package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// FieldBox returns the bounding volume of the playable field, goals excluded.
func FieldBox() cube.BBox {
	return cube.Box(-FieldMaxX, -FieldMaxY, 0, FieldMaxX, FieldMaxY, CeilingZ)
}

// GoalBox returns the volume of the goal on the given side of the field.
// sideY is -1 for the goal on the negative y back wall and +1 for the other.
func GoalBox(sideY float32) cube.BBox {
	if sideY < 0 {
		return cube.Box(-GoalpostX, -FieldMaxY-GoalDepth, 0, GoalpostX, -FieldMaxY, CrossbarZ)
	}
	return cube.Box(-GoalpostX, FieldMaxY, 0, GoalpostX, FieldMaxY+GoalDepth, CrossbarZ)
}

// GoalCenter2D returns the ground-plane center of the goal mouth on the given side.
func GoalCenter2D(sideY float32) mgl32.Vec2 {
	if sideY < 0 {
		return mgl32.Vec2{0, -FieldMaxY}
	}
	return mgl32.Vec2{0, FieldMaxY}
}

// BoxContains reports whether the point lies inside the box, boundary included.
func BoxContains(b cube.BBox, p mgl32.Vec3) bool {
	min, max := b.Min(), b.Max()
	return p.X() >= min.X() && p.X() <= max.X() &&
		p.Y() >= min.Y() && p.Y() <= max.Y() &&
		p.Z() >= min.Z() && p.Z() <= max.Z()
}

// InsideField reports whether the point is within the field volume proper
// (not inside either goal).
func InsideField(p mgl32.Vec3) bool {
	return math32.Abs(p.X()) <= FieldMaxX && math32.Abs(p.Y()) <= FieldMaxY &&
		p.Z() >= 0 && p.Z() <= CeilingZ
}

// InGoalMouth reports whether a ground-plane point is lined up with a goal
// opening, i.e. a body there can pass through the back wall plane.
func InGoalMouth(p mgl32.Vec3, radius float32) bool {
	return math32.Abs(p.X()) < GoalpostX-radius && p.Z() < CrossbarZ-radius
}

// CarHitbox returns the Octane hitbox centered on a car at the origin.
func CarHitbox() cube.BBox {
	const (
		length = 118.01
		width  = 84.2
		height = 36.16
	)
	return cube.Box(-length/2, -width/2, 0, length/2, width/2, height)
}
