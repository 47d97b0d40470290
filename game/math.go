package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LinearInterpolate maps x onto ys by linear interpolation over the sorted
// sample points xs. Values outside the table are clamped to the endpoints.
func LinearInterpolate(xs, ys []float32, x float32) float32 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}

	i := 1
	for xs[i] < x {
		i++
	}
	frac := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + (ys[i]-ys[i-1])*frac
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// NormalizeAngle wraps an angle in radians into (-π, π].
func NormalizeAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

// Forward2D returns the unit vector a car with the given yaw is facing,
// projected onto the ground plane.
func Forward2D(yaw float32) mgl32.Vec2 {
	return mgl32.Vec2{math32.Cos(yaw), math32.Sin(yaw)}
}

// DirectionVector returns a direction vector from the given yaw and pitch values.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)
	return mgl32.Vec3{
		m * math32.Cos(yaw),
		m * math32.Sin(yaw),
		math32.Sin(pitch),
	}
}

// YawTo returns the yaw a body at from would need to face the target point.
func YawTo(from mgl32.Vec2, target mgl32.Vec2) float32 {
	d := target.Sub(from)
	return math32.Atan2(d.Y(), d.X())
}

// AbsVec32 will return the given vector, but all the values of it are switched
// to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}

// Vec2From3 drops the z component of a vector.
func Vec2From3(vec mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{vec.X(), vec.Y()}
}

// Vec3From2 lifts a ground-plane vector back to three dimensions.
func Vec3From2(vec mgl32.Vec2, z float32) mgl32.Vec3 {
	return mgl32.Vec3{vec.X(), vec.Y(), z}
}

// IsFiniteVec3 reports whether every component of the vector is a finite number.
func IsFiniteVec3(vec mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math32.IsNaN(vec[i]) || math32.IsInf(vec[i], 0) {
			return false
		}
	}
	return true
}
