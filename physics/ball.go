package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
)

// StepBall advances the ball by one tick of passive physics. Pure; the input
// is not mutated.
func (s *Simulator) StepBall(b state.RigidBodyState, dt float32) state.RigidBodyState {
	return s.stepBall(b, dt)
}

// stepBall advances the ball by dt under passive physics. Collisions consume
// only the time remaining up to first contact and the remainder of the step is
// simulated in the reflected direction, so the ball never tunnels through a
// surface regardless of step size.
func (s *Simulator) stepBall(b state.RigidBodyState, dt float32) state.RigidBodyState {
	vel := b.Vel.Add(mgl32.Vec3{0, 0, -s.Opts.Gravity}.Mul(dt))
	if s.Opts.AirDrag > 0 {
		vel = vel.Mul(1 - s.Opts.AirDrag*dt)
	}
	vel = clampSpeed(vel, s.Opts.MaxBallSpeed)

	pos := b.Pos
	remaining := dt
	// A step can resolve at most a handful of bounces; corners terminate fast
	// because every bounce sheds energy through restitution.
	for i := 0; i < 8 && remaining > 1e-6; i++ {
		hit, toi, normal, restitution := s.firstContact(pos, vel, remaining, game.BallRadius)
		if !hit {
			pos = pos.Add(vel.Mul(remaining))
			break
		}
		pos = pos.Add(vel.Mul(toi))
		remaining -= toi
		vel = reflect(vel, normal, restitution, s.Opts.BounceFriction)
	}

	return state.RigidBodyState{Pos: pos, Vel: vel, Rot: b.Rot, AngVel: b.AngVel}
}

// surface is one bounding plane of the arena.
type surface struct {
	normal mgl32.Vec3
	// offset is the coordinate of the plane along its axis, already adjusted
	// for the body radius.
	offset      float32
	axis        int
	restitution float32
	// goalMouth surfaces don't collide when the body lines up with the goal
	// opening.
	goalMouth bool
}

func (s *Simulator) arenaSurfaces(radius float32) [6]surface {
	field := game.FieldBox()
	min, max := field.Min(), field.Max()
	return [6]surface{
		{normal: mgl32.Vec3{0, 0, 1}, offset: min.Z() + radius, axis: 2, restitution: s.Opts.GroundRestitution},
		{normal: mgl32.Vec3{0, 0, -1}, offset: max.Z() - radius, axis: 2, restitution: s.Opts.GroundRestitution},
		{normal: mgl32.Vec3{1, 0, 0}, offset: min.X() + radius, axis: 0, restitution: s.Opts.WallRestitution},
		{normal: mgl32.Vec3{-1, 0, 0}, offset: max.X() - radius, axis: 0, restitution: s.Opts.WallRestitution},
		{normal: mgl32.Vec3{0, 1, 0}, offset: min.Y() + radius, axis: 1, restitution: s.Opts.WallRestitution, goalMouth: true},
		{normal: mgl32.Vec3{0, -1, 0}, offset: max.Y() - radius, axis: 1, restitution: s.Opts.WallRestitution, goalMouth: true},
	}
}

// firstContact finds the earliest surface the body reaches within the time
// window, returning the time to contact and the surface's response parameters.
func (s *Simulator) firstContact(pos, vel mgl32.Vec3, window, radius float32) (bool, float32, mgl32.Vec3, float32) {
	var (
		found    bool
		bestTOI  float32
		bestSurf surface
	)
	for _, surf := range s.arenaSurfaces(radius) {
		approach := vel.Dot(surf.normal)
		if approach >= 0 {
			continue
		}
		dist := pos[surf.axis]*surf.normal[surf.axis] - surf.offset*surf.normal[surf.axis]
		if dist < 0 {
			// Already past the plane (e.g. inside a goal); don't pull back.
			continue
		}
		toi := dist / -approach
		if toi > window {
			continue
		}
		at := pos.Add(vel.Mul(toi))
		if surf.goalMouth && game.InGoalMouth(at, radius) {
			continue
		}
		if !found || toi < bestTOI {
			found, bestTOI, bestSurf = true, toi, surf
		}
	}
	if !found {
		return false, 0, mgl32.Vec3{}, 0
	}
	return true, bestTOI, bestSurf.normal, bestSurf.restitution
}

// reflect flips the normal velocity component scaled by the restitution
// coefficient and applies tangential friction. Restitution is piecewise
// constant per surface class, not a continuous damping.
func reflect(vel, normal mgl32.Vec3, restitution, friction float32) mgl32.Vec3 {
	vn := normal.Mul(vel.Dot(normal))
	vt := vel.Sub(vn)
	return vt.Mul(friction).Sub(vn.Mul(restitution))
}

func clampSpeed(vel mgl32.Vec3, max float32) mgl32.Vec3 {
	if speed := vel.Len(); speed > max {
		return vel.Mul(max / speed)
	}
	return vel
}
