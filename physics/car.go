package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
)

// carGroundedZ is the height below which a falling car is considered to have
// landed on its wheels.
const carGroundedZ = game.CarRestHeight + 1.0

// airRotRate is the rotation rate, in rad/s, a full air-control deflection
// produces. A crude stand-in for the real torque model.
const airRotRate = 5.5

var (
	throttleSpeeds = []float32{0, 1400, 1410}
	throttleAccels = []float32{1600, 160, 0}

	// Turning circle curvature as a function of forward speed.
	curvatureSpeeds = []float32{0, 500, 1000, 1500, 1750, 2300}
	curvatures      = []float32{0.0069, 0.00398, 0.00235, 0.001375, 0.0011, 0.00088}
)

// ThrottleAccel returns the forward acceleration a full throttle produces at
// the given forward speed.
func ThrottleAccel(speed float32) float32 {
	return game.LinearInterpolate(throttleSpeeds, throttleAccels, math32.Abs(speed))
}

// TurnCurvature returns the curvature of the tightest turn available at the
// given forward speed.
func TurnCurvature(speed float32) float32 {
	return game.LinearInterpolate(curvatureSpeeds, curvatures, math32.Abs(speed))
}

// StepCar advances a single car by dt under the given controls, carrying
// boost depletion and ground contact through. Pure; the input is not mutated.
func (s *Simulator) StepCar(car state.CarState, controls state.ControlOutput, dt float32) state.CarState {
	c := carSim{body: car.RigidBodyState, boost: car.Boost, onGround: car.OnGround}
	c = s.stepCar(c, controls, dt)
	car.RigidBodyState = c.body
	car.Boost = c.boost
	car.OnGround = c.onGround
	return car
}

// carSim carries the per-car prediction state the rigid body alone doesn't
// hold: boost reserve, wheel contact and elapsed prediction time.
type carSim struct {
	body     state.RigidBodyState
	boost    float32
	onGround bool
	time     float32
}

// stepCar advances a car under the given controls. Rules are applied in
// order: linear acceleration from throttle/boost as a function of forward
// speed, angular response from steering or air control, integration, ground
// and wall containment, and finally the speed clamp.
func (s *Simulator) stepCar(c carSim, controls state.ControlOutput, dt float32) carSim {
	controls = controls.Clamped()
	boosting := controls.Boost && c.boost > 0

	if c.onGround {
		c = s.stepCarGround(c, controls, boosting, dt)
	} else {
		c = s.stepCarAir(c, controls, boosting, dt)
	}

	if boosting {
		c.boost = game.ClampFloat(c.boost-game.BoostDepletion*dt, 0, 100)
	}
	c.body.Vel = clampSpeed(c.body.Vel, s.Opts.MaxCarSpeed)
	c.time += dt
	return c
}

func (s *Simulator) stepCarGround(c carSim, controls state.ControlOutput, boosting bool, dt float32) carSim {
	forward := game.Forward2D(c.body.Yaw())
	speed := c.body.Vel2D().Dot(forward)

	var accel float32
	switch {
	case boosting:
		accel = ThrottleAccel(speed) + game.BoostAccel
	case math32.Abs(controls.Throttle) > 0.01:
		if speed == 0 || math32.Abs(speed) < 10 || (controls.Throttle > 0) == (speed > 0) {
			accel = controls.Throttle * ThrottleAccel(speed)
		} else {
			// Throttle against the direction of motion brakes.
			accel = -math32.Copysign(game.BrakeAccel, speed)
		}
	default:
		// Coasting decelerates towards rest without overshooting it.
		decel := math32.Min(game.CoastAccel*dt, math32.Abs(speed))
		accel = -math32.Copysign(decel, speed) / dt
	}

	speed = game.ClampFloat(speed+accel*dt, -s.Opts.MaxCarSpeed, s.Opts.MaxCarSpeed)

	// Steering rotates the car along its turning circle; lateral slip is not
	// modelled, the velocity follows the nose.
	yaw := c.body.Yaw()
	if math32.Abs(controls.Steer) > 0.01 && speed != 0 {
		yawRate := controls.Steer * TurnCurvature(speed) * speed
		yaw = game.NormalizeAngle(yaw + yawRate*dt)
	}
	forward = game.Forward2D(yaw)

	vel := game.Vec3From2(forward.Mul(speed), 0)
	pos := c.body.Pos.Add(vel.Mul(dt))
	pos[2] = game.CarRestHeight

	if controls.Jump {
		vel[2] = game.JumpImpulse
		c.onGround = false
	}

	c.body = state.RigidBodyState{
		Pos: containInField(pos),
		Vel: vel,
		Rot: mgl32.Vec3{0, yaw, 0},
	}
	return c
}

func (s *Simulator) stepCarAir(c carSim, controls state.ControlOutput, boosting bool, dt float32) carSim {
	vel := c.body.Vel.Add(mgl32.Vec3{0, 0, -s.Opts.Gravity}.Mul(dt))
	if boosting {
		vel = vel.Add(c.body.Forward().Mul(game.BoostAccel * dt))
	}

	rot := c.body.Rot
	rot[0] = game.NormalizeAngle(rot[0] + controls.Pitch*airRotRate*dt)
	rot[1] = game.NormalizeAngle(rot[1] + controls.Yaw*airRotRate*dt)
	rot[2] = game.NormalizeAngle(rot[2] + controls.Roll*airRotRate*dt)

	pos := c.body.Pos.Add(vel.Mul(dt))
	if pos.Z() <= carGroundedZ && vel.Z() <= 0 {
		pos[2] = game.CarRestHeight
		vel[2] = 0
		rot = mgl32.Vec3{0, rot[1], 0}
		c.onGround = true
	}

	c.body = state.RigidBodyState{Pos: containInField(pos), Vel: vel, Rot: rot, AngVel: c.body.AngVel}
	return c
}

// containInField keeps a car inside the arena volume. Cars don't bounce; they
// just stop at the boundary.
func containInField(pos mgl32.Vec3) mgl32.Vec3 {
	pos[0] = game.ClampFloat(pos[0], -game.FieldMaxX+game.CarRestHeight, game.FieldMaxX-game.CarRestHeight)
	if !game.InGoalMouth(pos, 0) {
		pos[1] = game.ClampFloat(pos[1], -game.FieldMaxY+game.CarRestHeight, game.FieldMaxY-game.CarRestHeight)
	}
	pos[2] = game.ClampFloat(pos[2], game.CarRestHeight, game.CeilingZ-game.CarRestHeight)
	return pos
}
