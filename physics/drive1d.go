package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/state"
)

// Drive1D simulates a car driving in a straight line. It is the cheap
// workhorse behind race-to-ball scoring and drive-time estimates, where the
// full 3D predictor would be overkill.
type Drive1D struct {
	Time  float32
	Dist  float32
	Speed float32
	Boost float32
}

func NewDrive1D(speed float32) *Drive1D {
	return &Drive1D{Speed: game.ClampFloat(speed, 0, game.CarMaxSpeed), Boost: 100}
}

func (d *Drive1D) WithBoost(boost float32) *Drive1D {
	d.Boost = boost
	return d
}

// Step advances the car by dt holding the given throttle, boosting when boost
// is true and any boost remains.
func (d *Drive1D) Step(dt, throttle float32, boost bool) {
	if boost {
		boost = d.Boost > 0
	}

	newSpeed := d.computeNewSpeed(dt, throttle, boost)

	d.Time += dt
	d.Dist += d.Speed * dt
	d.Speed = newSpeed
	if boost {
		d.Boost = math32.Max(0, d.Boost-game.BoostDepletion*dt)
	}
}

func (d *Drive1D) computeNewSpeed(dt, throttle float32, boost bool) float32 {
	if d.Speed >= game.CarNormalSpeed && throttle == 1.0 && !boost {
		return d.Speed
	}

	var accel float32
	switch {
	case boost:
		accel = ThrottleAccel(d.Speed) + game.BoostAccel
	case throttle > 0:
		accel = throttle * ThrottleAccel(d.Speed)
	default:
		accel = -math32.Min(game.CoastAccel, d.Speed/dt)
	}
	return game.ClampFloat(d.Speed+accel*dt, 0, game.CarMaxSpeed)
}

// InterceptTime races a 1-D model of the car against a predicted ball
// trajectory, sample by sample, and returns the earliest sample the car
// reaches in time. reach is the separation that counts as contact and maxZ
// the highest ball the car can touch. Returns false when nothing within the
// trajectory is reachable.
func InterceptTime(car state.CarState, traj *Trajectory, reach, maxZ float32) (Sample, bool) {
	sim := NewDrive1D(car.Speed()).WithBoost(car.Boost)
	for _, sample := range traj.Samples[1:] {
		sim.Step(traj.Step, 1.0, true)
		if sample.Body.Pos.Z() > maxZ {
			continue
		}
		if sim.Dist >= car.Loc2D().Sub(sample.Body.Loc2D()).Len()-reach {
			return sample, true
		}
	}
	return Sample{}, false
}

// roughDriveTimeCap bounds the drive-time search; anything slower than this
// is as good as unreachable.
const roughDriveTimeCap = 30.0

// RoughDriveTime estimates how long the car needs to reach the target at full
// throttle and boost, including a rough penalty for the initial turn.
func RoughDriveTime(car state.CarState, target mgl32.Vec2) float32 {
	const dt = 1.0 / 60.0

	dist := car.Loc2D().Sub(target).Len()
	yawDiff := game.NormalizeAngle(game.YawTo(car.Loc2D(), target) - car.Yaw())

	// The turn penalty is a guess, same as it ever was.
	t := 2.0/120.0 + math32.Abs(yawDiff)*0.75
	sim := NewDrive1D(car.Speed()).WithBoost(car.Boost)
	for sim.Dist < dist {
		sim.Step(dt, 1.0, true)
		t += dt
		if t >= roughDriveTimeCap {
			break
		}
	}
	return t
}
