package physics

import "github.com/strafe-rl/strafe/state"

// Sample is one point of a predicted trajectory.
type Sample struct {
	// T is seconds since the start of the prediction.
	T    float32
	Body state.RigidBodyState
}

// Trajectory is an ordered sequence of body states at fixed time steps.
// Trajectories are immutable once returned; they are owned by whichever
// maneuver requested them and discarded once the decision using them is made.
type Trajectory struct {
	Step    float32
	Samples []Sample
}

func (t *Trajectory) Start() Sample {
	return t.Samples[0]
}

func (t *Trajectory) Last() Sample {
	return t.Samples[len(t.Samples)-1]
}

func (t *Trajectory) Duration() float32 {
	return t.Last().T
}

// AtOrLast returns the sample nearest to the given time, or the final sample
// when the time lies past the end of the trajectory.
func (t *Trajectory) AtOrLast(at float32) Sample {
	if t.Step <= 0 || at <= 0 {
		return t.Samples[0]
	}
	i := int(at/t.Step + 0.5)
	if i >= len(t.Samples) {
		i = len(t.Samples) - 1
	}
	return t.Samples[i]
}
