package state

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// GamePhase describes what the match is currently doing.
type GamePhase uint8

const (
	PhaseKickoff GamePhase = iota
	PhaseActive
	PhaseGoalReplay
	PhaseEnded
)

func (p GamePhase) String() string {
	switch p {
	case PhaseKickoff:
		return "kickoff"
	case PhaseActive:
		return "active"
	case PhaseGoalReplay:
		return "goal-replay"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// GameSnapshot is the complete game state for one tick. It is owned by the
// tick driver for that tick and passed by read-only reference to every
// consumer; nothing mutates it after construction.
type GameSnapshot struct {
	// Time is seconds since the match started. Tick is the host tick counter.
	Time float32
	Tick int64

	Phase         GamePhase
	TimeRemaining float32

	Ball RigidBodyState

	cars *orderedmap.OrderedMap[int, CarState]
}

// NewGameSnapshot builds a snapshot from the host bridge's per-tick data. Car
// iteration order follows the order given here, which keeps tie-breaking
// deterministic across ticks.
func NewGameSnapshot(time float32, tick int64, phase GamePhase, remaining float32, ball RigidBodyState, cars []CarState) *GameSnapshot {
	m := orderedmap.NewOrderedMap[int, CarState]()
	for _, c := range cars {
		m.Set(c.ID, c)
	}
	return &GameSnapshot{
		Time:          time,
		Tick:          tick,
		Phase:         phase,
		TimeRemaining: remaining,
		Ball:          ball,
		cars:          m,
	}
}

// Car returns the state of the car with the given id.
func (s *GameSnapshot) Car(id int) (CarState, bool) {
	return s.cars.Get(id)
}

// CarCount returns the number of cars in the snapshot.
func (s *GameSnapshot) CarCount() int {
	return s.cars.Len()
}

// EachCar calls f for every car in snapshot order.
func (s *GameSnapshot) EachCar(f func(CarState)) {
	for el := s.cars.Front(); el != nil; el = el.Next() {
		f(el.Value)
	}
}

// Opponents returns every car not on the given team, in snapshot order.
func (s *GameSnapshot) Opponents(team Team) []CarState {
	var out []CarState
	s.EachCar(func(c CarState) {
		if c.Team != team {
			out = append(out, c)
		}
	})
	return out
}

// NearestOpponent returns the opposing car closest to the given point on the
// ground plane, or false if there is none. Demolished cars are out of play
// and never count.
func (s *GameSnapshot) NearestOpponent(team Team, loc mgl32.Vec2) (CarState, bool) {
	var (
		best     CarState
		bestDist float32
		found    bool
	)
	for _, c := range s.Opponents(team) {
		if c.Demolished {
			continue
		}
		d := c.Loc2D().Sub(loc).Len()
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
