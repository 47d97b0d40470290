package state

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func snapshotCar(id int, team Team, x, y float32) CarState {
	car := CarState{ID: id, Team: team, OnGround: true}
	car.Pos = mgl32.Vec3{x, y, 17}
	return car
}

func TestNearestOpponentPicksClosest(t *testing.T) {
	snap := NewGameSnapshot(0, 1, PhaseActive, 300, RigidBodyState{}, []CarState{
		snapshotCar(1, TeamBlue, 0, 0),
		snapshotCar(2, TeamOrange, 0, 2000),
		snapshotCar(3, TeamOrange, 0, 500),
	})

	enemy, ok := snap.NearestOpponent(TeamBlue, mgl32.Vec2{0, 0})
	if !ok {
		t.Fatal("expected an opponent")
	}
	if enemy.ID != 3 {
		t.Fatalf("expected the closest opponent, got car %d", enemy.ID)
	}
}

func TestNearestOpponentSkipsDemolished(t *testing.T) {
	near := snapshotCar(3, TeamOrange, 0, 500)
	near.Demolished = true
	snap := NewGameSnapshot(0, 1, PhaseActive, 300, RigidBodyState{}, []CarState{
		snapshotCar(1, TeamBlue, 0, 0),
		snapshotCar(2, TeamOrange, 0, 2000),
		near,
	})

	enemy, ok := snap.NearestOpponent(TeamBlue, mgl32.Vec2{0, 0})
	if !ok {
		t.Fatal("expected an opponent")
	}
	if enemy.ID != 2 {
		t.Fatalf("expected the demolished car to be skipped, got car %d", enemy.ID)
	}

	only := near
	snap = NewGameSnapshot(0, 1, PhaseActive, 300, RigidBodyState{}, []CarState{
		snapshotCar(1, TeamBlue, 0, 0),
		only,
	})
	if _, ok := snap.NearestOpponent(TeamBlue, mgl32.Vec2{0, 0}); ok {
		t.Fatal("expected no opponent when every enemy is demolished")
	}
}
