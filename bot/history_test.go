package bot

import (
	"testing"

	"github.com/strafe-rl/strafe/state"
)

func TestOutputHistoryWrapsAround(t *testing.T) {
	h := NewOutputHistory(3)
	for tick := int64(1); tick <= 5; tick++ {
		h.Add(HistoricalOutput{Tick: tick, Controls: state.ControlOutput{Steer: float32(tick)}})
	}

	if h.Len() != 3 {
		t.Fatalf("expected capacity to bound the history, got %d", h.Len())
	}

	last, ok := h.Latest()
	if !ok || last.Tick != 5 {
		t.Fatalf("expected the latest entry to be tick 5, got %+v", last)
	}
	if last.Controls.Steer != 5 {
		t.Fatalf("expected the latest entry's controls, got %+v", last.Controls)
	}
}

func TestOutputHistoryEmpty(t *testing.T) {
	h := NewOutputHistory(4)
	if _, ok := h.Latest(); ok {
		t.Fatal("expected no latest entry in an empty history")
	}
}
