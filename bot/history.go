package bot

import "github.com/strafe-rl/strafe/state"

// HistoricalOutput is one emitted control frame, tagged with the host tick it
// was produced for.
type HistoricalOutput struct {
	Tick     int64
	Controls state.ControlOutput
}

// OutputHistory is a fixed-size circular buffer of the control frames a pilot
// has emitted. The driver reads it back when a tick's decision misses its
// budget and the previous output has to be repeated.
type OutputHistory struct {
	buffer   []HistoricalOutput
	capacity int
	head     int
	size     int
}

// NewOutputHistory creates a history that retains the last capacity outputs.
func NewOutputHistory(capacity int) *OutputHistory {
	if capacity <= 0 {
		capacity = 1
	}
	return &OutputHistory{
		buffer:   make([]HistoricalOutput, capacity),
		capacity: capacity,
	}
}

// Add appends an output, overwriting the oldest entry when full.
func (h *OutputHistory) Add(out HistoricalOutput) {
	h.buffer[h.head] = out
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// Latest returns the most recently added output.
func (h *OutputHistory) Latest() (HistoricalOutput, bool) {
	if h.size == 0 {
		return HistoricalOutput{}, false
	}
	return h.buffer[(h.head-1+h.capacity)%h.capacity], true
}

// Len returns how many outputs are currently retained.
func (h *OutputHistory) Len() int {
	return h.size
}
