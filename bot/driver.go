package bot

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/strafe-rl/strafe/behavior"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/serror"
	"github.com/strafe-rl/strafe/state"
	"github.com/strafe-rl/strafe/strategy"
	"github.com/strafe-rl/strafe/worker"
)

// Bridge connects the driver to whatever hosts the match. PullSnapshot blocks
// until the host's next tick; PushControls hands one car's frame back before
// the tick deadline.
type Bridge interface {
	PullSnapshot() (*state.GameSnapshot, error)
	PushControls(carID int, controls state.ControlOutput) error
}

// Options tune the tick driver.
type Options struct {
	// Budget is the wall-clock allowance for one car's decision within a tick.
	// A decision that misses it is truncated: the car repeats its previous
	// output and the late result is discarded when it eventually lands.
	Budget time.Duration
	// HistorySize is how many emitted frames each pilot retains.
	HistorySize int
}

func DefaultOptions() Options {
	return Options{
		Budget:      6 * time.Millisecond,
		HistorySize: 120,
	}
}

// pilot is the per-car decision state: its selector, its output history and,
// when a tick overran, the channel the stale decision will eventually land on.
type pilot struct {
	carID    int
	selector *strategy.Selector
	history  *OutputHistory
	inflight chan state.ControlOutput
	log      *logrus.Entry
}

// Driver owns the tick loop: it pulls one snapshot per tick from the bridge,
// runs every registered pilot's decision under the tick budget and pushes
// exactly one clamped ControlOutput per car back, no matter what the decision
// layer did.
type Driver struct {
	bridge Bridge
	sim    *physics.Simulator
	opts   Options
	log    *logrus.Logger

	pilots []*pilot

	ticks     int64
	truncated int64
}

func NewDriver(bridge Bridge, sim *physics.Simulator, opts Options, log *logrus.Logger) *Driver {
	serror.Assert(bridge != nil, "driver requires a bridge")
	serror.Assert(sim != nil, "driver requires a simulator")
	return &Driver{bridge: bridge, sim: sim, opts: opts, log: log}
}

// AddCar registers a car the driver decides for. Cars are ticked in
// registration order.
func (d *Driver) AddCar(carID int, selOpts strategy.Options) {
	entry := d.log.WithField("car", carID)
	d.pilots = append(d.pilots, &pilot{
		carID:    carID,
		selector: strategy.NewSelector(selOpts, entry),
		history:  NewOutputHistory(d.opts.HistorySize),
		log:      entry,
	})
}

// RunTick executes one full tick: pull, decide, push. It returns an error
// only when the bridge itself fails; decision failures degrade to a repeated
// or neutral output instead.
func (d *Driver) RunTick() error {
	snap, err := d.bridge.PullSnapshot()
	if err != nil {
		return err
	}
	d.ticks++

	for _, p := range d.pilots {
		out := d.decide(p, snap)
		if err := d.bridge.PushControls(p.carID, out.Clamped()); err != nil {
			return err
		}
	}
	return nil
}

// Run ticks until the bridge reports an error.
func (d *Driver) Run() error {
	for {
		if err := d.RunTick(); err != nil {
			return err
		}
	}
}

// TruncatedTicks reports how many decisions have missed the budget so far.
func (d *Driver) TruncatedTicks() int64 {
	return d.truncated
}

// decide produces this tick's output for one car. The decision runs on its
// own goroutine under the tick budget, leaving the worker pool free for the
// fan-out the decision itself issues; on overrun the pilot keeps emitting its
// previous frame until the stale result drains, so decision work for a car is
// never run concurrently with itself.
func (d *Driver) decide(p *pilot, snap *state.GameSnapshot) state.ControlOutput {
	if p.inflight != nil {
		select {
		case <-p.inflight:
			// Stale decision from an overrun tick; discard it.
			p.inflight = nil
		default:
			d.truncated++
			return d.repeatOutput(p, snap.Tick)
		}
	}

	car, ok := snap.Car(p.carID)
	if !ok {
		p.log.Warn("car missing from snapshot")
		return d.repeatOutput(p, snap.Tick)
	}

	done := make(chan state.ControlOutput, 1)
	worker.Detached(func() {
		done <- p.selector.Tick(behavior.NewContext(snap, car, d.sim, p.log))
	})

	timeout := time.NewTimer(d.opts.Budget)
	defer timeout.Stop()

	select {
	case out := <-done:
		p.history.Add(HistoricalOutput{Tick: snap.Tick, Controls: out})
		return out
	case <-timeout.C:
		d.truncated++
		p.inflight = done
		err := serror.New(serror.KindBudgetExceeded, "decision exceeded %s budget", d.opts.Budget)
		p.log.WithError(err).WithField("tick", snap.Tick).Warn("tick truncated")
		return d.repeatOutput(p, snap.Tick)
	}
}

// repeatOutput re-emits the pilot's previous frame, or neutral controls when
// there is none, and records it so the history stays tick-contiguous.
func (d *Driver) repeatOutput(p *pilot, tick int64) state.ControlOutput {
	out := state.ControlOutput{}
	if last, ok := p.history.Latest(); ok {
		out = last.Controls
	}
	p.history.Add(HistoricalOutput{Tick: tick, Controls: out})
	return out
}
