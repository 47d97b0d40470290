package behavior

// AbortPredicate re-evaluates an abort condition against the current tick.
type AbortPredicate func(*Context) bool

// AbortIf wraps a child maneuver and forces Aborted the moment its predicate
// triggers, e.g. "abort if the expected hit no longer lands". The predicate
// is re-evaluated every tick before the child runs.
type AbortIf struct {
	pred  AbortPredicate
	child Maneuver
	// active is the child's current delegate; kept apart from child so
	// re-entry starts from the original maneuver.
	active Maneuver
}

func NewAbortIf(pred AbortPredicate, child Maneuver) *AbortIf {
	return &AbortIf{pred: pred, child: child}
}

func (a *AbortIf) Name() string {
	return "AbortIf(" + a.child.Name() + ")"
}

func (a *AbortIf) Enter(ctx *Context) {
	a.active = nil
	a.child.Enter(ctx)
}

func (a *AbortIf) current() Maneuver {
	if a.active != nil {
		return a.active
	}
	return a.child
}

func (a *AbortIf) Tick(ctx *Context) Step {
	if a.pred(ctx) {
		a.current().Interrupt()
		a.active = nil
		return Abort()
	}

	for i := 0; i < maxDelegations; i++ {
		step := a.current().Tick(ctx)
		if step.Child == nil {
			return step
		}
		a.active = step.Child
		a.active.Enter(ctx)
	}
	return Abort()
}

func (a *AbortIf) Interrupt() {
	a.current().Interrupt()
	a.active = nil
}
