package behavior

// Sequence runs its children in order. A child's Done advances to the next
// step within the same tick; a child's Aborted aborts the whole sequence
// without ticking later children.
type Sequence struct {
	name     string
	children []Maneuver
	idx      int
	// active is the delegate currently standing in for children[idx]. It is
	// held apart from the children slice so re-entering the sequence starts
	// from the original child, not a previous run's delegate.
	active Maneuver
}

func NewSequence(name string, children ...Maneuver) *Sequence {
	return &Sequence{name: name, children: children}
}

func (s *Sequence) Name() string {
	return s.name
}

func (s *Sequence) Enter(ctx *Context) {
	s.idx = 0
	s.active = nil
	if len(s.children) > 0 {
		s.children[0].Enter(ctx)
	}
}

func (s *Sequence) Tick(ctx *Context) Step {
	for i := 0; i < maxDelegations; i++ {
		if s.idx >= len(s.children) {
			return Finish()
		}

		current := s.active
		if current == nil {
			current = s.children[s.idx]
		}

		step := current.Tick(ctx)
		if step.Child != nil {
			s.active = step.Child
			step.Child.Enter(ctx)
			continue
		}

		switch step.Status {
		case StatusRunning:
			return step
		case StatusAborted:
			return Abort()
		case StatusDone:
			s.active = nil
			s.idx++
			if s.idx < len(s.children) {
				s.children[s.idx].Enter(ctx)
			}
		}
	}
	return Abort()
}

func (s *Sequence) Interrupt() {
	if s.active != nil {
		s.active.Interrupt()
		s.active = nil
		return
	}
	if s.idx < len(s.children) {
		s.children[s.idx].Interrupt()
	}
}
