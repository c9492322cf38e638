package ai

// ---- Decorator nodes ----

// Inverter negates the result of its single child. StatusRunning passes
// through unchanged.
type Inverter struct {
	Child Node
}

func (i *Inverter) Tick(ctx *Context) Status {
	switch i.Child.Tick(ctx) {
	case StatusSuccess:
		return StatusFailure
	case StatusFailure:
		return StatusSuccess
	default:
		return StatusRunning
	}
}

func (i *Inverter) Reset() {
	i.Child.Reset()
}

// Repeater re-runs its child until it has succeeded maxIterations times,
// then reports StatusSuccess. While the budget lasts the repeater itself
// always looks in progress to its parent: each child success resets the
// child and returns StatusRunning. A child failure is terminal regardless
// of remaining budget. maxIterations = -1 repeats forever.
type Repeater struct {
	Child         Node
	MaxIterations int

	iterations int
}

// NewRepeater creates a Repeater with the given iteration budget.
func NewRepeater(child Node, maxIterations int) *Repeater {
	return &Repeater{Child: child, MaxIterations: maxIterations}
}

func (r *Repeater) Tick(ctx *Context) Status {
	if r.MaxIterations >= 0 && r.iterations >= r.MaxIterations {
		return StatusSuccess
	}
	switch r.Child.Tick(ctx) {
	case StatusRunning:
		return StatusRunning
	case StatusFailure:
		return StatusFailure
	default:
		r.iterations++
		r.Child.Reset()
		return StatusRunning
	}
}

func (r *Repeater) Reset() {
	r.iterations = 0
	r.Child.Reset()
}
