package ai

// ---- Composite nodes ----
//
// Sequence and Selector keep a resumable cursor: when a child returns
// StatusRunning the cursor stays put, so the next tick resumes at the
// unfinished child instead of re-running completed ones. The cursor goes
// back to 0 whenever the composite produces a terminal result.

// Sequence succeeds only when all children succeed, in order (logical AND).
// An empty sequence succeeds.
type Sequence struct {
	children []Node
	current  int
}

// NewSequence creates a Sequence over the given children.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{children: children}
}

// AddChild appends a child node.
func (s *Sequence) AddChild(n Node) {
	s.children = append(s.children, n)
}

func (s *Sequence) Tick(ctx *Context) Status {
	for s.current < len(s.children) {
		switch s.children[s.current].Tick(ctx) {
		case StatusSuccess:
			s.current++
		case StatusRunning:
			return StatusRunning
		case StatusFailure:
			s.current = 0
			return StatusFailure
		}
	}
	s.current = 0
	return StatusSuccess
}

func (s *Sequence) Reset() {
	s.current = 0
	for _, c := range s.children {
		c.Reset()
	}
}

// Selector succeeds as soon as one child succeeds, tried in order
// (logical OR). An empty selector fails.
type Selector struct {
	children []Node
	current  int
}

// NewSelector creates a Selector over the given children.
func NewSelector(children ...Node) *Selector {
	return &Selector{children: children}
}

// AddChild appends a child node.
func (s *Selector) AddChild(n Node) {
	s.children = append(s.children, n)
}

func (s *Selector) Tick(ctx *Context) Status {
	for s.current < len(s.children) {
		switch s.children[s.current].Tick(ctx) {
		case StatusSuccess:
			s.current = 0
			return StatusSuccess
		case StatusRunning:
			return StatusRunning
		case StatusFailure:
			s.current++
		}
	}
	s.current = 0
	return StatusFailure
}

func (s *Selector) Reset() {
	s.current = 0
	for _, c := range s.children {
		c.Reset()
	}
}

// Parallel ticks every child exactly once per call, with no cursor and no
// short-circuit. It fails only when all children failed this tick,
// succeeds only when all succeeded, and reports StatusRunning otherwise.
type Parallel struct {
	children []Node
}

// NewParallel creates a Parallel over the given children.
func NewParallel(children ...Node) *Parallel {
	return &Parallel{children: children}
}

// AddChild appends a child node.
func (p *Parallel) AddChild(n Node) {
	p.children = append(p.children, n)
}

func (p *Parallel) Tick(ctx *Context) Status {
	successes, failures := 0, 0
	for _, c := range p.children {
		switch c.Tick(ctx) {
		case StatusSuccess:
			successes++
		case StatusFailure:
			failures++
		}
	}
	n := len(p.children)
	switch {
	case n == 0 || successes == n:
		return StatusSuccess
	case failures == n:
		return StatusFailure
	default:
		return StatusRunning
	}
}

func (p *Parallel) Reset() {
	for _, c := range p.children {
		c.Reset()
	}
}
