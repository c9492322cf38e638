package ai

// Status is the result of a behavior tree node tick.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Node is a single node in a behavior tree.
//
// Tick runs one step of the node's behavior. A node that returns
// StatusRunning keeps enough internal state (timers, cursors, cached
// paths) to resume on the next Tick instead of starting over.
//
// Reset restores the node to its just-constructed state and recursively
// resets any children.
type Node interface {
	Tick(ctx *Context) Status
	Reset()
}

// ---- Function leaves ----

// ConditionNode evaluates a boolean predicate. It never mutates world state.
type ConditionNode struct {
	Fn func(*Context) bool
}

func (cn *ConditionNode) Tick(ctx *Context) Status {
	if cn.Fn(ctx) {
		return StatusSuccess
	}
	return StatusFailure
}

func (cn *ConditionNode) Reset() {}

// ActionNode executes an action function and returns its status.
type ActionNode struct {
	Fn func(*Context) Status
}

func (an *ActionNode) Tick(ctx *Context) Status {
	return an.Fn(ctx)
}

func (an *ActionNode) Reset() {}
