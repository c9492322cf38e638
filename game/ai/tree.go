package ai

// Tree binds one root node to a per-tick context. It is the unit the
// controller and the registry schedule.
type Tree struct {
	root   Node
	ctx    *Context
	status Status
}

// NewTree creates a Tree over the given root node.
func NewTree(root Node) *Tree {
	return &Tree{root: root, status: StatusFailure}
}

// Execute runs one tick of the root node with the current context and
// records the result. A tree without a root or a context fails.
func (t *Tree) Execute() Status {
	if t.root == nil || t.ctx == nil {
		t.status = StatusFailure
		return t.status
	}
	t.status = t.root.Tick(t.ctx)
	return t.status
}

// Reset restores the whole tree to its just-constructed state.
func (t *Tree) Reset() {
	if t.root != nil {
		t.root.Reset()
	}
	t.status = StatusFailure
}

// UpdateContext replaces the stored context wholesale. Callers supply a
// fresh context, with current time and the right character id, before
// every tick.
func (t *Tree) UpdateContext(ctx *Context) {
	t.ctx = ctx
}

// Context returns the context of the most recent tick.
func (t *Tree) Context() *Context {
	return t.ctx
}

// Status returns the result of the most recent Execute.
func (t *Tree) Status() Status {
	return t.status
}
