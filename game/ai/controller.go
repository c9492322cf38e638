package ai

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultUpdateInterval is the tick interval a new Controller uses.
const DefaultUpdateInterval = 100 * time.Millisecond

// Controller drives a set of (character, tree) pairs at a fixed interval.
// Trees are usually templates owned by a Registry; the controller only
// holds references. Characters tick in registration order, and one
// character's fault never stops the others in the same cycle.
type Controller struct {
	mu       sync.Mutex
	trees    map[int64]*Tree
	order    []int64
	world    WorldState
	interval time.Duration
	running  bool
	stopCh   chan struct{}
	runID    string
	now      func() int64
	logger   *zap.Logger
}

// NewController creates a stopped Controller over the given world state.
func NewController(ws WorldState, logger *zap.Logger) *Controller {
	return &Controller{
		trees:    make(map[int64]*Tree),
		world:    ws,
		interval: DefaultUpdateInterval,
		now:      func() int64 { return time.Now().UnixMilli() },
		logger:   logger,
	}
}

// SetClock injects the millisecond clock used for tick timestamps.
// Tests use this to drive time deterministically.
func (c *Controller) SetClock(now func() int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// AddCharacter registers a tree for a character, replacing any existing
// one. Registration order fixes the tick order.
func (c *Controller) AddCharacter(id int64, t *Tree) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.trees[id]; !ok {
		c.order = append(c.order, id)
	}
	c.trees[id] = t
}

// RemoveCharacter unregisters a character's tree.
func (c *Controller) RemoveCharacter(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.trees[id]; !ok {
		return
	}
	delete(c.trees, id)
	for i, cid := range c.order {
		if cid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// CharacterBehavior returns the tree registered for a character.
func (c *Controller) CharacterBehavior(id int64) (*Tree, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.trees[id]
	return t, ok
}

// CharacterIDs returns the registered character ids in tick order.
func (c *Controller) CharacterIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int64, len(c.order))
	copy(out, c.order)
	return out
}

// Clear unregisters every character.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trees = make(map[int64]*Tree)
	c.order = nil
}

// Start begins ticking at the configured interval. No-op when already
// running. Each run gets a fresh run id for log correlation.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.runID = uuid.NewString()
	c.stopCh = make(chan struct{})
	stopCh := c.stopCh
	interval := c.interval
	runID := c.runID
	c.mu.Unlock()

	c.logger.Info("ai controller started",
		zap.String("run_id", runID),
		zap.Duration("interval", interval))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Tick(c.clock()())
			case <-stopCh:
				return
			}
		}
	}()
}

// Stop halts further ticks. No-op when already stopped. A tick already in
// progress completes; only future ticks are prevented.
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stopCh)
	runID := c.runID
	c.mu.Unlock()

	c.logger.Info("ai controller stopped", zap.String("run_id", runID))
}

// IsRunning reports whether the tick loop is active.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// UpdateInterval returns the configured tick interval.
func (c *Controller) UpdateInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// SetUpdateInterval changes the tick interval. A running controller is
// restarted in place so the new interval applies immediately.
func (c *Controller) SetUpdateInterval(interval time.Duration) {
	c.mu.Lock()
	c.interval = interval
	restart := c.running
	c.mu.Unlock()
	if restart {
		c.Stop()
		c.Start()
	}
}

// Tick runs one synchronous pass over every registered character: build
// a fresh context, update the tree, execute it. Exported so tests can
// drive ticks without the wall-clock timer. A panic inside one
// character's tree is logged and isolated; a StatusFailure result is
// reported at debug level and is not an error.
func (c *Controller) Tick(now int64) {
	c.mu.Lock()
	ids := make([]int64, len(c.order))
	copy(ids, c.order)
	trees := make(map[int64]*Tree, len(c.trees))
	for id, t := range c.trees {
		trees[id] = t
	}
	world := c.world
	runID := c.runID
	c.mu.Unlock()

	for _, id := range ids {
		t := trees[id]
		if t == nil {
			continue
		}
		c.tickOne(id, t, world, now, runID)
	}
}

func (c *Controller) tickOne(id int64, t *Tree, ws WorldState, now int64, runID string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("behavior tree panicked",
				zap.Int64("character_id", id),
				zap.String("run_id", runID),
				zap.Any("recover", r))
		}
	}()
	t.UpdateContext(&Context{CharacterID: id, World: ws, Now: now})
	st := StatusFailure
	if ws != nil {
		ws.Exclusive(func() { st = t.Execute() })
	} else {
		st = t.Execute()
	}
	if st == StatusFailure {
		c.logger.Debug("behavior tree failed",
			zap.Int64("character_id", id),
			zap.String("run_id", runID))
	}
}

func (c *Controller) clock() func() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
