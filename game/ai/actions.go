package ai

import "github.com/AustinHoover/adventure-game-test-sub001/game/world"

// Action leaves are the only place world state is mutated. Movement
// actions share one idiom: resolve the character, its map, and its
// location (StatusFailure if any is missing), pick a target, and only
// mutate the character's location once the cooldown window has elapsed;
// inside the window they return StatusRunning without mutating anything.

// MoveDirection moves the character one step in a fixed direction.
type MoveDirection struct {
	Dir      world.Direction
	Cooldown int64 // ms

	lastActionTime int64
}

func (n *MoveDirection) Tick(ctx *Context) Status {
	c, _, loc := ctx.locate()
	if loc == nil {
		return StatusFailure
	}
	target := loc.Neighbor(n.Dir)
	if target == world.NoLocation {
		return StatusFailure
	}
	if ctx.Now-n.lastActionTime < n.Cooldown {
		return StatusRunning
	}
	c.Location = target
	n.lastActionTime = ctx.Now
	return StatusSuccess
}

func (n *MoveDirection) Reset() {
	n.lastActionTime = 0
}

// Wait blocks for Duration. The first tick starts the timer and returns
// StatusRunning; once the duration has elapsed it returns StatusSuccess
// and arms itself for a fresh wait.
type Wait struct {
	Duration int64 // ms

	waiting   bool
	startTime int64
}

func (n *Wait) Tick(ctx *Context) Status {
	if !n.waiting {
		n.waiting = true
		n.startTime = ctx.Now
		return StatusRunning
	}
	if ctx.Now-n.startTime >= n.Duration {
		n.waiting = false
		return StatusSuccess
	}
	return StatusRunning
}

func (n *Wait) Reset() {
	n.waiting = false
	n.startTime = 0
}

// Patrol cycles through a fixed ordered list of location ids. Standing on
// the current target advances the cursor and succeeds. An adjacent target
// is stepped onto (cooldown permitting) and succeeds. A target further
// away reports StatusRunning; patrol does not re-plan around it.
type Patrol struct {
	Points   []int
	Cooldown int64 // ms

	idx            int
	lastActionTime int64
}

func (n *Patrol) Tick(ctx *Context) Status {
	if len(n.Points) == 0 {
		return StatusFailure
	}
	c, _, loc := ctx.locate()
	if loc == nil {
		return StatusFailure
	}
	target := n.Points[n.idx]
	if c.Location == target {
		n.idx = (n.idx + 1) % len(n.Points)
		return StatusSuccess
	}
	if !loc.IsAdjacent(target) {
		return StatusRunning
	}
	if ctx.Now-n.lastActionTime < n.Cooldown {
		return StatusRunning
	}
	c.Location = target
	n.lastActionTime = ctx.Now
	return StatusSuccess
}

func (n *Patrol) Reset() {
	n.idx = 0
	n.lastActionTime = 0
}

// RandomWander moves one step in a uniformly chosen available direction.
// Fails only when the current location has no exits at all.
type RandomWander struct {
	Cooldown int64 // ms
	Rand     Source

	lastActionTime int64
}

func (n *RandomWander) Tick(ctx *Context) Status {
	c, _, loc := ctx.locate()
	if loc == nil {
		return StatusFailure
	}
	var targets []int
	for _, d := range world.Directions {
		if t := loc.Neighbor(d); t != world.NoLocation {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		return StatusFailure
	}
	if ctx.Now-n.lastActionTime < n.Cooldown {
		return StatusRunning
	}
	c.Location = targets[n.Rand.Intn(len(targets))]
	n.lastActionTime = ctx.Now
	return StatusSuccess
}

func (n *RandomWander) Reset() {
	n.lastActionTime = 0
}

// GuardMovement paces like RandomWander but prefers lateral movement:
// west/east exits are used when present, north/south only as a fallback.
type GuardMovement struct {
	Cooldown int64 // ms
	Rand     Source

	lastActionTime int64
}

func (n *GuardMovement) Tick(ctx *Context) Status {
	c, _, loc := ctx.locate()
	if loc == nil {
		return StatusFailure
	}
	var targets []int
	for _, d := range [2]world.Direction{world.DirWest, world.DirEast} {
		if t := loc.Neighbor(d); t != world.NoLocation {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		for _, d := range [2]world.Direction{world.DirNorth, world.DirSouth} {
			if t := loc.Neighbor(d); t != world.NoLocation {
				targets = append(targets, t)
			}
		}
	}
	if len(targets) == 0 {
		return StatusFailure
	}
	if ctx.Now-n.lastActionTime < n.Cooldown {
		return StatusRunning
	}
	c.Location = targets[n.Rand.Intn(len(targets))]
	n.lastActionTime = ctx.Now
	return StatusSuccess
}

func (n *GuardMovement) Reset() {
	n.lastActionTime = 0
}

// OpenShop marks the character's shop as open and records the game time.
// Fails when the character is missing or has no shop pools to sell from.
// Opening an already-open shop succeeds without changing the opening time.
type OpenShop struct{}

func (n *OpenShop) Tick(ctx *Context) Status {
	c := ctx.character()
	if c == nil {
		return StatusFailure
	}
	if !c.HasShop() {
		return StatusFailure
	}
	if !c.ShopOpen {
		c.ShopOpen = true
		c.ShopOpenedAt = ctx.World.GameTime()
	}
	return StatusSuccess
}

func (n *OpenShop) Reset() {}
