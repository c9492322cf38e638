package ai

// Condition leaves only read world state. A missing character, map, or
// location record is an ordinary StatusFailure, never a panic, so that
// selectors and sequences can compose over it.

// Shop opening hours, in hours of the game day. The shop is open in
// [shopOpenHour, shopCloseHour).
const (
	shopOpenHour  = 6
	shopCloseHour = 20
)

// IsAtLocation succeeds when the character stands at LocationID.
type IsAtLocation struct {
	LocationID int
}

func (n *IsAtLocation) Tick(ctx *Context) Status {
	c := ctx.character()
	if c == nil {
		return StatusFailure
	}
	if c.Location == n.LocationID {
		return StatusSuccess
	}
	return StatusFailure
}

func (n *IsAtLocation) Reset() {}

// IsShopOpen succeeds during shop hours, derived from the world clock.
type IsShopOpen struct{}

func (n *IsShopOpen) Tick(ctx *Context) Status {
	if ctx.World == nil {
		return StatusFailure
	}
	hour := ctx.World.GameTime() / 60
	if hour >= shopOpenHour && hour < shopCloseHour {
		return StatusSuccess
	}
	return StatusFailure
}

func (n *IsShopOpen) Reset() {}

// IsThreatDetected succeeds when at least one other character shares the
// character's map and location.
type IsThreatDetected struct{}

func (n *IsThreatDetected) Tick(ctx *Context) Status {
	c := ctx.character()
	if c == nil {
		return StatusFailure
	}
	for _, other := range ctx.World.CharactersOnMap(c.MapID) {
		if other.ID != c.ID && other.Location == c.Location {
			return StatusSuccess
		}
	}
	return StatusFailure
}

func (n *IsThreatDetected) Reset() {}

// TimeElapsed succeeds once per Interval window and fails in between.
// The window restarts on every success.
type TimeElapsed struct {
	Interval int64 // ms

	lastActionTime int64
}

func (n *TimeElapsed) Tick(ctx *Context) Status {
	if ctx.Now-n.lastActionTime >= n.Interval {
		n.lastActionTime = ctx.Now
		return StatusSuccess
	}
	return StatusFailure
}

func (n *TimeElapsed) Reset() {
	n.lastActionTime = 0
}
