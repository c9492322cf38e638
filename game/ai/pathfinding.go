package ai

import "github.com/AustinHoover/adventure-game-test-sub001/game/world"

// FindPath computes the shortest path by hop count from `from` to `to`
// over the map's four-directional location graph, breadth first. Paths
// longer than maxLen hops are not explored. The returned path excludes
// the start and includes the target; nil means unreachable within the
// bound.
func FindPath(m *world.GameMap, from, to, maxLen int) []int {
	if m == nil || m.Location(from) == nil || m.Location(to) == nil {
		return nil
	}
	if from == to {
		return []int{}
	}

	type visit struct {
		parent int
		depth  int
	}
	visited := map[int]visit{from: {parent: world.NoLocation, depth: 0}}
	queue := []int{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		depth := visited[cur].depth
		if depth >= maxLen {
			continue
		}
		loc := m.Location(cur)
		for _, d := range world.Directions {
			next := loc.Neighbor(d)
			if next == world.NoLocation || m.Location(next) == nil {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = visit{parent: cur, depth: depth + 1}
			if next == to {
				path := make([]int, 0, depth+1)
				for at := to; at != from; at = visited[at].parent {
					path = append(path, at)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// pathWalker owns a cached path and steps a character along it one hop
// per cooldown window. The cache is discarded the moment the next hop is
// no longer adjacent to the character's position, so the caller's next
// tick recomputes against the changed map.
type pathWalker struct {
	path           []int
	idx            int
	lastActionTime int64
}

func (w *pathWalker) reset() {
	w.path = nil
	w.idx = 0
	w.lastActionTime = 0
}

// step advances the character toward target. It reports StatusSuccess on
// arrival, StatusFailure when no path exists within maxLen, and
// StatusRunning while hops remain or the cooldown window is open.
func (w *pathWalker) step(ctx *Context, c *world.Character, m *world.GameMap, target, maxLen int, cooldown int64) Status {
	if c.Location == target {
		w.path = nil
		w.idx = 0
		return StatusSuccess
	}
	if w.path == nil || w.idx >= len(w.path) {
		w.path = FindPath(m, c.Location, target, maxLen)
		w.idx = 0
		if w.path == nil {
			return StatusFailure
		}
	}

	next := w.path[w.idx]
	if !m.Adjacent(c.Location, next) {
		// Map changed underneath the cached path.
		w.path = nil
		w.idx = 0
		return StatusRunning
	}
	if ctx.Now-w.lastActionTime < cooldown {
		return StatusRunning
	}
	c.Location = next
	w.idx++
	w.lastActionTime = ctx.Now
	if c.Location == target {
		w.path = nil
		w.idx = 0
		return StatusSuccess
	}
	return StatusRunning
}

// MoveToLocation walks the character to a fixed target location via
// bounded breadth-first search, one hop per cooldown window.
type MoveToLocation struct {
	TargetID      int
	MaxPathLength int
	Cooldown      int64 // ms

	walker pathWalker
}

func (n *MoveToLocation) Tick(ctx *Context) Status {
	c, m, loc := ctx.locate()
	if loc == nil {
		return StatusFailure
	}
	return n.walker.step(ctx, c, m, n.TargetID, n.MaxPathLength, n.Cooldown)
}

func (n *MoveToLocation) Reset() {
	n.walker.reset()
}

// InvestigateThreat walks the character toward the nearest other
// character on its map. Standing on the threat's location succeeds; no
// other character on the map is a failure.
type InvestigateThreat struct {
	MaxPathLength int
	Cooldown      int64 // ms

	walker pathWalker
}

func (n *InvestigateThreat) Tick(ctx *Context) Status {
	c, m, loc := ctx.locate()
	if loc == nil {
		return StatusFailure
	}

	// Nearest by hop count; registration order breaks ties.
	var target *world.Character
	best := -1
	for _, other := range ctx.World.CharactersOnMap(c.MapID) {
		if other.ID == c.ID {
			continue
		}
		if other.Location == c.Location {
			return StatusSuccess
		}
		p := FindPath(m, c.Location, other.Location, n.MaxPathLength)
		if p == nil {
			continue
		}
		if best < 0 || len(p) < best {
			best = len(p)
			target = other
		}
	}
	if target == nil {
		return StatusFailure
	}
	return n.walker.step(ctx, c, m, target.Location, n.MaxPathLength, n.Cooldown)
}

func (n *InvestigateThreat) Reset() {
	n.walker.reset()
}
