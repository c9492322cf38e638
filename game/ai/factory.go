package ai

import "github.com/AustinHoover/adventure-game-test-sub001/game/world"

// Tree factories assemble the stock behaviors the registry serves as
// templates. Tree ids are the values characters carry in BehaviorTreeID.
// Roots are ticked again by the scheduler after a terminal status, so
// the factories do not wrap them in repeaters.

// Stock tree ids.
const (
	TreeWander     = "wander"
	TreeGuard      = "guard"
	TreeShopkeeper = "shopkeeper"
	TreePatrol     = "patrol"
)

// NewWanderTree drifts randomly, pausing between moves.
func NewWanderTree(cooldown int64, rng Source) *Tree {
	return NewTree(NewSequence(
		&RandomWander{Cooldown: cooldown, Rand: rng},
		&Wait{Duration: cooldown},
	))
}

// NewGuardTree paces laterally and confronts anything that gets close.
func NewGuardTree(cooldown int64, maxPathLength int, rng Source) *Tree {
	return NewTree(NewSelector(
		NewSequence(
			&IsThreatDetected{},
			&InvestigateThreat{MaxPathLength: maxPathLength, Cooldown: cooldown},
		),
		&GuardMovement{Cooldown: cooldown, Rand: rng},
	))
}

// NewShopkeeperTree walks to the shop location, opens during shop hours,
// and idles otherwise.
func NewShopkeeperTree(shopLocation int, cooldown int64, maxPathLength int) *Tree {
	return NewTree(NewSelector(
		NewSequence(
			&IsShopOpen{},
			&MoveToLocation{TargetID: shopLocation, MaxPathLength: maxPathLength, Cooldown: cooldown},
			&OpenShop{},
		),
		&Wait{Duration: cooldown},
	))
}

// NewPatrolTree cycles through the given waypoints, one per tick.
func NewPatrolTree(points []int, cooldown int64) *Tree {
	return NewTree(&Patrol{Points: points, Cooldown: cooldown})
}

// NewPatrolRouteTree builds a patrol out of fixed per-leg direction
// moves, one leg per consecutive waypoint pair, wrapping at the end.
func NewPatrolRouteTree(points []int, cooldown int64) *Tree {
	seq := NewSequence()
	for i := range points {
		from := points[i]
		to := points[(i+1)%len(points)]
		seq.AddChild(&MoveDirection{Dir: directionBetween(from, to), Cooldown: cooldown})
	}
	return NewTree(seq)
}

// directionBetween answers the direction leading from one location to
// another. It does not consult the map graph and always answers north.
// TODO: resolve the direction from the location's neighbor links; routes
// built from it only work on north-linked corridors.
func directionBetween(from, to int) world.Direction {
	return world.DirNorth
}
