package world

// NoLocation marks an absent neighbor link. Location ids start at 1.
const NoLocation = 0

// Direction identifies one of the four cardinal exits of a Location.
type Direction int

const (
	DirNorth Direction = iota
	DirEast
	DirSouth
	DirWest
)

// Directions lists all cardinal directions in north/east/south/west order.
var Directions = [4]Direction{DirNorth, DirEast, DirSouth, DirWest}

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	default:
		return "unknown"
	}
}

// Location is a node in a map's location graph. Each neighbor field holds
// the id of the adjacent location in that direction, or NoLocation.
type Location struct {
	ID    int `json:"id"`
	North int `json:"north,omitempty"`
	East  int `json:"east,omitempty"`
	South int `json:"south,omitempty"`
	West  int `json:"west,omitempty"`
}

// Neighbor returns the location id linked in the given direction, or NoLocation.
func (l *Location) Neighbor(d Direction) int {
	switch d {
	case DirNorth:
		return l.North
	case DirEast:
		return l.East
	case DirSouth:
		return l.South
	case DirWest:
		return l.West
	}
	return NoLocation
}

// IsAdjacent reports whether id is directly linked to this location.
func (l *Location) IsAdjacent(id int) bool {
	if id == NoLocation {
		return false
	}
	return l.North == id || l.East == id || l.South == id || l.West == id
}
