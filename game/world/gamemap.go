package world

// GameMap is a set of locations linked into a four-directional graph.
type GameMap struct {
	ID        int         `json:"id"`
	Locations []*Location `json:"locations"`

	index map[int]*Location
}

// NewGameMap creates a GameMap and indexes the given locations by id.
func NewGameMap(id int, locations ...*Location) *GameMap {
	m := &GameMap{ID: id}
	for _, loc := range locations {
		m.AddLocation(loc)
	}
	return m
}

// AddLocation appends a location and indexes it by id.
// A location with a duplicate id replaces the index entry but not the slice entry.
func (m *GameMap) AddLocation(loc *Location) {
	if loc == nil {
		return
	}
	m.Locations = append(m.Locations, loc)
	if m.index == nil {
		m.index = make(map[int]*Location)
	}
	m.index[loc.ID] = loc
}

// Location returns the location with the given id, or nil.
func (m *GameMap) Location(id int) *Location {
	if m.index == nil {
		m.reindex()
	}
	return m.index[id]
}

// Adjacent reports whether location b is directly linked from location a.
func (m *GameMap) Adjacent(a, b int) bool {
	loc := m.Location(a)
	if loc == nil {
		return false
	}
	return loc.IsAdjacent(b)
}

// reindex rebuilds the id index. Needed after JSON decoding, which fills
// Locations without going through AddLocation.
func (m *GameMap) reindex() {
	m.index = make(map[int]*Location, len(m.Locations))
	for _, loc := range m.Locations {
		if loc != nil {
			m.index[loc.ID] = loc
		}
	}
}
