package world

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MinutesPerDay is the length of the game day in game minutes.
const MinutesPerDay = 24 * 60

// State is the single shared mutable world structure: the character
// registry, the map registry, and the game clock.
//
// mu guards registry membership and the clock. Character field values
// are mutated only inside Exclusive, which the simulation wraps around
// each tree execution; goroutines outside the simulation read them
// through CharacterSnapshots.
type State struct {
	mu         sync.RWMutex
	simMu      sync.Mutex // serializes character field writes with snapshot reads
	characters map[int64]*Character
	order      []int64 // registration order; iteration over characters is deterministic
	maps       map[int]*GameMap
	gameTime   int // minutes since midnight, [0, MinutesPerDay)
	playerID   int64
}

// NewState creates an empty world state.
func NewState() *State {
	return &State{
		characters: make(map[int64]*Character),
		maps:       make(map[int]*GameMap),
	}
}

// AddCharacter registers a character. A character without a UUID is
// assigned one. Re-adding an existing id replaces the record in place
// without changing its position in the iteration order.
func (s *State) AddCharacter(c *Character) {
	if c == nil {
		return
	}
	if c.UUID == "" {
		c.UUID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.characters[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.characters[c.ID] = c
}

// RemoveCharacter deletes a character by id. Returns false if absent.
func (s *State) RemoveCharacter(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.characters[id]; !ok {
		return false
	}
	delete(s.characters, id)
	for i, cid := range s.order {
		if cid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// CharacterByID returns the character with the given id, or nil.
func (s *State) CharacterByID(id int64) *Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.characters[id]
}

// Characters returns all characters in registration order.
func (s *State) Characters() []*Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Character, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.characters[id])
	}
	return out
}

// Exclusive runs fn while holding the character mutation lock. Tree
// execution happens inside it, so everything a single tick reads and
// writes is consistent from the point of view of CharacterSnapshots.
func (s *State) Exclusive(fn func()) {
	s.simMu.Lock()
	defer s.simMu.Unlock()
	fn()
}

// CharacterSnapshots returns value copies of every character in
// registration order, taken under the character mutation lock.
func (s *State) CharacterSnapshots() []Character {
	s.simMu.Lock()
	defer s.simMu.Unlock()
	chars := s.Characters()
	out := make([]Character, 0, len(chars))
	for _, c := range chars {
		out = append(out, *c)
	}
	return out
}

// CharactersOnMap returns the characters on the given map in registration
// order. The order is observable: a threat check later in the same tick
// sees moves made by characters registered earlier.
func (s *State) CharactersOnMap(mapID int) []*Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Character
	for _, id := range s.order {
		if c := s.characters[id]; c != nil && c.MapID == mapID {
			out = append(out, c)
		}
	}
	return out
}

// AddMap registers a map, replacing any map with the same id.
func (s *State) AddMap(m *GameMap) {
	if m == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[m.ID] = m
}

// MapIDs returns the ids of all registered maps in ascending order.
func (s *State) MapIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.maps))
	for id := range s.maps {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// MapByID returns the map with the given id, or nil.
func (s *State) MapByID(id int) *GameMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maps[id]
}

// GameTime returns the game clock in minutes since midnight.
func (s *State) GameTime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameTime
}

// SetGameTime sets the game clock, normalized into [0, MinutesPerDay).
func (s *State) SetGameTime(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameTime = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}

// AdvanceGameTime moves the game clock forward, wrapping at midnight.
func (s *State) AdvanceGameTime(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameTime = ((s.gameTime+minutes)%MinutesPerDay + MinutesPerDay) % MinutesPerDay
}

// SetPlayer designates the player character, which map simulation skips.
func (s *State) SetPlayer(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerID = id
}

// PlayerID returns the designated player character id, 0 if none.
func (s *State) PlayerID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerID
}
