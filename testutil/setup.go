package testutil

import (
	"testing"

	"github.com/AustinHoover/adventure-game-test-sub001/game/world"
)

// SquareMap builds a four-location map linked in a square:
//
//	1 — 2
//	|   |
//	3 — 4
//
// 1↔2 and 3↔4 are east/west links; 1↔3 and 2↔4 are north/south links
// (north points from the bottom row to the top row).
func SquareMap(t *testing.T, mapID int) *world.GameMap {
	t.Helper()
	return world.NewGameMap(mapID,
		&world.Location{ID: 1, East: 2, South: 3},
		&world.Location{ID: 2, West: 1, South: 4},
		&world.Location{ID: 3, North: 1, East: 4},
		&world.Location{ID: 4, North: 2, West: 3},
	)
}

// SetupWorld creates a State holding a square map and the given
// characters, registered in argument order.
func SetupWorld(t *testing.T, mapID int, chars ...*world.Character) *world.State {
	t.Helper()
	s := world.NewState()
	s.AddMap(SquareMap(t, mapID))
	for _, c := range chars {
		s.AddCharacter(c)
	}
	return s
}

// Char builds a character with sensible defaults for tests.
func Char(id int64, mapID, location int) *world.Character {
	return &world.Character{
		ID:       id,
		Name:     "TestChar",
		MapID:    mapID,
		Location: location,
	}
}
