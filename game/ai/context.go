package ai

import "github.com/AustinHoover/adventure-game-test-sub001/game/world"

// WorldState is the narrow capability the AI layer needs from game state.
// Implemented by *world.State.
type WorldState interface {
	CharacterByID(id int64) *world.Character
	MapByID(id int) *world.GameMap
	CharactersOnMap(mapID int) []*world.Character
	GameTime() int
	PlayerID() int64

	// Exclusive runs fn under the character mutation lock. Schedulers
	// wrap each tree execution in it so snapshot readers on other
	// goroutines never observe a half-applied tick.
	Exclusive(fn func())
}

// Context is the per-tick input bundle passed into every node. It is
// rebuilt by the caller before each tick; nodes must not retain it.
type Context struct {
	CharacterID int64
	World       WorldState
	Now         int64 // milliseconds, monotonic within one simulation run
}

// character resolves the context's character, or nil if absent.
func (ctx *Context) character() *world.Character {
	if ctx.World == nil {
		return nil
	}
	return ctx.World.CharacterByID(ctx.CharacterID)
}

// locate resolves the character, its map, and its current location record.
// Any of the three may be nil; callers convert that to StatusFailure.
func (ctx *Context) locate() (*world.Character, *world.GameMap, *world.Location) {
	c := ctx.character()
	if c == nil {
		return nil, nil, nil
	}
	m := ctx.World.MapByID(c.MapID)
	if m == nil {
		return c, nil, nil
	}
	return c, m, m.Location(c.Location)
}
