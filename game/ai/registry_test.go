package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AustinHoover/adventure-game-test-sub001/game/world"
	"github.com/AustinHoover/adventure-game-test-sub001/testutil"
)

func TestRegistry_RegisterGetRemove(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	tree := NewTree(succeed())
	r.RegisterTree("idle", tree)

	got, ok := r.Tree("idle")
	require.True(t, ok)
	assert.Same(t, tree, got)

	_, ok = r.Tree("nope")
	assert.False(t, ok)

	assert.True(t, r.RemoveTree("idle"))
	assert.False(t, r.RemoveTree("idle"))
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.RegisterTree("a", NewTree(succeed()))
	r.RegisterTree("b", NewTree(succeed()))

	r.Clear()
	assert.Empty(t, r.TreeIDs())
}

func TestSimulateCharactersOnMap_ExecutesAssignedTrees(t *testing.T) {
	walker := testutil.Char(2, 1, 1)
	walker.BehaviorTreeID = "walk-east"
	ws := testutil.SetupWorld(t, 1, walker)

	r := NewRegistry(zap.NewNop())
	r.RegisterTree("walk-east", NewTree(&MoveDirection{Dir: world.DirEast, Cooldown: 0}))

	r.SimulateCharactersOnMap(1, ws, 480)
	assert.Equal(t, 2, walker.Location)
}

func TestSimulateCharactersOnMap_SkipsPlayer(t *testing.T) {
	player := testutil.Char(1, 1, 1)
	player.BehaviorTreeID = "walk-east"
	ws := testutil.SetupWorld(t, 1, player)
	ws.SetPlayer(1)

	r := NewRegistry(zap.NewNop())
	r.RegisterTree("walk-east", NewTree(&MoveDirection{Dir: world.DirEast, Cooldown: 0}))

	r.SimulateCharactersOnMap(1, ws, 480)
	assert.Equal(t, 1, player.Location, "the player character is never simulated")
}

func TestSimulateCharactersOnMap_SkipsUnassignedAndOtherMaps(t *testing.T) {
	unassigned := testutil.Char(2, 1, 1)
	elsewhere := testutil.Char(3, 2, 1)
	elsewhere.BehaviorTreeID = "walk-east"
	ws := testutil.SetupWorld(t, 1, unassigned, elsewhere)

	r := NewRegistry(zap.NewNop())
	r.RegisterTree("walk-east", NewTree(&MoveDirection{Dir: world.DirEast, Cooldown: 0}))

	r.SimulateCharactersOnMap(1, ws, 480)
	assert.Equal(t, 1, unassigned.Location)
	assert.Equal(t, 1, elsewhere.Location)
}

func TestSimulateCharactersOnMap_UnregisteredTreeIsSkippedNotFatal(t *testing.T) {
	orphan := testutil.Char(2, 1, 1)
	orphan.BehaviorTreeID = "missing"
	mover := testutil.Char(3, 1, 1)
	mover.BehaviorTreeID = "walk-east"
	ws := testutil.SetupWorld(t, 1, orphan, mover)

	r := NewRegistry(zap.NewNop())
	r.RegisterTree("walk-east", NewTree(&MoveDirection{Dir: world.DirEast, Cooldown: 0}))

	assert.NotPanics(t, func() { r.SimulateCharactersOnMap(1, ws, 480) })
	assert.Equal(t, 1, orphan.Location)
	assert.Equal(t, 2, mover.Location, "later characters still simulate")
}

func TestSimulateCharactersOnMap_ConvertsMinutesToMilliseconds(t *testing.T) {
	c := testutil.Char(2, 1, 1)
	c.BehaviorTreeID = "probe"
	ws := testutil.SetupWorld(t, 1, c)

	var seen int64
	r := NewRegistry(zap.NewNop())
	r.RegisterTree("probe", NewTree(&ActionNode{Fn: func(ctx *Context) Status {
		seen = ctx.Now
		return StatusSuccess
	}}))

	r.SimulateCharactersOnMap(1, ws, 480)
	assert.Equal(t, int64(480*60_000), seen)
}

func TestSimulateCharactersOnMap_PanicIsIsolated(t *testing.T) {
	bad := testutil.Char(2, 1, 1)
	bad.BehaviorTreeID = "bad"
	good := testutil.Char(3, 1, 1)
	good.BehaviorTreeID = "walk-east"
	ws := testutil.SetupWorld(t, 1, bad, good)

	r := NewRegistry(zap.NewNop())
	r.RegisterTree("bad", NewTree(&ActionNode{Fn: func(*Context) Status { panic("boom") }}))
	r.RegisterTree("walk-east", NewTree(&MoveDirection{Dir: world.DirEast, Cooldown: 0}))

	assert.NotPanics(t, func() { r.SimulateCharactersOnMap(1, ws, 480) })
	assert.Equal(t, 2, good.Location)
}

func TestSimulateCharactersOnMap_RegistrationOrderIsObservable(t *testing.T) {
	// Character 2 moves onto character 3's location earlier in the same
	// tick, so 3's threat check sees it.
	mover := testutil.Char(2, 1, 1)
	mover.BehaviorTreeID = "walk-east"
	sentry := testutil.Char(3, 1, 2)
	sentry.BehaviorTreeID = "sense"
	ws := testutil.SetupWorld(t, 1, mover, sentry)

	r := NewRegistry(zap.NewNop())
	r.RegisterTree("walk-east", NewTree(&MoveDirection{Dir: world.DirEast, Cooldown: 0}))
	sense := NewTree(&IsThreatDetected{})
	r.RegisterTree("sense", sense)

	r.SimulateCharactersOnMap(1, ws, 480)
	assert.Equal(t, StatusSuccess, sense.Status(),
		"the sentry sees the move made earlier in the same tick")
}
