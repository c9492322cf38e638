package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AustinHoover/adventure-game-test-sub001/game/world"
	"github.com/AustinHoover/adventure-game-test-sub001/testutil"
)

func TestFindPath_Adjacent(t *testing.T) {
	m := testutil.SquareMap(t, 1)
	assert.Equal(t, []int{2}, FindPath(m, 1, 2, 8))
}

func TestFindPath_Diagonal(t *testing.T) {
	m := testutil.SquareMap(t, 1)
	p := FindPath(m, 1, 4, 8)
	require.Len(t, p, 2, "shortest route across the square is two hops")
	assert.Equal(t, 4, p[1])
	assert.Contains(t, []int{2, 3}, p[0])
}

func TestFindPath_SameLocation(t *testing.T) {
	m := testutil.SquareMap(t, 1)
	p := FindPath(m, 3, 3, 8)
	require.NotNil(t, p)
	assert.Empty(t, p)
}

func TestFindPath_BoundBelowShortestDistance(t *testing.T) {
	m := testutil.SquareMap(t, 1)
	assert.Nil(t, FindPath(m, 1, 4, 1))
}

func TestFindPath_IsolatedTarget(t *testing.T) {
	m := testutil.SquareMap(t, 1)
	m.AddLocation(&world.Location{ID: 5})
	assert.Nil(t, FindPath(m, 1, 5, 8))
}

func TestFindPath_UnknownLocations(t *testing.T) {
	m := testutil.SquareMap(t, 1)
	assert.Nil(t, FindPath(m, 1, 99, 8))
	assert.Nil(t, FindPath(m, 99, 1, 8))
	assert.Nil(t, FindPath(nil, 1, 2, 8))
}

func TestMoveToLocation_AlreadyThere(t *testing.T) {
	c := testutil.Char(1, 1, 3)
	ws := testutil.SetupWorld(t, 1, c)
	n := &MoveToLocation{TargetID: 3, MaxPathLength: 8, Cooldown: 1000}

	assert.Equal(t, StatusSuccess, n.Tick(testCtx(ws, 1, 0)))
	assert.Equal(t, 3, c.Location)
}

func TestMoveToLocation_AdjacentOneStep(t *testing.T) {
	c := testutil.Char(1, 1, 1)
	ws := testutil.SetupWorld(t, 1, c)
	n := &MoveToLocation{TargetID: 2, MaxPathLength: 8, Cooldown: 1000}

	assert.Equal(t, StatusSuccess, n.Tick(testCtx(ws, 1, 1000)))
	assert.Equal(t, 2, c.Location)
}

func TestMoveToLocation_TwoHops(t *testing.T) {
	c := testutil.Char(1, 1, 1)
	ws := testutil.SetupWorld(t, 1, c)
	n := &MoveToLocation{TargetID: 4, MaxPathLength: 8, Cooldown: 1000}

	require.Equal(t, StatusRunning, n.Tick(testCtx(ws, 1, 1000)))
	assert.Contains(t, []int{2, 3}, c.Location)

	// Inside the cooldown window nothing moves.
	require.Equal(t, StatusRunning, n.Tick(testCtx(ws, 1, 1500)))

	require.Equal(t, StatusSuccess, n.Tick(testCtx(ws, 1, 2000)))
	assert.Equal(t, 4, c.Location)
}

func TestMoveToLocation_BoundTooSmall(t *testing.T) {
	c := testutil.Char(1, 1, 1)
	ws := testutil.SetupWorld(t, 1, c)
	n := &MoveToLocation{TargetID: 4, MaxPathLength: 1, Cooldown: 0}

	assert.Equal(t, StatusFailure, n.Tick(testCtx(ws, 1, 0)))
	assert.Equal(t, 1, c.Location)
}

func TestMoveToLocation_IsolatedTarget(t *testing.T) {
	c := testutil.Char(1, 1, 1)
	s := world.NewState()
	m := testutil.SquareMap(t, 1)
	m.AddLocation(&world.Location{ID: 5})
	s.AddMap(m)
	s.AddCharacter(c)

	n := &MoveToLocation{TargetID: 5, MaxPathLength: 8, Cooldown: 0}
	assert.Equal(t, StatusFailure, n.Tick(testCtx(s, 1, 0)))
}

func TestMoveToLocation_BrokenPathIsDiscarded(t *testing.T) {
	c := testutil.Char(1, 1, 1)
	s := world.NewState()
	m := world.NewGameMap(1,
		&world.Location{ID: 1, East: 2},
		&world.Location{ID: 2, West: 1, East: 3},
		&world.Location{ID: 3, West: 2},
	)
	s.AddMap(m)
	s.AddCharacter(c)

	n := &MoveToLocation{TargetID: 3, MaxPathLength: 8, Cooldown: 1000}
	require.Equal(t, StatusRunning, n.Tick(testCtx(s, 1, 1000)))
	require.Equal(t, 2, c.Location)

	// The map changes underneath the cached path: 2 no longer links to 3.
	m.Location(2).East = world.NoLocation
	assert.Equal(t, StatusRunning, n.Tick(testCtx(s, 1, 2000)),
		"broken hop is discarded, not walked")
	assert.Equal(t, 2, c.Location)

	// Relink and the next tick recomputes and finishes.
	m.Location(2).East = 3
	assert.Equal(t, StatusSuccess, n.Tick(testCtx(s, 1, 3000)))
	assert.Equal(t, 3, c.Location)
}

func TestMoveToLocation_Reset(t *testing.T) {
	c := testutil.Char(1, 1, 1)
	ws := testutil.SetupWorld(t, 1, c)
	n := &MoveToLocation{TargetID: 4, MaxPathLength: 8, Cooldown: 1000}

	// First tick takes the first hop toward the far corner.
	require.Equal(t, StatusRunning, n.Tick(testCtx(ws, 1, 1000)))
	require.NotEqual(t, 1, c.Location)

	// At the same instant the walker is still cooldown-gated.
	require.Equal(t, StatusRunning, n.Tick(testCtx(ws, 1, 1000)))
	require.NotEqual(t, 4, c.Location)

	n.Reset()

	// Reset cleared the timer, so the same instant permits the final hop.
	assert.Equal(t, StatusSuccess, n.Tick(testCtx(ws, 1, 1000)))
	assert.Equal(t, 4, c.Location)
}

func TestInvestigateThreat_WalksToNearestCharacter(t *testing.T) {
	guard := testutil.Char(1, 1, 1)
	intruder := testutil.Char(2, 1, 4)
	ws := testutil.SetupWorld(t, 1, guard, intruder)
	n := &InvestigateThreat{MaxPathLength: 8, Cooldown: 1000}

	require.Equal(t, StatusRunning, n.Tick(testCtx(ws, 1, 1000)))
	require.Equal(t, StatusSuccess, n.Tick(testCtx(ws, 1, 2000)))
	assert.Equal(t, 4, guard.Location)
}

func TestInvestigateThreat_AtThreatLocation(t *testing.T) {
	ws := testutil.SetupWorld(t, 1, testutil.Char(1, 1, 2), testutil.Char(2, 1, 2))
	n := &InvestigateThreat{MaxPathLength: 8, Cooldown: 0}
	assert.Equal(t, StatusSuccess, n.Tick(testCtx(ws, 1, 0)))
}

func TestInvestigateThreat_NobodyElse(t *testing.T) {
	ws := testutil.SetupWorld(t, 1, testutil.Char(1, 1, 1))
	n := &InvestigateThreat{MaxPathLength: 8, Cooldown: 0}
	assert.Equal(t, StatusFailure, n.Tick(testCtx(ws, 1, 0)))
}
