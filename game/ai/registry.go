package ai

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Registry maps symbolic tree ids to reusable Tree templates and knows
// how to simulate every eligible character on a map for one game tick.
//
// Registries are plain constructed objects; whoever owns the simulation
// loop owns its registry.
type Registry struct {
	mu     sync.RWMutex
	trees  map[string]*Tree
	warnRL *rate.Limiter // caps unregistered-tree warnings under repeated ticks
	logger *zap.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		trees:  make(map[string]*Tree),
		warnRL: rate.NewLimiter(rate.Every(time.Second), 5),
		logger: logger,
	}
}

// RegisterTree stores a tree template under the given id, replacing any
// existing template.
func (r *Registry) RegisterTree(id string, t *Tree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees[id] = t
}

// Tree returns the template registered under id.
func (r *Registry) Tree(id string) (*Tree, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trees[id]
	return t, ok
}

// RemoveTree deletes a template. Returns false if no such id exists.
func (r *Registry) RemoveTree(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trees[id]; !ok {
		return false
	}
	delete(r.trees, id)
	return true
}

// TreeIDs returns the registered template ids, in no particular order.
func (r *Registry) TreeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.trees))
	for id := range r.trees {
		ids = append(ids, id)
	}
	return ids
}

// Clear removes every registered template.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees = make(map[string]*Tree)
}

// SimulateCharactersOnMap runs one game tick for every character on the
// map that has an assigned tree id and is not the player. The
// minute-resolution game clock is converted to the millisecond clock the
// trees expect. A character whose tree id is not registered is skipped
// with a warning; Failure and Running results are reported, not raised.
func (r *Registry) SimulateCharactersOnMap(mapID int, ws WorldState, gameTimeMinutes int) {
	if ws == nil {
		return
	}
	now := int64(gameTimeMinutes) * 60_000
	playerID := ws.PlayerID()

	for _, c := range ws.CharactersOnMap(mapID) {
		if c.ID == playerID || c.BehaviorTreeID == "" {
			continue
		}
		t, ok := r.Tree(c.BehaviorTreeID)
		if !ok {
			if r.warnRL.Allow() {
				r.logger.Warn("no behavior tree registered for character",
					zap.Int64("character_id", c.ID),
					zap.String("tree_id", c.BehaviorTreeID))
			}
			continue
		}
		r.simulateOne(c.ID, t, ws, now)
	}
}

func (r *Registry) simulateOne(id int64, t *Tree, ws WorldState, now int64) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("behavior tree panicked during map simulation",
				zap.Int64("character_id", id),
				zap.Any("recover", rec))
		}
	}()
	t.UpdateContext(&Context{CharacterID: id, World: ws, Now: now})
	var st Status
	ws.Exclusive(func() { st = t.Execute() })
	switch st {
	case StatusFailure:
		r.logger.Debug("behavior tree failed", zap.Int64("character_id", id))
	case StatusRunning:
		r.logger.Debug("behavior tree still running", zap.Int64("character_id", id))
	}
}
