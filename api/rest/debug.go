package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AustinHoover/adventure-game-test-sub001/game/ai"
	"github.com/AustinHoover/adventure-game-test-sub001/game/world"
)

// DebugHandler exposes the simulation's internals over REST for local
// inspection. Routes should be protected by AdminAuth middleware.
type DebugHandler struct {
	state    *world.State
	ctrl     *ai.Controller
	registry *ai.Registry
	logger   *zap.Logger
}

// NewDebugHandler creates a DebugHandler.
func NewDebugHandler(state *world.State, ctrl *ai.Controller, registry *ai.Registry, logger *zap.Logger) *DebugHandler {
	return &DebugHandler{state: state, ctrl: ctrl, registry: registry, logger: logger}
}

// Register wires the debug routes onto the given router group.
func (h *DebugHandler) Register(g *gin.RouterGroup) {
	g.GET("/status", h.Status)
	g.GET("/characters", h.ListCharacters)
	g.POST("/controller/start", h.StartController)
	g.POST("/controller/stop", h.StopController)
	g.PUT("/controller/interval", h.SetInterval)
	g.POST("/simulate/:mapId", h.SimulateMap)
}

// Status returns controller and world clock state.
// GET /api/debug/status
func (h *DebugHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"running":     h.ctrl.IsRunning(),
		"interval_ms": h.ctrl.UpdateInterval().Milliseconds(),
		"characters":  len(h.ctrl.CharacterIDs()),
		"game_time":   h.state.GameTime(),
		"trees":       h.registry.TreeIDs(),
	})
}

// ListCharacters returns a snapshot of all characters.
// GET /api/debug/characters
func (h *DebugHandler) ListCharacters(c *gin.Context) {
	type charInfo struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		MapID    int    `json:"map_id"`
		Location int    `json:"location"`
		TreeID   string `json:"tree_id,omitempty"`
		ShopOpen bool   `json:"shop_open"`
	}
	chars := h.state.CharacterSnapshots()
	result := make([]charInfo, 0, len(chars))
	for _, ch := range chars {
		result = append(result, charInfo{
			ID:       ch.ID,
			Name:     ch.Name,
			MapID:    ch.MapID,
			Location: ch.Location,
			TreeID:   ch.BehaviorTreeID,
			ShopOpen: ch.ShopOpen,
		})
	}
	c.JSON(http.StatusOK, gin.H{"characters": result, "count": len(result)})
}

// StartController starts the AI tick loop.
// POST /api/debug/controller/start
func (h *DebugHandler) StartController(c *gin.Context) {
	h.ctrl.Start()
	c.JSON(http.StatusOK, gin.H{"running": h.ctrl.IsRunning()})
}

// StopController stops the AI tick loop.
// POST /api/debug/controller/stop
func (h *DebugHandler) StopController(c *gin.Context) {
	h.ctrl.Stop()
	c.JSON(http.StatusOK, gin.H{"running": h.ctrl.IsRunning()})
}

// SetInterval reconfigures the controller tick interval.
// PUT /api/debug/controller/interval  {"interval_ms": 250}
func (h *DebugHandler) SetInterval(c *gin.Context) {
	var req struct {
		IntervalMs int64 `json:"interval_ms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IntervalMs <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interval_ms must be a positive integer"})
		return
	}
	h.ctrl.SetUpdateInterval(time.Duration(req.IntervalMs) * time.Millisecond)
	h.logger.Info("controller interval changed", zap.Int64("interval_ms", req.IntervalMs))
	c.JSON(http.StatusOK, gin.H{
		"running":     h.ctrl.IsRunning(),
		"interval_ms": h.ctrl.UpdateInterval().Milliseconds(),
	})
}

// SimulateMap runs one registry simulation tick for every eligible
// character on a map.
// POST /api/debug/simulate/:mapId
func (h *DebugHandler) SimulateMap(c *gin.Context) {
	mapID, err := strconv.Atoi(c.Param("mapId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid map id"})
		return
	}
	if h.state.MapByID(mapID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
		return
	}
	h.registry.SimulateCharactersOnMap(mapID, h.state, h.state.GameTime())
	c.JSON(http.StatusOK, gin.H{"ok": true, "map_id": mapID, "game_time": h.state.GameTime()})
}

// AdminAuth returns a middleware that checks the X-Admin-Key header.
// WARNING: if adminKey is empty all debug endpoints are disabled (503) so
// the server cannot be accidentally deployed without protection. Set a
// non-empty server.admin_key in config to enable debug routes.
func AdminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": "debug endpoints disabled: set server.admin_key in config"})
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if key != adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
