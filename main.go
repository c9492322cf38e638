package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apirest "github.com/AustinHoover/adventure-game-test-sub001/api/rest"
	"github.com/AustinHoover/adventure-game-test-sub001/config"
	"github.com/AustinHoover/adventure-game-test-sub001/game/ai"
	"github.com/AustinHoover/adventure-game-test-sub001/game/world"
	mw "github.com/AustinHoover/adventure-game-test-sub001/middleware"
	"github.com/AustinHoover/adventure-game-test-sub001/scheduler"
)

// buildRegistry registers a template for every stock tree id. The
// shopkeeper template needs a shop location, which is taken from the
// first shopkeeper defined in the world.
func buildRegistry(state *world.State, cooldown int64, maxPathLength int, seed int64, logger *zap.Logger) *ai.Registry {
	registry := ai.NewRegistry(logger)
	registry.RegisterTree(ai.TreeWander, ai.NewWanderTree(cooldown, ai.NewSource(seed)))
	registry.RegisterTree(ai.TreeGuard, ai.NewGuardTree(cooldown, maxPathLength, ai.NewSource(seed+1)))
	registry.RegisterTree(ai.TreePatrol, ai.NewPatrolTree([]int{1, 2}, cooldown))
	for _, c := range state.Characters() {
		if c.BehaviorTreeID == ai.TreeShopkeeper {
			registry.RegisterTree(ai.TreeShopkeeper,
				ai.NewShopkeeperTree(c.Location, cooldown, maxPathLength))
			break
		}
	}
	return registry
}

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	if cfg.Server.AdminKey == "" {
		logger.Warn("server.admin_key is not set; debug endpoints are disabled")
	}

	// ---- World ----
	state, err := world.LoadFile(cfg.World.Path)
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	logger.Info("world loaded",
		zap.String("path", cfg.World.Path),
		zap.Int("characters", len(state.Characters())),
		zap.Int("game_time", state.GameTime()))

	// ---- Behavior trees ----
	seed := cfg.AI.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cooldown := cfg.AI.MoveCooldown.Milliseconds()
	registry := buildRegistry(state, cooldown, cfg.AI.MaxPathLength, seed, logger)

	ctrl := ai.NewController(state, logger)
	ctrl.SetUpdateInterval(cfg.AI.UpdateInterval)

	// Characters carrying a tree id tick under the controller; their
	// trees are per-character instances so internal cursors stay private.
	for _, c := range state.Characters() {
		if c.ID == state.PlayerID() || c.BehaviorTreeID == "" {
			continue
		}
		var t *ai.Tree
		switch c.BehaviorTreeID {
		case ai.TreeWander:
			t = ai.NewWanderTree(cooldown, ai.NewSource(seed+c.ID))
		case ai.TreeGuard:
			t = ai.NewGuardTree(cooldown, cfg.AI.MaxPathLength, ai.NewSource(seed+c.ID))
		case ai.TreeShopkeeper:
			t = ai.NewShopkeeperTree(c.Location, cooldown, cfg.AI.MaxPathLength)
		case ai.TreePatrol:
			t = ai.NewPatrolTree([]int{c.Location}, cooldown)
		default:
			logger.Warn("unknown behavior tree id",
				zap.Int64("character_id", c.ID),
				zap.String("tree_id", c.BehaviorTreeID))
			continue
		}
		ctrl.AddCharacter(c.ID, t)
	}
	ctrl.Start()
	defer ctrl.Stop()

	// ---- Game clock ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	sched.Every("game-clock", cfg.World.ClockTick, func() {
		state.AdvanceGameTime(cfg.World.MinutesPerTick)
	})

	// Registry-driven map simulation takes over when the controller loop
	// is stopped (e.g. via the debug API), so characters never tick twice.
	sched.Every("map-simulation", cfg.World.SimulateInterval, func() {
		if ctrl.IsRunning() {
			return
		}
		for _, id := range state.MapIDs() {
			registry.SimulateCharactersOnMap(id, state, state.GameTime())
		}
	})

	// ---- HTTP ----
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger(logger), mw.Recovery(logger))

	debugH := apirest.NewDebugHandler(state, ctrl, registry, logger)
	debugG := r.Group("/api/debug")
	debugG.Use(apirest.AdminAuth(cfg.Server.AdminKey))
	debugH.Register(debugG)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
