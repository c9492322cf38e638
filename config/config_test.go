package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 9090
  debug: true
  admin_key: secret
world:
  path: ./custom/world.json
  clock_tick: 2s
  minutes_per_tick: 5
ai:
  update_interval: 250ms
  move_cooldown: 750ms
  max_path_length: 16
  random_seed: 42
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "secret", cfg.Server.AdminKey)
	assert.Equal(t, "./custom/world.json", cfg.World.Path)
	assert.Equal(t, 2*time.Second, cfg.World.ClockTick)
	assert.Equal(t, 5, cfg.World.MinutesPerTick)
	assert.Equal(t, 250*time.Millisecond, cfg.AI.UpdateInterval)
	assert.Equal(t, 750*time.Millisecond, cfg.AI.MoveCooldown)
	assert.Equal(t, 16, cfg.AI.MaxPathLength)
	assert.Equal(t, int64(42), cfg.AI.RandomSeed)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  admin_key: secret
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, "./data/world.json", cfg.World.Path)
	assert.Equal(t, time.Second, cfg.World.ClockTick)
	assert.Equal(t, 1, cfg.World.MinutesPerTick)
	assert.Equal(t, 500*time.Millisecond, cfg.World.SimulateInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.AI.UpdateInterval)
	assert.Equal(t, 32, cfg.AI.MaxPathLength)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
