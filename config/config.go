package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	World  WorldConfig  `mapstructure:"world"`
	AI     AIConfig     `mapstructure:"ai"`
}

type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Debug    bool   `mapstructure:"debug"`
	AdminKey string `mapstructure:"admin_key"`
}

type WorldConfig struct {
	Path string `mapstructure:"path"` // world definition JSON

	// Game clock: how many game minutes pass per real tick, and how
	// often the clock ticks.
	ClockTick        time.Duration `mapstructure:"clock_tick"`
	MinutesPerTick   int           `mapstructure:"minutes_per_tick"`
	SimulateInterval time.Duration `mapstructure:"simulate_interval"` // per-map registry simulation cadence
}

type AIConfig struct {
	UpdateInterval time.Duration `mapstructure:"update_interval"` // controller tick interval
	MoveCooldown   time.Duration `mapstructure:"move_cooldown"`   // between movement actions
	MaxPathLength  int           `mapstructure:"max_path_length"` // BFS hop bound
	RandomSeed     int64         `mapstructure:"random_seed"`     // 0 = seed from wall clock
}

// Load reads config from the given YAML file path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("world.path", "./data/world.json")
	v.SetDefault("world.clock_tick", "1s")
	v.SetDefault("world.minutes_per_tick", 1)
	v.SetDefault("world.simulate_interval", "500ms")
	v.SetDefault("ai.update_interval", "100ms")
	v.SetDefault("ai.move_cooldown", "1s")
	v.SetDefault("ai.max_path_length", 32)
	v.SetDefault("ai.random_seed", 0)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
