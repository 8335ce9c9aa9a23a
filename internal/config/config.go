package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Search   SearchConfig
	World    WorldConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings for the board library.
type DatabaseConfig struct {
	Path string
}

// SearchConfig holds the default resource ceilings passed to the solver.
type SearchConfig struct {
	MaxDuration time.Duration `mapstructure:"max_duration"`
	MaxNodes    int           `mapstructure:"max_nodes"`
	MaxDepth    int           `mapstructure:"max_depth"`
}

// WorldConfig holds initial grid settings.
type WorldConfig struct {
	GridSize        int     `mapstructure:"grid_size"`
	DirtProbability float64 `mapstructure:"dirt_probability"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TickMs      int `mapstructure:"tick_ms"`
	AnimationMs int `mapstructure:"animation_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix VACUUM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "vacuumworld", "boards.db"))
	v.SetDefault("search.max_duration", "30s")
	v.SetDefault("search.max_nodes", 1_000_000)
	v.SetDefault("search.max_depth", 100)
	v.SetDefault("world.grid_size", 5)
	v.SetDefault("world.dirt_probability", 0.3)
	v.SetDefault("ui.tick_ms", 100)
	v.SetDefault("ui.animation_ms", 200)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VACUUM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vacuumworld"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VACUUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
