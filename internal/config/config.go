package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Game        GameConfig        `mapstructure:"game"`
	Batch       BatchConfig       `mapstructure:"batch"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig holds engine limits
type GameConfig struct {
	// MaxCells caps width*height of any created board
	MaxCells int `mapstructure:"max_cells"`
}

// BatchConfig holds batch protocol settings
type BatchConfig struct {
	InteractiveAllowed bool `mapstructure:"interactive_allowed"`
}

// DemoConfig holds random playout settings
type DemoConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Players     int     `mapstructure:"players"`
	Areas       int     `mapstructure:"areas"`
	MaxTurns    int     `mapstructure:"max_turns"`
	Seed        int64   `mapstructure:"seed"`
	GoldenRatio float64 `mapstructure:"golden_ratio"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	LogEvents bool `mapstructure:"log_events"`
}

var (
	// Global config instance
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("game.max_cells", math.MaxInt32)

	v.SetDefault("batch.interactive_allowed", false)

	// Demo defaults
	v.SetDefault("demo.width", 10)
	v.SetDefault("demo.height", 10)
	v.SetDefault("demo.players", 3)
	v.SetDefault("demo.areas", 3)
	v.SetDefault("demo.max_turns", 200)
	v.SetDefault("demo.seed", 0)
	v.SetDefault("demo.golden_ratio", 0.1)

	v.SetDefault("development.log_events", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()

	// Set defaults before loading any config
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		// Default config locations
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/gamma")
	}

	// Set environment variable prefix
	nv.SetEnvPrefix("GAMMA")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A specific file that is missing falls back to defaults, like a missing default file
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := nv.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	v, cfg = nv, c
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the directory of the
// loaded config file (or the working directory) over the current values.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if used := v.ConfigFileUsed(); used != "" {
		envFile = filepath.Join(filepath.Dir(used), envFile)
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	return reload()
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	return reload()
}

// reload re-decodes the viper values into a fresh Config; callers hold mu.
func reload() error {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = c
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return GetViper().GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reload error, if any; an invalid file keeps the previous values.
func WatchConfig(onChange func(*Config, error)) {
	wv := GetViper()
	wv.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		err := reload()
		c := cfg
		mu.Unlock()
		if onChange != nil {
			onChange(c, err)
		}
	})
	wv.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Log.Level == "" {
		return fmt.Errorf("log.level must be set")
	}

	if c.Game.MaxCells < 1 || c.Game.MaxCells > math.MaxInt32 {
		return fmt.Errorf("game.max_cells must be between 1 and %d", math.MaxInt32)
	}

	// Validate demo configuration
	if c.Demo.Width <= 0 || c.Demo.Height <= 0 {
		return fmt.Errorf("demo board dimensions must be positive")
	}
	if c.Demo.Width*c.Demo.Height > c.Game.MaxCells {
		return fmt.Errorf("demo board of %dx%d exceeds game.max_cells", c.Demo.Width, c.Demo.Height)
	}
	if c.Demo.Players <= 0 {
		return fmt.Errorf("demo.players must be positive")
	}
	if c.Demo.Areas <= 0 {
		return fmt.Errorf("demo.areas must be positive")
	}
	if c.Demo.MaxTurns < 0 {
		return fmt.Errorf("demo.max_turns must be non-negative")
	}
	if c.Demo.GoldenRatio < 0 || c.Demo.GoldenRatio > 1 {
		return fmt.Errorf("demo.golden_ratio must be between 0 and 1")
	}

	return nil
}
