package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	// DefaultKeyRepeatMs is how long the down key counts as held after the
	// last repeat arrives, for terminals without key release events.
	DefaultKeyRepeatMs = 200
	// MinKeyRepeatMs and MaxKeyRepeatMs bound the accepted key repeat delay.
	MinKeyRepeatMs = 50
	MaxKeyRepeatMs = 1200
	// DefaultFPS is the frame rate of the game loop.
	DefaultFPS = 45
	// DefaultListenAddr is where `termrex serve` accepts SSH connections.
	DefaultListenAddr = ":2222"
	// DefaultLogLevel is used when neither flag nor config sets one.
	DefaultLogLevel = "info"

	configName = "config"
	appName    = "termrex"
)

// Config holds the user configuration for termrex.
type Config struct {
	Game   GameConfig   `mapstructure:"game" yaml:"game"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// GameConfig holds gameplay settings. Every field has a matching flag on
// `termrex run`.
type GameConfig struct {
	ASCIIOnly    bool `mapstructure:"ascii_only" yaml:"ascii_only"`
	ObstacleDino bool `mapstructure:"obstacle_dino" yaml:"obstacle_dino"`
	KeyRepeatMs  int  `mapstructure:"key_repeat_ms" yaml:"key_repeat_ms"`
	SkipIntro    bool `mapstructure:"skip_intro" yaml:"skip_intro"`
	FPS          int  `mapstructure:"fps" yaml:"fps"`
}

// LogConfig configures the log file. An empty File means the XDG state
// directory.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// ServerConfig configures `termrex serve`.
type ServerConfig struct {
	Listen  string `mapstructure:"listen" yaml:"listen"`
	HostKey string `mapstructure:"host_key" yaml:"host_key"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			ObstacleDino: true,
			KeyRepeatMs:  DefaultKeyRepeatMs,
			FPS:          DefaultFPS,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Server: ServerConfig{
			Listen: DefaultListenAddr,
		},
	}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Game.KeyRepeatMs < MinKeyRepeatMs || c.Game.KeyRepeatMs > MaxKeyRepeatMs {
		return fmt.Errorf("key repeat delay %dms out of range [%d, %d]", c.Game.KeyRepeatMs, MinKeyRepeatMs, MaxKeyRepeatMs)
	}
	if c.Game.FPS < 1 || c.Game.FPS > 240 {
		return fmt.Errorf("fps %d out of range [1, 240]", c.Game.FPS)
	}
	return nil
}

// DefaultPath is where `termrex config init` writes the configuration.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configName+".yaml")
}

// Loader wraps Viper configuration loading for termrex.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with the built-in defaults, TERMREX_*
// environment overrides and the standard search paths.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("TERMREX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	v.AddConfigPath("$HOME/.termrex")

	def := DefaultConfig()
	v.SetDefault("game.ascii_only", def.Game.ASCIIOnly)
	v.SetDefault("game.obstacle_dino", def.Game.ObstacleDino)
	v.SetDefault("game.key_repeat_ms", def.Game.KeyRepeatMs)
	v.SetDefault("game.skip_intro", def.Game.SkipIntro)
	v.SetDefault("game.fps", def.Game.FPS)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("server.listen", def.Server.Listen)
	v.SetDefault("server.host_key", def.Server.HostKey)

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load reads the configuration file if there is one and unmarshals the
// merged result. A missing file is not an error.
func (l *Loader) Load() (Config, error) {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration as YAML to path. An existing
// file is never overwritten; the returned bool reports whether a file was
// written.
func WriteDefault(path string) (bool, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
