// Package config resolves settings from flags, EDGE_PROFILE_* environment
// variables, an optional config file and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/distantorigin/edge-profile/internal/paths"
)

const (
	EnvPrefix = "EDGE_PROFILE"
	FileName  = "edge-profile"
)

// Keys shared between flags, environment and config file
const (
	KeyBrowser         = "browser"
	KeyUserDataDir     = "user_data_dir"
	KeyStartMenuDir    = "start_menu_dir"
	KeyProcessImage    = "process_image"
	KeyReadyTimeout    = "ready_timeout"
	KeyPollInterval    = "poll_interval"
	KeyShutdownTimeout = "shutdown_timeout"
	KeyFixedWait       = "fixed_wait"
	KeyQuiet           = "quiet"
	KeyVerbose         = "verbose"
	KeyNoColor         = "no_color"
	KeyNonInteractive  = "non_interactive"
	KeyNoSound         = "no_sound"
)

// Config holds every setting of a run
type Config struct {
	Browser         string        `mapstructure:"browser"`
	UserDataDir     string        `mapstructure:"user_data_dir"`
	StartMenuDir    string        `mapstructure:"start_menu_dir"`
	ProcessImage    string        `mapstructure:"process_image"`
	ReadyTimeout    time.Duration `mapstructure:"ready_timeout"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	FixedWait       bool          `mapstructure:"fixed_wait"`

	Quiet          bool `mapstructure:"quiet"`
	Verbose        bool `mapstructure:"verbose"`
	NoColor        bool `mapstructure:"no_color"`
	NonInteractive bool `mapstructure:"non_interactive"`
	NoSound        bool `mapstructure:"no_sound"`
}

// Defaults returns the stock Edge locations for the current user
func Defaults() map[string]any {
	return map[string]any{
		KeyBrowser:         filepath.Join(os.Getenv("ProgramFiles(x86)"), "Microsoft", "Edge", "Application", "msedge.exe"),
		KeyUserDataDir:     filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Edge", "User Data"),
		KeyStartMenuDir:    filepath.Join(os.Getenv("ProgramData"), "Microsoft", "Windows", "Start Menu", "Programs"),
		KeyProcessImage:    "msedge.exe",
		KeyReadyTimeout:    15 * time.Second,
		KeyPollInterval:    500 * time.Millisecond,
		KeyShutdownTimeout: 10 * time.Second,
		KeyFixedWait:       false,
		KeyQuiet:           false,
		KeyVerbose:         false,
		KeyNoColor:         false,
		KeyNonInteractive:  false,
		KeyNoSound:         false,
	}
}

// New returns a viper instance with defaults and environment lookup in place
func New() *viper.Viper {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// ReadFile loads the config file. An explicit path must exist; without one,
// edge-profile.* in the user config directory is read when present.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(FileName)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// Load decodes and validates the settings held by v
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings a run cannot work with
func (c Config) Validate() error {
	switch {
	case c.Browser == "":
		return fmt.Errorf("invalid configuration: %s is empty", KeyBrowser)
	case c.UserDataDir == "":
		return fmt.Errorf("invalid configuration: %s is empty", KeyUserDataDir)
	case c.StartMenuDir == "":
		return fmt.Errorf("invalid configuration: %s is empty", KeyStartMenuDir)
	case c.ProcessImage == "":
		return fmt.Errorf("invalid configuration: %s is empty", KeyProcessImage)
	case c.ReadyTimeout <= 0:
		return fmt.Errorf("invalid configuration: %s must be positive, got %s", KeyReadyTimeout, c.ReadyTimeout)
	case c.PollInterval <= 0:
		return fmt.Errorf("invalid configuration: %s must be positive, got %s", KeyPollInterval, c.PollInterval)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("invalid configuration: %s must be positive, got %s", KeyShutdownTimeout, c.ShutdownTimeout)
	}
	return nil
}

// Layout returns the browser file layout described by c
func (c Config) Layout() paths.Layout {
	return paths.Layout{
		BrowserPath:  c.Browser,
		UserDataDir:  c.UserDataDir,
		StartMenuDir: c.StartMenuDir,
	}
}
