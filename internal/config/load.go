package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings fixed at startup.
type Config struct {
	Port     string `mapstructure:"port"`
	BaudRate int    `mapstructure:"baud"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	MaxRange int    `mapstructure:"range"`
	Display  string `mapstructure:"display"`
	Demo     bool   `mapstructure:"demo"`
	Seed     int64  `mapstructure:"seed"`
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`
}

var (
	ErrInvalidBaud     = errors.New("baud rate must be positive")
	ErrInvalidRange    = errors.New("max range must be positive")
	ErrDisplayTooSmall = errors.New("display is too small")
	ErrUnknownDisplay  = errors.New("unknown display mode")
)

// Load resolves the configuration from defaults, an optional config file,
// RADAR_* environment variables and the given flags, in increasing priority.
// flags may be nil. An empty path skips the config file.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("baud", DefaultBaudRate)
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("range", DefaultMaxRange)
	v.SetDefault("display", DisplayWindow)
	v.SetDefault("demo", false)
	v.SetDefault("seed", 1)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// bindFlags maps kebab-case flag names onto the camelCase config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := map[string]string{
		"port":      "port",
		"baud":      "baud",
		"width":     "width",
		"height":    "height",
		"range":     "range",
		"display":   "display",
		"demo":      "demo",
		"seed":      "seed",
		"log-level": "logLevel",
		"log-file":  "logFile",
	}
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate reports the first setting that cannot drive the radar.
func (c Config) Validate() error {
	if c.BaudRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBaud, c.BaudRate)
	}
	if c.MaxRange <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRange, c.MaxRange)
	}
	switch c.Display {
	case DisplayWindow:
		if c.Width < MinWidth || c.Height < MinHeight {
			return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrDisplayTooSmall, c.Width, c.Height, MinWidth, MinHeight)
		}
	case DisplayTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDisplay, c.Display)
	}
	return nil
}
