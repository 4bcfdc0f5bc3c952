package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ImGajeed76/datenight/pkg/datenight/session"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the program settings loaded from defaults, remembered
// preferences, the config file, environment variables and flags.
type Config struct {
	Env           string  `mapstructure:"env"`            // local, dev, production
	Mode          string  `mapstructure:"mode"`           // session or endless
	Threshold     float64 `mapstructure:"threshold"`      // swipe distance in units, 0 = mode default
	SessionLength int     `mapstructure:"session_length"` // questions per session in session mode
	Category      string  `mapstructure:"category"`       // starting category in endless mode
	Seed          int64   `mapstructure:"seed"`           // random seed, 0 = wall clock
	LogFile       string  `mapstructure:"log_file"`       // empty disables logging
	Bank          Bank    `mapstructure:"bank"`
	Display       Display `mapstructure:"display"`
}

// Bank selects the question bank file. An empty path uses the built-in bank.
type Bank struct {
	Path     string `mapstructure:"path"`
	Encoding string `mapstructure:"encoding"`
}

// Display converts terminal cells into gesture units.
type Display struct {
	CellWidth  float64 `mapstructure:"cell_width"`  // units per column
	CellHeight float64 `mapstructure:"cell_height"` // units per row
	CardWidth  int     `mapstructure:"card_width"`  // card width in columns
}

var flagKeys = map[string]string{
	"mode":      "mode",
	"threshold": "threshold",
	"length":    "session_length",
	"category":  "category",
	"seed":      "seed",
	"bank":      "bank.path",
	"encoding":  "bank.encoding",
	"log-file":  "log_file",
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a datenight.yaml config file")
	fs.String("mode", session.ModeSession, "session (25 cards, points, summary) or endless")
	fs.Float64("threshold", 0, "swipe threshold in units (0 uses the mode default)")
	fs.Int("length", session.DefaultLength, "number of cards in a session")
	fs.String("category", "", "starting category in endless mode")
	fs.Int64("seed", 0, "random seed (0 uses the clock)")
	fs.String("bank", "", "question bank file (.yaml, .yml, .txt, .deck)")
	fs.String("encoding", "utf-8", "character encoding of the question bank file")
	fs.String("log-file", "", "write logs to this file")
}

// Load reads configuration. fs and prefs may be nil.
func Load(fs *pflag.FlagSet, prefs *Preferences) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("datenight")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "datenight"))
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("mode", session.ModeSession)
	v.SetDefault("threshold", 0)
	v.SetDefault("session_length", session.DefaultLength)
	v.SetDefault("category", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("bank.path", "")
	v.SetDefault("bank.encoding", "utf-8")
	v.SetDefault("display.cell_width", 8)
	v.SetDefault("display.cell_height", 16)
	v.SetDefault("display.card_width", 48)

	// Remembered preferences sit just above the built-in defaults.
	if prefs != nil {
		for key, value := range prefs.All() {
			v.SetDefault(key, value)
		}
	}

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("DATENIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := ""
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	}

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Mode {
	case session.ModeSession, session.ModeEndless:
	default:
		return fmt.Errorf("mode %q: %w", c.Mode, ErrInvalidConfig)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold %v must not be negative: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.SessionLength < 1 {
		return fmt.Errorf("session_length %d must be at least 1: %w", c.SessionLength, ErrInvalidConfig)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("display cell size must be positive: %w", ErrInvalidConfig)
	}
	if c.Display.CardWidth < 16 {
		return fmt.Errorf("display.card_width %d must be at least 16: %w", c.Display.CardWidth, ErrInvalidConfig)
	}
	return nil
}
