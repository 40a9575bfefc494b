// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.fitcoach/config.yaml)
//  3. Default values
//
// Categories:
//   - AI: model selection for plan generation
//   - Routing: fixed sub-parameters the classifier fills into requests
//   - Serve: HTTP listen address (serve mode only)
//   - Log: level and format
//
// Error handling uses sentinel errors so callers can check with errors.Is().
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/fitcoach/fitcoach/internal/chat"
)

var (
	// ErrMissingAPIKey indicates GEMINI_API_KEY is not set.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates the model name is empty or malformed.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidListenAddr indicates the serve listen address is invalid.
	ErrInvalidListenAddr = errors.New("invalid listen address")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidCalories indicates the diet calorie target is out of range.
	ErrInvalidCalories = errors.New("invalid calorie target")

	// ErrInvalidDuration indicates the workout duration is empty.
	ErrInvalidDuration = errors.New("invalid workout duration")
)

// Config stores application configuration.
type Config struct {
	// AI model configuration. GEMINI_API_KEY is read directly by Genkit,
	// not via Viper; Validate only checks its presence.
	ModelName string `mapstructure:"model_name" json:"model_name"`

	// Routing sub-parameters. These are the fixed values filled into every
	// generated request; keyword classification itself is not configurable.
	WorkoutDuration   string   `mapstructure:"workout_duration" json:"workout_duration"`
	WorkoutEquipment  []string `mapstructure:"workout_equipment" json:"workout_equipment"`
	FallbackEquipment []string `mapstructure:"fallback_equipment" json:"fallback_equipment"`
	DietCalories      int      `mapstructure:"diet_calories" json:"diet_calories"`
	PreferredFoods    []string `mapstructure:"preferred_foods" json:"preferred_foods"`

	// Serve mode configuration
	ListenAddr string `mapstructure:"listen_addr" json:"listen_addr"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" json:"log_json"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > default values.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".fitcoach")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values. The routing defaults
// mirror chat.DefaultRouting so a bare install behaves identically with or
// without a config file.
func setDefaults(v *viper.Viper) {
	routing := chat.DefaultRouting()

	v.SetDefault("model_name", "gemini-2.5-flash")

	v.SetDefault("workout_duration", routing.Duration)
	v.SetDefault("workout_equipment", routing.Equipment)
	v.SetDefault("fallback_equipment", routing.FallbackEquipment)
	v.SetDefault("diet_calories", routing.Calories)
	v.SetDefault("preferred_foods", routing.Foods)

	v.SetDefault("listen_addr", "localhost:8080")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// bindEnvVariables binds environment overrides explicitly.
// GEMINI_API_KEY is intentionally absent: Genkit reads it directly.
func bindEnvVariables(v *viper.Viper) {
	// Hardcoded keys cannot fail to bind; a panic here is a bug.
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("model_name", "FITCOACH_MODEL_NAME")
	mustBind("listen_addr", "FITCOACH_LISTEN_ADDR")
	mustBind("log_level", "FITCOACH_LOG_LEVEL")
	mustBind("log_json", "FITCOACH_LOG_JSON")
}

// Routing converts the configured sub-parameters to classifier defaults.
func (c *Config) Routing() chat.Defaults {
	return chat.Defaults{
		Duration:          c.WorkoutDuration,
		Equipment:         c.WorkoutEquipment,
		FallbackEquipment: c.FallbackEquipment,
		Calories:          c.DietCalories,
		Foods:             c.PreferredFoods,
	}
}

// FullModelName returns the provider-qualified model name for Genkit,
// e.g. "googleai/gemini-2.5-flash". A name already containing "/" is
// returned as-is.
func (c *Config) FullModelName() string {
	if strings.Contains(c.ModelName, "/") {
		return c.ModelName
	}
	return "googleai/" + c.ModelName
}

// Validate checks the configuration and fails fast on the first problem.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ModelName) == "" {
		return fmt.Errorf("%w: model name must not be empty", ErrInvalidModelName)
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("%w: listen address must not be empty", ErrInvalidListenAddr)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.DietCalories <= 0 || c.DietCalories > 20000 {
		return fmt.Errorf("%w: %d (want 1-20000)", ErrInvalidCalories, c.DietCalories)
	}
	if strings.TrimSpace(c.WorkoutDuration) == "" {
		return fmt.Errorf("%w: duration must not be empty", ErrInvalidDuration)
	}
	return nil
}

// ValidateAPIKey checks that GEMINI_API_KEY is present. Separate from
// Validate because only commands that actually generate need it.
func (c *Config) ValidateAPIKey() error {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
	}
	return nil
}

// LogConfig converts the configured level and format to logger options.
func (c *Config) LogConfig() (level slog.Level, json bool) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return level, c.LogJSON
}
