// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	apperrors "github.com/zorak1103/basics/internal/errors"
	"github.com/zorak1103/basics/internal/logging"
	"github.com/zorak1103/basics/internal/steps"
)

// EnvPrefix is the prefix for environment variable overrides (BASICS_SUM_X, ...).
const EnvPrefix = "BASICS"

const defaultsSource = "(defaults/environment)"

// Config represents the application configuration
type Config struct {
	Sum    SumConfig    `mapstructure:"sum"`
	Greet  GreetConfig  `mapstructure:"greet"`
	Divide DivideConfig `mapstructure:"divide"`
	Log    LogConfig    `mapstructure:"log"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-"`
}

// SumConfig holds the summation operands
type SumConfig struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// GreetConfig holds the names to greet, in order
type GreetConfig struct {
	Names []string `mapstructure:"names"`
}

// DivideConfig holds the guarded division operands
type DivideConfig struct {
	Numerator   int `mapstructure:"numerator"`
	Denominator int `mapstructure:"denominator"`
}

// LogConfig controls diagnostic logging on stderr
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and environment variables.
// A missing config file is not an error; defaults reproduce the built-in program.
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("basics")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/basics")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, &apperrors.ConfigurationError{
				ConfigPath: configFile,
				Err:        fmt.Errorf("error reading config file: %w", err),
			}
		}
		// Config file not found; using defaults and env vars
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigurationError{
			ConfigPath: sourceOf(v.ConfigFileUsed()),
			Err:        fmt.Errorf("error unmarshaling config: %w", err),
		}
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	p := steps.DefaultProgram()
	return &Config{
		Sum:    SumConfig{X: p.X, Y: p.Y},
		Greet:  GreetConfig{Names: p.Names},
		Divide: DivideConfig{Numerator: p.Numerator, Denominator: p.Denominator},
		Log:    LogConfig{Level: "warn"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("sum.x", d.Sum.X)
	v.SetDefault("sum.y", d.Sum.Y)
	v.SetDefault("greet.names", d.Greet.Names)
	v.SetDefault("divide.numerator", d.Divide.Numerator)
	v.SetDefault("divide.denominator", d.Divide.Denominator)
	v.SetDefault("log.level", d.Log.Level)
}

func sourceOf(configFile string) string {
	if configFile == "" {
		return defaultsSource
	}
	return configFile
}

// Validate rejects empty greeting names and unknown log levels.
func (c *Config) Validate() error {
	source := sourceOf(c.ConfigFilePath)

	for i, name := range c.Greet.Names {
		if strings.TrimSpace(name) == "" {
			return &apperrors.ConfigurationError{
				ConfigPath: source,
				Key:        fmt.Sprintf("greet.names[%d]", i),
				Err:        errors.New("name must not be empty"),
			}
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &apperrors.ConfigurationError{ConfigPath: source, Key: "log.level", Err: err}
	}

	return nil
}

// Program converts the configuration into the operands for one run.
func (c *Config) Program() steps.Program {
	names := make([]string, len(c.Greet.Names))
	copy(names, c.Greet.Names)

	return steps.Program{
		X:           c.Sum.X,
		Y:           c.Sum.Y,
		Names:       names,
		Numerator:   c.Divide.Numerator,
		Denominator: c.Divide.Denominator,
	}
}
