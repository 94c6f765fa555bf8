// Package config loads the settings of the airdrop CLI from an optional
// config file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/airdrop-manifest/airdrop"
)

// Default values used when neither the file nor the environment set a key.
const (
	DefaultInput    = "input/data.csv"
	DefaultOutput   = "input/addresses.json"
	DefaultStrategy = "evm"
	DefaultLogLevel = "info"
)

// LogConfig configures the operational log.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn or error
	File  string `mapstructure:"file" yaml:"file"`   // Optional rotated log file, in addition to stderr
}

// Config wraps the entire configuration of a conversion run.
type Config struct {
	Input      string    `mapstructure:"input" yaml:"input"`             // Path of the CSV to convert
	Output     string    `mapstructure:"output" yaml:"output"`           // Path the manifest is written to
	Strategy   string    `mapstructure:"strategy" yaml:"strategy"`       // Address strategy: basic, evm, solana or aptos
	SkipHeader bool      `mapstructure:"skip_header" yaml:"skip_header"` // Drop the first non-blank CSV line
	Log        LogConfig `mapstructure:"log" yaml:"log"`
}

// Validate checks that all required fields are set and the strategy and log level are known.
func (c *Config) Validate() error {
	var missing []string

	if strings.TrimSpace(c.Input) == "" {
		missing = append(missing, "input")
	}
	if strings.TrimSpace(c.Output) == "" {
		missing = append(missing, "output")
	}
	if len(missing) > 0 {
		return errors.New("config: missing required fields: " + strings.Join(missing, ", "))
	}

	if _, err := airdrop.LookupStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}

	return lvl, nil
}

// Load loads the config from the file path, falling back to env vars if the path is
// empty or the file does not exist. Env vars that are set override file values.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if filePath != "" {
		v.SetConfigFile(filePath)

		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	return Load("")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("input", DefaultInput)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("strategy", DefaultStrategy)
	v.SetDefault("skip_header", false)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")

	return v
}

var (
	// envBindings maps config keys to the environment variables that can set them.
	// The first listed variable takes precedence.
	envBindings = map[string][]string{
		"input":       {"AIRDROP_INPUT"},
		"output":      {"AIRDROP_OUTPUT"},
		"strategy":    {"AIRDROP_STRATEGY"},
		"skip_header": {"AIRDROP_SKIP_HEADER"},
		"log.level":   {"AIRDROP_LOG_LEVEL", "LOG_LEVEL"},
		"log.file":    {"AIRDROP_LOG_FILE"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
