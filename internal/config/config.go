// Package config loads lvpath settings from defaults, an optional YAML file,
// a .env file and LVPATH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "LVPATH"

// Keys understood by Load.
const (
	KeyLogLevel  = "log_level"
	KeyTiming    = "timing"
	KeyWorkers   = "workers"
	KeyAlgorithm = "algorithm"
)

// Supported values of Config.Algorithm.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmBFS      = "bfs"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	Timing    bool   `mapstructure:"timing"`
	Workers   int    `mapstructure:"workers"`
	Algorithm string `mapstructure:"algorithm"`
}

// NewViper returns a viper instance reading from fs.
//
// With cfgFile set the file must exist. Otherwise $HOME/.lvpath.yaml is used
// when present.
func NewViper(fs afero.Fs, cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", cfgFile, err)
		}

		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return v, nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(".lvpath")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read home config: %w", err)
		}
	}

	return v, nil
}

// LoadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load %q: %w", path, err)
	}

	return nil
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.Algorithm {
	case AlgorithmDijkstra, AlgorithmBFS:
	default:
		return fmt.Errorf("%w: algorithm %q (want %s or %s)", ErrInvalidConfig, c.Algorithm, AlgorithmDijkstra, AlgorithmBFS)
	}

	return nil
}

// Level returns the parsed zerolog level. Call after Validate.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTiming, true)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyAlgorithm, AlgorithmDijkstra)
}
