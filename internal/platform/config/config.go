package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DataDir      string    `yaml:"-"`
	DBPath       string    `yaml:"db_path" env:"EXAMTRACK_DB"`
	Timezone     string    `yaml:"timezone" env:"EXAMTRACK_TZ" env-default:"Local"`
	UpcomingDays int       `yaml:"upcoming_days" env:"EXAMTRACK_UPCOMING_DAYS" env-default:"7"`
	Log          LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"EXAMTRACK_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"EXAMTRACK_LOG_FORMAT" env-default:"text"`
}

// New loads configuration for the data directory.
// Priority: ENV > YAML > defaults. The YAML file is EXAMTRACK_CONFIG when set,
// otherwise <dataDir>/.examtrack/config.yaml if it exists.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	var cfg Config

	path := os.Getenv("EXAMTRACK_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = filepath.Join(dataDir, ".examtrack", "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return Config{}, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	cfg.DataDir = dataDir
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, ".examtrack", "examtrack.db")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	if c.UpcomingDays <= 0 {
		return fmt.Errorf("upcoming_days must be > 0 (got %d)", c.UpcomingDays)
	}
	return nil
}

// Location resolves Timezone; Validate has already proven it loads.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
