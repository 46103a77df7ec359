package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/np-os/npos/pkg/npos"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables overriding file values.
const (
	EnvUser      = "NPOS_USER"
	EnvHostname  = "NPOS_HOSTNAME"
	EnvSkipBoot  = "NPOS_SKIP_BOOT"
	EnvBootSpeed = "NPOS_BOOT_SPEED"
)

type BootConfig struct {
	Skip  bool    `yaml:"skip"`
	Speed float64 `yaml:"speed"`
}

type Config struct {
	User         string     `yaml:"user"`
	Hostname     string     `yaml:"hostname"`
	HistoryLimit int        `yaml:"history_limit"`
	Boot         BootConfig `yaml:"boot"`
	Resume       string     `yaml:"resume,omitempty"`
}

const ConfigFileName = "npos.yaml"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		User:         npos.DefaultUser,
		Hostname:     npos.DefaultHostname,
		HistoryLimit: npos.DefaultHistoryLimit,
		Boot:         BootConfig{Speed: 1},
	}
}

// Load reads the config file at path over the defaults.
// A relative Resume path is taken relative to the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, npos.ErrInvalidConfig, err)
	}
	if cfg.Resume != "" && !filepath.IsAbs(cfg.Resume) {
		cfg.Resume = filepath.Join(filepath.Dir(path), cfg.Resume)
	}
	return cfg, nil
}

// Discover loads npos.yaml from dir, falling back to the defaults when it is absent.
func Discover(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvUser); v != "" {
		c.User = v
	}
	if v := getenv(EnvHostname); v != "" {
		c.Hostname = v
	}
	if v := getenv(EnvSkipBoot); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSkipBoot, v, npos.ErrInvalidConfig)
		}
		c.Boot.Skip = skip
	}
	if v := getenv(EnvBootSpeed); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvBootSpeed, v, npos.ErrInvalidConfig)
		}
		c.Boot.Speed = speed
	}
	return nil
}

// Validate checks the configuration. Errors wrap npos.ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.User == "":
		return fmt.Errorf("user must not be empty: %w", npos.ErrInvalidConfig)
	case strings.ContainsAny(c.User, "/ \t"):
		return fmt.Errorf("user %q must not contain '/' or whitespace: %w", c.User, npos.ErrInvalidConfig)
	case c.Hostname == "":
		return fmt.Errorf("hostname must not be empty: %w", npos.ErrInvalidConfig)
	case c.HistoryLimit < 0:
		return fmt.Errorf("history_limit must not be negative: %w", npos.ErrInvalidConfig)
	case c.Boot.Speed < 0:
		return fmt.Errorf("boot.speed must not be negative: %w", npos.ErrInvalidConfig)
	}
	return nil
}
