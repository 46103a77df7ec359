package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/np-os/npos/internal/config"
	"github.com/np-os/npos/internal/logging"
	"github.com/np-os/npos/internal/resume"
	"github.com/np-os/npos/internal/shell"
	"github.com/np-os/npos/internal/vfs"
	"github.com/np-os/npos/pkg/npos"
)

// loadConfig loads .env and the configuration file, then layers environment
// variables and explicitly set flags on top and validates the result.
// Without --config, a missing ./npos.yaml is not an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if path := getStringFlag(cmd, "config"); path != "" {
		cfg, err = config.Load(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%s: %w: %w", path, npos.ErrInvalidConfig, err)
		}
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides copies flags the user set on the command line into cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("user") {
		cfg.User = getStringFlag(cmd, "user")
	}
	if flags.Changed("hostname") {
		cfg.Hostname = getStringFlag(cmd, "hostname")
	}
	if flags.Changed("skip-boot") {
		cfg.Boot.Skip = shellOpts.skipBoot
	}
	if flags.Changed("boot-speed") {
		cfg.Boot.Speed = shellOpts.bootSpeed
	}
}

// newLogger picks the logger for a command. A log file always wins. Otherwise
// the full-screen shell stays silent because it owns the terminal, and line
// mode logs to stderr only when verbose.
func newLogger(cmd *cobra.Command, fullScreen bool) (npos.Logger, func(), error) {
	verbose := getVerboseFlag(cmd)

	if path := getStringFlag(cmd, "log-file"); path != "" {
		l, err := logging.NewFileLogger(path, verbose)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		return l, func() { _ = l.Sync() }, nil
	}
	if fullScreen || !verbose {
		return logging.NewNullLogger(), func() {}, nil
	}
	return logging.NewWriterLogger(cmd.ErrOrStderr(), verbose), func() {}, nil
}

// buildTree seeds the virtual filesystem with the configured resume, or the
// embedded one when none is configured.
func buildTree(cfg *config.Config) (*vfs.Tree, error) {
	r := resume.Default()
	if cfg.Resume != "" {
		loaded, err := resume.Load(cfg.Resume)
		if err != nil {
			return nil, fmt.Errorf("resume %s: %w: %w", cfg.Resume, npos.ErrInvalidConfig, err)
		}
		r = loaded
	}
	return vfs.Seed(vfs.SeedOptions{User: cfg.User, Hostname: cfg.Hostname, Resume: r}), nil
}

// newSession creates a shell session from cfg. A skipped or zero-speed boot
// is completed before the session is returned.
func newSession(cfg *config.Config, logger npos.Logger) (*shell.Session, error) {
	tree, err := buildTree(cfg)
	if err != nil {
		return nil, err
	}

	now := time.Now
	s := shell.NewSession(shell.Options{
		Tree:         tree,
		User:         cfg.User,
		Hostname:     cfg.Hostname,
		HistoryLimit: cfg.HistoryLimit,
		Boot:         shell.DefaultBootScript(cfg.User, now()).Scaled(cfg.Boot.Speed),
		Clock:        now,
		Logger:       logger,
	})
	if cfg.Boot.Skip || cfg.Boot.Speed == 0 {
		s.CompleteBoot()
	}
	return s, nil
}
