// Package cli implements the bridges command-line interface.
//
// The commands turn a dataset file (JSON node-link or Graphviz DOT) into a
// visualization document and optionally deliver it to a renderer:
//
//   - render: write the document JSON to stdout or a file
//   - push: render and POST to the configured server, skipping uploads that
//     are already in the cache
//   - inspect: print a styled summary of the loaded structure
//   - cache: clear the upload cache or print its location
//
// Settings come from bridges.toml (see package config) and are overridden by
// flags. All commands accept --verbose (-v) for debug logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/pkg/buildinfo"
	"github.com/matzehuels/bridges/pkg/cache"
	"github.com/matzehuels/bridges/pkg/config"
	"github.com/matzehuels/bridges/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is used for directories and display.
const appName = "bridges"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	cfg        config.Config
}

// New creates a CLI that logs to w at level and prints results to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command results (documents, summaries, URLs).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Bridges builds visualization documents for data structures",
		Long:         `Bridges loads a graph from a JSON or DOT file, serializes it as a visualization document, and posts it to a BRIDGES renderer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/bridges/bridges.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pushCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.registerHooks()
	c.Logger.Debug("config loaded", "path", c.configPath, "server", cfg.Server.URL, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// openCache returns the backend selected by the config, or a NullCache when
// disabled is set.
func (c *CLI) openCache(cmd *cobra.Command, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(cmd.Context(), c.cfg.Cache.RedisAddr)
	case config.BackendFile:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("cache disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.cfg.Cache.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/bridges/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
