// Package config loads bridges.toml.
//
// A config file has three optional sections:
//
//	[visualization]
//	title = "Course prerequisites"
//	coord_system = "cartesian"
//
//	[server]
//	url = "live"          # preset (live, clone, local) or a full URL
//	assignment = 3
//	user = "alice"
//	api_key = "..."
//	timeout = "30s"
//
//	[cache]
//	backend = "file"      # file, redis or none
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
// Missing keys keep the values from [Default]. Unknown keys are rejected so
// typos surface instead of silently doing nothing.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bridges/pkg/errors"
)

// FileName is the config file looked up in the user config directory.
const FileName = "bridges.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the decoded bridges.toml.
type Config struct {
	Visualization Visualization `toml:"visualization"`
	Server        Server        `toml:"server"`
	Cache         Cache         `toml:"cache"`
}

// Visualization holds document header defaults.
type Visualization struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	CoordSystem string `toml:"coord_system" validate:"oneof=cartesian albersusa equirectangular"`
	MapOverlay  bool   `toml:"map_overlay"`
}

// Server identifies where and as whom documents are posted.
type Server struct {
	URL        string        `toml:"url" validate:"required"`
	Assignment int           `toml:"assignment" validate:"gte=0"`
	User       string        `toml:"user"`
	APIKey     string        `toml:"api_key"`
	Timeout    time.Duration `toml:"timeout" validate:"gte=0"`
}

// Cache selects the upload cache backend.
type Cache struct {
	Backend   string        `toml:"backend" validate:"oneof=file redis none"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr" validate:"required_if=Backend redis"`
	TTL       time.Duration `toml:"ttl" validate:"gte=0"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Visualization: Visualization{CoordSystem: "cartesian"},
		Server: Server{
			URL:     "live",
			Timeout: 30 * time.Second,
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     24 * time.Hour,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/bridges/bridges.toml, falling back
// to the platform user config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "bridges", FileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate user config dir")
	}
	return filepath.Join(dir, "bridges", FileName), nil
}

// Load reads path on top of Default. An empty path means DefaultPath, and a
// missing default file is not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section's constraints.
func (c Config) Validate() error {
	if err := errors.CheckStruct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	return nil
}
