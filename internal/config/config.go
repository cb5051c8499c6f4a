// Package config loads toolbench's layered configuration: built-in defaults, then the user's ~/.toolbench.toml, then the nearest .toolbench.toml (or an explicit
// file), then TOOLBENCH_* environment variables. Later layers override earlier ones key by key.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/toolbench/toolbench/internal/diff"
)

// FileName is the name of the config file searched for in the home directory and upwards from the working directory.
const FileName = ".toolbench.toml"

// EnvPrefix prefixes environment overrides. TOOLBENCH_SERVER_PORT sets server.port.
const EnvPrefix = "TOOLBENCH_"

// Config is the effective configuration.
type Config struct {
	Server Server `koanf:"server" json:"server"`
	Diff   Diff   `koanf:"diff" json:"diff"`
	Log    Log    `koanf:"log" json:"log"`

	// Sources lists the files that were loaded, lowest precedence first. Not a config key.
	Sources []string `koanf:"-" json:"sources,omitempty"`
}

type Server struct {
	Host            string        `koanf:"host" json:"host"`
	Port            int           `koanf:"port" json:"port"`
	MaxBodyBytes    int64         `koanf:"maxbodybytes" json:"maxbodybytes"`
	RateLimit       float64       `koanf:"ratelimit" json:"ratelimit"` // requests per second per client; 0 disables limiting
	ShutdownTimeout time.Duration `koanf:"shutdowntimeout" json:"shutdowntimeout"`
}

// Addr returns host:port.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Diff struct {
	Mode  string `koanf:"mode" json:"mode"`
	Width int    `koanf:"width" json:"width"` // side-by-side width when stdout isn't a terminal
}

type Log struct {
	Level  string `koanf:"level" json:"level"`
	Format string `koanf:"format" json:"format"`
	File   string `koanf:"file" json:"file"`
}

// Defaults returns the built-in values as koanf keys.
func Defaults() map[string]any {
	return map[string]any{
		"server.host":            "localhost",
		"server.port":            8080,
		"server.maxbodybytes":    1 << 20,
		"server.ratelimit":       20.0,
		"server.shutdowntimeout": "5s",
		"diff.mode":              "lines",
		"diff.width":             160,
		"log.level":              "info",
		"log.format":             "console",
		"log.file":               "",
	}
}

// Options controls where Load looks for files.
type Options struct {
	// Path, if set, replaces the nearest-file search. It must exist.
	Path string

	// HomeDir overrides the user's home directory. Empty uses os.UserHomeDir.
	HomeDir string

	// WorkDir is where the nearest-file search starts. Empty uses the working directory.
	WorkDir string
}

// Load builds the effective Config and validates it.
func Load(opts Options) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	var sources []string
	loadFile := func(path string) error {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		sources = append(sources, path)
		return nil
	}

	home := opts.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	homeFile := ""
	if home != "" {
		homeFile = filepath.Join(home, FileName)
		if fileExists(homeFile) {
			if err := loadFile(homeFile); err != nil {
				return Config{}, err
			}
		}
	}

	if opts.Path != "" {
		path := ExpandPath(opts.Path)
		if !fileExists(path) {
			return Config{}, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		if err := loadFile(path); err != nil {
			return Config{}, err
		}
	} else if nearest := FindNearest(FileName, opts.WorkDir); nearest != "" && !samePath(nearest, homeFile) {
		if err := loadFile(nearest); err != nil {
			return Config{}, err
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Sources = sources

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid value in cfg, joined into one error.
func Validate(cfg Config) error {
	var errs []error
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 0-65535 (got %d)", cfg.Server.Port))
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.maxbodybytes must be > 0 (got %d)", cfg.Server.MaxBodyBytes))
	}
	if cfg.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("server.ratelimit must be >= 0 (got %g)", cfg.Server.RateLimit))
	}
	if _, err := diff.ParseMode(cfg.Diff.Mode); err != nil {
		errs = append(errs, fmt.Errorf("diff.mode: %w", err))
	}
	if cfg.Diff.Width <= 0 {
		errs = append(errs, fmt.Errorf("diff.width must be > 0 (got %d)", cfg.Diff.Width))
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json (got %q)", cfg.Log.Format))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}
