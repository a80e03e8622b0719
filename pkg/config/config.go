// Package config loads pinboard settings.
//
// Sources are applied in order, each overriding the previous one:
//
//  1. built-in defaults ([Default])
//  2. the TOML config file ($XDG_CONFIG_HOME/pinboard/config.toml, or the
//     file named by --config)
//  3. a .env file in the working directory
//  4. PINBOARD_* environment variables
//
// Command-line flags are applied last by the CLI.
//
// Example config.toml:
//
//	direction   = "LR"
//	node_width  = 180
//	node_height = 220
//	id_source   = "nanoid"
//	board       = "~/boards/reading.toml"
package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/layout"
	"github.com/matzehuels/pinboard/pkg/record"
)

const (
	// AppName names the config directory.
	AppName = "pinboard"
	// FileName is the config file inside the config directory.
	FileName = "config.toml"
	// EnvPrefix prefixes every environment variable read by [Loader].
	EnvPrefix = "PINBOARD_"
)

// Config holds every setting that can come from a file or the environment.
type Config struct {
	Direction  string  `toml:"direction"`
	NodeWidth  float64 `toml:"node_width"`
	NodeHeight float64 `toml:"node_height"`
	Jitter     float64 `toml:"jitter"`
	Seed       uint64  `toml:"seed"`
	IDSource   string  `toml:"id_source"`
	Board      string  `toml:"board"`
	NoSeed     bool    `toml:"no_seed"`
	Verbose    bool    `toml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Direction:  string(layout.TopBottom),
		NodeWidth:  layout.DefaultNodeWidth,
		NodeHeight: layout.DefaultNodeHeight,
		IDSource:   record.IDSourceUUID,
	}
}

// DefaultPath returns the config file location, honouring XDG_CONFIG_HOME.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, FileName)
}

// Loader reads a Config from its sources.
type Loader struct {
	// Path is an explicit config file. It must exist. When empty,
	// [DefaultPath] is tried and may be missing.
	Path string
	// DotEnv is the .env file to read; empty means ".env". A missing file
	// is skipped.
	DotEnv string
	// LookupEnv reads the process environment; nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)

	Logger *log.Logger
}

// Load returns defaults overlaid with every available source, validated.
func (l Loader) Load() (Config, error) {
	cfg := Default()

	path, explicit := l.Path, l.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path, explicit); err != nil {
			return Config{}, err
		}
	}

	dotenv := l.DotEnv
	if dotenv == "" {
		dotenv = ".env"
	}
	vars, err := godotenv.Read(dotenv)
	switch {
	case err == nil:
		l.debug("loaded env file", "path", dotenv, "vars", len(vars))
		if err := cfg.mergeEnv(mapLookup(vars)); err != nil {
			return Config{}, err
		}
	case !os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", dotenv)
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.mergeEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func (l Loader) debug(msg string, kv ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, kv...)
	}
}

func (c *Config) mergeFile(path string, required bool) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if os.IsNotExist(err) {
			if required {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
			}
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown setting %q", path, undecoded[0].String())
	}
	return nil
}

// mergeEnv overrides fields whose PINBOARD_* variable is set and non-empty.
func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	float := func(name string, dst *float64) error {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s: not a number: %q", EnvPrefix, name, v)
			}
			*dst = f
		}
		return nil
	}
	boolean := func(name string, dst *bool) error {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s: not a boolean: %q", EnvPrefix, name, v)
			}
			*dst = b
		}
		return nil
	}

	if v, ok := get("DIRECTION"); ok {
		c.Direction = v
	}
	if v, ok := get("ID_SOURCE"); ok {
		c.IDSource = v
	}
	if v, ok := get("BOARD"); ok {
		c.Board = v
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sSEED: not an unsigned integer: %q", EnvPrefix, v)
		}
		c.Seed = n
	}
	for _, err := range []error{
		float("NODE_WIDTH", &c.NodeWidth),
		float("NODE_HEIGHT", &c.NodeHeight),
		float("JITTER", &c.Jitter),
		boolean("NO_SEED", &c.NoSeed),
		boolean("VERBOSE", &c.Verbose),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the direction, id source and numeric ranges.
func (c *Config) Validate() error {
	if _, err := layout.ParseDirection(c.Direction); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "direction")
	}
	if _, err := record.ParseIDSource(c.IDSource); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "id_source")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"node_width", c.NodeWidth}, {"node_height", c.NodeHeight}, {"jitter", c.Jitter}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be a finite number (got %g)", f.name, f.v)
		}
	}
	if c.NodeWidth < 0 || c.NodeHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "node size must not be negative (got %gx%g)", c.NodeWidth, c.NodeHeight)
	}
	if c.Jitter < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "jitter must not be negative (got %g)", c.Jitter)
	}
	if c.Board != "" {
		if err := errors.ValidatePath(c.Board); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "board")
		}
	}
	return nil
}

// LayoutOptions converts the layout settings. The config must be valid.
func (c Config) LayoutOptions(logger *log.Logger) layout.Options {
	dir, _ := layout.ParseDirection(c.Direction)
	return layout.Options{
		Direction:  dir,
		NodeWidth:  c.NodeWidth,
		NodeHeight: c.NodeHeight,
		Jitter:     c.Jitter,
		Seed:       c.Seed,
		Logger:     logger,
	}
}

// Factory returns a record factory using the configured id source.
func (c Config) Factory() (*record.Factory, error) {
	ids, err := record.ParseIDSource(c.IDSource)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "id_source")
	}
	return record.NewFactory(ids), nil
}
