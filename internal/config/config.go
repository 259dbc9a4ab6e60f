// Package config loads the scenetree configuration file.
//
// The file is TOML, read from --config or from
// $XDG_CONFIG_HOME/scenetree/config.toml (~/.config/scenetree/config.toml
// when XDG_CONFIG_HOME is unset). A missing default file is not an error;
// the defaults apply.
//
//	log_level = "debug"
//
//	[screen]
//	width = 80
//	height = 24
//
//	[animation]
//	selector = "fade"
//	duration = "250ms"
//
//	[store]
//	backend = "redis"
//	addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/store"
)

const appName = "scenetree"

// Config is the decoded configuration file.
type Config struct {
	LogLevel  string    `toml:"log_level"`
	Screen    Screen    `toml:"screen"`
	Animation Animation `toml:"animation"`
	Store     Store     `toml:"store"`
	Server    Server    `toml:"server"`
}

// Screen is the size of the simulated screen, in terminal cells.
type Screen struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Animation sets the default transition style for scenes without one.
type Animation struct {
	Selector string   `toml:"selector"`
	Duration Duration `toml:"duration"`
}

// Store configures snapshot persistence.
type Store struct {
	Backend    string   `toml:"backend"`
	Addr       string   `toml:"addr"`
	Password   string   `toml:"password"`
	DB         int      `toml:"db"`
	Database   string   `toml:"database"`
	Collection string   `toml:"collection"`
	TTL        Duration `toml:"ttl"`
	Dir        string   `toml:"dir"`
}

// Server configures the HTTP host.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ApplyTo sets the animation and duration hints on root when the tree
// leaves them unset. Descendants inherit them.
func (a Animation) ApplyTo(root *nav.Node) {
	if root == nil {
		return
	}
	if root.Animation == nil && a.Selector != "" {
		root.Animation = nav.String(a.Selector)
	}
	if root.Duration == nil && a.Duration.Duration > 0 {
		root.Duration = nav.Int(int(a.Duration.Milliseconds()))
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Screen:   Screen{Width: 80, Height: 24},
		Animation: Animation{
			Selector: string(anim.Horizontal),
			Duration: Duration{anim.DefaultDuration},
		},
		Store: Store{
			Backend: store.BackendFile,
			TTL:     Duration{store.DefaultTTL},
		},
		Server: Server{Addr: ":8080"},
	}
}

// Dir returns the scenetree configuration directory.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DataDir returns the directory for file-backed snapshots.
func DataDir() (string, error) {
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults. An empty path loads the default file
// when it exists. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, cfg.finish()
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, cfg.finish()
		}
		return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.finish()
}

// finish fills derived defaults and validates the result.
func (c *Config) finish() error {
	if c.Store.Backend == store.BackendFile && c.Store.Dir == "" {
		if dir, err := DataDir(); err == nil {
			c.Store.Dir = filepath.Join(dir, "snapshots")
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Animation.Duration.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation duration must not be negative")
	}
	switch c.Store.Backend {
	case "", store.BackendNone, store.BackendFile, store.BackendRedis, store.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level")
	}
	return lvl, nil
}

// StoreConfig converts the [store] section for store.Open.
func (c Config) StoreConfig() store.Config {
	return store.Config{
		Backend:    c.Store.Backend,
		Dir:        c.Store.Dir,
		Addr:       c.Store.Addr,
		Password:   c.Store.Password,
		DB:         c.Store.DB,
		Database:   c.Store.Database,
		Collection: c.Store.Collection,
	}
}
