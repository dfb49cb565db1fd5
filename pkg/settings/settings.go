// Package settings loads the settings of plugview from a YAML file, with
// overrides from PLUGVIEW_* environment variables.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"src.plugview.dev/pkg/driver"
	"src.plugview.dev/pkg/env"
	"src.plugview.dev/pkg/errutil"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/host"
)

// Settings is the content of a settings file. Zero values mean the driver
// default.
type Settings struct {
	// Editor is the key under which the window size is persisted.
	Editor string  `yaml:"editor" envconfig:"EDITOR"`
	Width  float32 `yaml:"width" envconfig:"WIDTH"`
	Height float32 `yaml:"height" envconfig:"HEIGHT"`
	// Scale is a fixed scale factor; zero follows the system.
	Scale                 float64  `yaml:"scale" envconfig:"SCALE"`
	AlwaysRedraw          bool     `yaml:"always-redraw" envconfig:"ALWAYS_REDRAW"`
	IgnoreNonModifierKeys bool     `yaml:"ignore-non-modifier-keys" envconfig:"IGNORE_NON_MODIFIER_KEYS"`
	Fonts                 []string `yaml:"fonts" envconfig:"FONTS"`
	// Store is the path of the database; empty means the default location.
	Store string `yaml:"store" envconfig:"STORE"`
}

// Default returns the settings used when there is no settings file.
func Default() Settings { return Settings{Editor: "default"} }

// Errors returned by Validate.
var (
	ErrNegativeSize  = errors.New("window size must not be negative")
	ErrNegativeScale = errors.New("scale must not be negative")
)

// Load reads the settings file at path, applies environment overrides and
// validates the result. A nonexistent file is not an error when optional is
// true.
func Load(path string, optional bool) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return Settings{}, err
	}
	if err := envconfig.Process(env.SettingsPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("environment overrides: %w", err)
	}
	return s, s.Validate()
}

// Validate checks s for values the driver cannot use.
func (s Settings) Validate() error {
	var errs []error
	if s.Width < 0 || s.Height < 0 {
		errs = append(errs, ErrNegativeSize)
	}
	if s.Scale < 0 {
		errs = append(errs, ErrNegativeScale)
	}
	return errutil.Multi(errs...)
}

// Size returns the configured logical window size.
func (s Settings) Size() geom.Size { return geom.Sz(s.Width, s.Height) }

// Driver converts s into driver settings, reading the font files. Fonts that
// cannot be read are reported together.
func (s Settings) Driver() (driver.Settings, error) {
	ds := driver.Settings{
		Size:                  s.Size(),
		Scale:                 host.SystemScale(),
		AlwaysRedraw:          s.AlwaysRedraw,
		IgnoreNonModifierKeys: s.IgnoreNonModifierKeys,
	}
	if s.Scale > 0 {
		ds.Scale = host.FixedScale(s.Scale)
	}
	var errs []error
	for _, name := range s.Fonts {
		data, err := os.ReadFile(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("font: %w", err))
			continue
		}
		ds.Fonts = append(ds.Fonts, data)
	}
	return ds, errutil.Multi(errs...)
}

// DefaultPath returns the default path of the settings file,
// $XDG_CONFIG_HOME/plugview/settings.yaml.
func DefaultPath() (string, error) {
	return xdgPath(env.XDG_CONFIG_HOME, ".config", "settings.yaml")
}

// DefaultStorePath returns the default path of the database,
// $XDG_STATE_HOME/plugview/db.
func DefaultStorePath() (string, error) {
	return xdgPath(env.XDG_STATE_HOME, filepath.Join(".local", "state"), "db")
}

func xdgPath(envName, fallback, name string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		return filepath.Join(dir, "plugview", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, fallback, "plugview", name), nil
}
