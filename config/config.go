// Package config loads the tweak panel settings. Values come from built-in
// defaults, then an optional YAML file, then a .env file and the process
// environment, each layer overriding the one before.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tweakdock/dock"
	"tweakdock/motion"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TWEAKDOCK_"

// Insets simulates a device safe area on desktop windows.
type Insets struct {
	Top    float64 `yaml:"top" env:"TOP"`
	Left   float64 `yaml:"left" env:"LEFT"`
	Bottom float64 `yaml:"bottom" env:"BOTTOM"`
	Right  float64 `yaml:"right" env:"RIGHT"`
}

// Config holds every tunable the demo reads at startup or on reload.
type Config struct {
	Response         float64  `yaml:"response" env:"RESPONSE"`
	DampingRatio     float64  `yaml:"damping_ratio" env:"DAMPING_RATIO"`
	Decay            float64  `yaml:"decay" env:"DECAY"`
	CollapseVelocity float64  `yaml:"collapse_velocity" env:"COLLAPSE_VELOCITY"`
	Anchors          []string `yaml:"anchors" env:"ANCHORS" envSeparator:","`
	Insets           Insets   `yaml:"insets" envPrefix:"INSET_"`

	Scale        float64 `yaml:"scale" env:"SCALE"`
	TPS          int     `yaml:"tps" env:"TPS"`
	WindowWidth  int     `yaml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int     `yaml:"window_height" env:"WINDOW_HEIGHT"`
}

// Defaults returns the stock settings.
func Defaults() Config {
	return Config{
		Response:         motion.DefaultResponse,
		DampingRatio:     motion.DefaultDampingRatio,
		Decay:            motion.ScrollDecay,
		CollapseVelocity: dock.CollapseVelocity,
		Anchors:          []string{"all"},
		Scale:            1,
		TPS:              60,
		WindowWidth:      390,
		WindowHeight:     844,
	}
}

// Load builds a Config from the defaults, the YAML file at path and the
// environment. A missing YAML file or .env file is not an error; an empty
// path or dotenv skips that layer.
func Load(path, dotenv string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	environ, err := environment(dotenv)
	if err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// environment merges the dotenv file under the process environment. The
// file is read fresh on every call and never copied into the process, so a
// reload sees its latest contents while real variables still win.
func environment(dotenv string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	if dotenv == "" {
		return merged, nil
	}
	vals, err := godotenv.Read(dotenv)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return merged, nil
	case err != nil:
		return nil, fmt.Errorf("load %s: %w", dotenv, err)
	}
	for k, v := range vals {
		if _, set := merged[k]; !set {
			merged[k] = v
		}
	}
	return merged, nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("response", c.Response)
	positive("damping_ratio", c.DampingRatio)
	positive("collapse_velocity", c.CollapseVelocity)
	positive("scale", c.Scale)
	if !(c.Decay > 0 && c.Decay < 1) {
		errs = append(errs, fmt.Errorf("decay must be in (0, 1), got %v", c.Decay))
	}
	if c.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps must not be negative, got %d", c.TPS))
	}
	if c.Insets.Top < 0 || c.Insets.Left < 0 || c.Insets.Bottom < 0 || c.Insets.Right < 0 {
		errs = append(errs, fmt.Errorf("insets must not be negative: %+v", c.Insets))
	}
	if _, err := dock.ParseAnchorSet(c.Anchors); err != nil {
		errs = append(errs, fmt.Errorf("anchors: %w", err))
	}
	return errors.Join(errs...)
}

// PanelOptions converts the config to panel options.
func (c Config) PanelOptions() (dock.Options, error) {
	anchors, err := dock.ParseAnchorSet(c.Anchors)
	if err != nil {
		return dock.Options{}, fmt.Errorf("anchors: %w", err)
	}
	return dock.Options{
		Metrics:          dock.DefaultMetrics(),
		Response:         c.Response,
		DampingRatio:     c.DampingRatio,
		Decay:            c.Decay,
		CollapseVelocity: c.CollapseVelocity,
		Anchors:          anchors,
	}, nil
}

// SafeArea returns the simulated insets.
func (c Config) SafeArea() dock.Insets {
	return dock.Insets{Top: c.Insets.Top, Left: c.Insets.Left, Bottom: c.Insets.Bottom, Right: c.Insets.Right}
}
