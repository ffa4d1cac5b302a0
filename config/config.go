// Package config assembles every tunable of the game and the layout service
// from defaults, an optional TOML file and environment overrides
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/wikijump/audio"
	"github.com/lixenwraith/wikijump/content"
	"github.com/lixenwraith/wikijump/engine"
	"github.com/lixenwraith/wikijump/input"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/parameter"
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

// ErrInvalid wraps every configuration error
var ErrInvalid = errors.New("invalid configuration")

// Metrics sources for word measurement
const (
	MetricsMono = "mono"
	MetricsFont = "font"
)

// Environment overrides
const (
	EnvStart    = "WIKIJUMP_START"
	EnvWikiBase = "WIKIJUMP_WIKI_BASE"
	EnvAudio    = "WIKIJUMP_AUDIO"
	EnvVolume   = "WIKIJUMP_VOLUME"
	EnvAddr     = "WIKIJUMP_ADDR"
)

type CameraConfig struct {
	Slack      float64 `toml:"slack"`
	CullRadius float64 `toml:"cull_radius"`
}

type SessionConfig struct {
	Start        string        `toml:"start"`
	StartX       float64       `toml:"start_x"`
	StartY       float64       `toml:"start_y"`
	FallLimit    float64       `toml:"fall_limit"`
	Seed         uint64        `toml:"seed"`
	TrailLength  int           `toml:"trail_length"`
	TickInterval time.Duration `toml:"tick_interval"`
}

type RenderConfig struct {
	// Metrics selects word measurement: mono cells or Go font outlines
	Metrics    string  `toml:"metrics"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

type InputConfig struct {
	HoldInitial time.Duration `toml:"hold_initial"`
	HoldRepeat  time.Duration `toml:"hold_repeat"`
}

type ServerConfig struct {
	Addr           string        `toml:"addr"`
	MaxUploadBytes int64         `toml:"max_upload_bytes"`
	ReadTimeout    time.Duration `toml:"read_timeout"`
	Metrics        string        `toml:"metrics"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the complete configuration of both binaries
type Config struct {
	Layout  layout.Config  `toml:"layout"`
	Physics physics.Params `toml:"physics"`
	Camera  CameraConfig   `toml:"camera"`
	Session SessionConfig  `toml:"session"`
	Render  RenderConfig   `toml:"render"`
	Input   InputConfig    `toml:"input"`
	Audio   audio.Config   `toml:"audio"`
	Content content.Config `toml:"content"`
	Server  ServerConfig   `toml:"server"`
	Log     LogConfig      `toml:"log"`

	// Keys overrides default bindings, key name to action name
	Keys map[string]string `toml:"keys"`
}

func Default() Config {
	return Config{
		Layout:  layout.DefaultConfig(),
		Physics: physics.DefaultParams(),
		Camera: CameraConfig{
			Slack:      parameter.CameraSlack,
			CullRadius: parameter.ViewportHeight,
		},
		Session: SessionConfig{
			Start:        parameter.StartPage,
			StartX:       parameter.StartX,
			StartY:       parameter.StartY,
			FallLimit:    parameter.FallLimit,
			TrailLength:  parameter.TrailLength,
			TickInterval: parameter.TickInterval,
		},
		Render: RenderConfig{
			Metrics:    MetricsMono,
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
		},
		Input: InputConfig{
			HoldInitial: parameter.KeyHoldInitial,
			HoldRepeat:  parameter.KeyHoldRepeat,
		},
		Audio:   audio.DefaultConfig(),
		Content: content.DefaultConfig(),
		Server: ServerConfig{
			Addr:           parameter.ServerAddr,
			MaxUploadBytes: parameter.MaxUploadBytes,
			ReadTimeout:    parameter.ServerReadTimeout,
			Metrics:        MetricsFont,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with the TOML file at path, if any, and the environment
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalid, path, undecoded)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv applies overrides from lookup, typically os.LookupEnv
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStart); ok && v != "" {
		c.Session.Start = v
	}
	if v, ok := lookup(EnvWikiBase); ok && v != "" {
		c.Content.WikiBase = v
	}
	if v, ok := lookup(EnvAudio); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvAudio, v, err)
		}
		c.Audio.Enabled = enabled
	}
	if v, ok := lookup(EnvVolume); ok && v != "" {
		// 0-100 converted to 0.0-1.0
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvVolume, v, err)
		}
		c.Audio.MasterVolume = min(max(float64(pct)/100, 0), 1)
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	return nil
}

// Validate checks every section and wraps the joined failures in ErrInvalid
func (c Config) Validate() error {
	var errs []error
	add := func(section string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
	}
	add("layout", c.Layout.Validate())
	add("session", c.Engine().Validate())
	add("audio", c.Audio.Validate())
	add("content", c.Content.Validate())
	add("render", validMetrics(c.Render.Metrics))
	add("server", validMetrics(c.Server.Metrics))

	if c.Session.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("session: tick interval must be positive, got %v", c.Session.TickInterval))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render: cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight))
	}
	if c.Input.HoldInitial <= 0 || c.Input.HoldRepeat <= 0 {
		errs = append(errs, fmt.Errorf("input: hold windows must be positive, got %v and %v", c.Input.HoldInitial, c.Input.HoldRepeat))
	}
	if c.Server.Addr == "" || c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("server: need an address and a positive upload limit"))
	}
	if _, err := c.Keymap(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func validMetrics(m string) error {
	switch m {
	case MetricsMono, MetricsFont:
		return nil
	}
	return fmt.Errorf("unknown metrics %q, want %q or %q", m, MetricsMono, MetricsFont)
}

// Engine projects the session, camera and physics sections onto engine.Config
func (c Config) Engine() engine.Config {
	return engine.Config{
		Start:       c.Session.Start,
		StartPos:    vmath.Vec2{X: c.Session.StartX, Y: c.Session.StartY},
		BodyWidth:   parameter.BodyWidth,
		BodyHeight:  parameter.BodyHeight,
		Physics:     c.Physics,
		CameraSlack: c.Camera.Slack,
		CullRadius:  c.Camera.CullRadius,
		FallLimit:   c.Session.FallLimit,
		Seed:        c.Session.Seed,
		TrailLength: c.Session.TrailLength,
	}
}

// Keymap merges the [keys] overrides over the default bindings
func (c Config) Keymap() (*input.Keymap, error) {
	base := input.DefaultKeymap()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.ParseBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeymap(base, override), nil
}

// Measurer builds the word measurer named by metrics; the closer releases font faces
func Measurer(metrics string) (layout.Measurer, io.Closer) {
	if strings.EqualFold(metrics, MetricsFont) {
		fc := layout.NewFontCache()
		return fc, fc
	}
	return layout.MonoMeasurer{}, nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
