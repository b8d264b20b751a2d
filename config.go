package sparks

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the file-level configuration of a particle pool and its presets.
type Config struct {
	Pool    PoolConfig              `toml:"pool" yaml:"pool"`
	Logging LoggingConfig           `toml:"logging" yaml:"logging"`
	Presets map[string]PresetConfig `toml:"presets" yaml:"presets"`
}

type PoolConfig struct {
	Capacity int  `toml:"capacity" yaml:"capacity"`
	Debug    bool `toml:"debug" yaml:"debug"` // per-frame stats at debug level
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // stderr when empty
}

// PresetConfig describes a ParticleType. Times are in seconds.
type PresetConfig struct {
	Width    uint32         `toml:"width" yaml:"width"`
	Height   uint32         `toml:"height" yaml:"height"`
	Lifetime float64        `toml:"lifetime" yaml:"lifetime"`
	Color    []int          `toml:"color" yaml:"color"` // [r, g, b], white when empty
	Effects  []EffectConfig `toml:"effects" yaml:"effects"`
}

// EffectConfig describes one ParticleEffect. Kind selects which of the other
// fields are read.
type EffectConfig struct {
	Kind            string  `toml:"kind" yaml:"kind"`
	Angle           float64 `toml:"angle" yaml:"angle"`                       // constant_rotation
	VelocityX       float64 `toml:"velocity_x" yaml:"velocity_x"`             // linear_movement
	VelocityY       float64 `toml:"velocity_y" yaml:"velocity_y"`             // linear_movement
	AngularVelocity float64 `toml:"angular_velocity" yaml:"angular_velocity"` // linear_rotation
	Delay           float64 `toml:"delay" yaml:"delay"`                       // fade_out
}

// Effect kinds accepted in EffectConfig.Kind.
const (
	KindConstantRotation = "constant_rotation"
	KindLinearMovement   = "linear_movement"
	KindLinearRotation   = "linear_rotation"
	KindFadeOut          = "fade_out"
)

// Library maps preset names to compiled particle types.
type Library map[string]*ParticleType

// LoadConfig reads a .toml, .yaml or .yml file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig parses data in the given format ("toml", "yaml" or "yml")
// over the defaults and validates the pool and logging sections.
func DecodeConfig(data []byte, format string) (*Config, error) {
	cfg := defaults()
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, invalid("sparks.DecodeConfig", "format", "unsupported format %q", format)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Pool: PoolConfig{
			Capacity: 256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Pool.Capacity < 1 {
		return invalid("sparks.Config", "pool.capacity", "must be at least 1, got %d", c.Pool.Capacity)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return invalid("sparks.Config", "logging.format", "unknown format %q", c.Logging.Format)
	}
	return nil
}

// NewState allocates a pool sized by the [pool] section.
func (c *Config) NewState(log *zap.Logger) (*ParticlesState, error) {
	return NewParticlesState(c.Pool.Capacity, WithLogger(log), WithDebug(c.Pool.Debug))
}

// Presets compiles every preset into a ParticleType. Presets are checked in
// name order so the first reported error is stable.
func (c *Config) Presets() (Library, error) {
	lib := make(Library, len(c.Presets))
	for _, name := range slices.Sorted(maps.Keys(c.Presets)) {
		t, err := c.Presets[name].build(name)
		if err != nil {
			return nil, err
		}
		lib[name] = t
	}
	return lib, nil
}

func (p PresetConfig) build(name string) (*ParticleType, error) {
	const op = "sparks.Config.Presets"
	field := "presets." + name
	if p.Lifetime <= 0 {
		return nil, invalid(op, field+".lifetime", "must be positive, got %v", p.Lifetime)
	}
	lifetime := seconds(p.Lifetime)
	b := NewParticleTypeBuilder(p.Width, p.Height, lifetime)

	if len(p.Color) > 0 {
		if len(p.Color) != 3 {
			return nil, invalid(op, field+".color", "want [r, g, b], got %d values", len(p.Color))
		}
		var ch [3]uint8
		for i, v := range p.Color {
			if v < 0 || v > 255 {
				return nil, invalid(op, field+".color", "channel %d out of range: %d", i, v)
			}
			ch[i] = uint8(v)
		}
		b.WithColor(RGB(ch[0], ch[1], ch[2]))
	}

	for i, e := range p.Effects {
		ef := fmt.Sprintf("%s.effects[%d]", field, i)
		switch e.Kind {
		case KindConstantRotation:
			b.WithEffect(ConstantRotation{Angle: e.Angle})
		case KindLinearMovement:
			b.WithEffect(LinearMovement{VelocityX: e.VelocityX, VelocityY: e.VelocityY})
		case KindLinearRotation:
			b.WithEffect(LinearRotation{AngularVelocity: e.AngularVelocity})
		case KindFadeOut:
			if e.Delay < 0 || e.Delay >= p.Lifetime {
				return nil, invalid(op, ef+".delay", "must be in [0, lifetime %v), got %v", p.Lifetime, e.Delay)
			}
			b.WithEffect(FadeOut{Delay: seconds(e.Delay)})
		default:
			return nil, invalid(op, ef+".kind", "unknown effect %q", e.Kind)
		}
	}
	return b.Build(), nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
