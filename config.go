package pointsample

import (
	_ "embed"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds settings for a Sampler.
// Count, NumCandidates & MinDist are defaults; they can be overridden
// per call via Params.
type Config struct {
	// Width & Height of the domain [0, Width] x [0, Height], required
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Method used when none is given (see ParseMethod)
	Method Method `yaml:"method"`

	// Count of points for Random & BestCandidate
	Count int `yaml:"count"`

	// NumCandidates tried per point for BestCandidate & Bridson
	NumCandidates int `yaml:"num_candidates"`

	// MinDist (r) between points for Bridson
	MinDist float64 `yaml:"min_dist"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `yaml:"seed"`

	// Quantize rounds every point up to integer co-ords once sampled,
	// regardless of method.
	Quantize bool `yaml:"quantize"`

	// MaxPoints, MaxRejections see Limits (0 uses DefaultLimits)
	MaxPoints     int `yaml:"max_points"`
	MaxRejections int `yaml:"max_rejections"`
}

// DefaultConfig returns the embedded default configuration (800x525 domain).
func DefaultConfig() *Config {
	cfg, err := ParseConfig(nil)
	if err != nil {
		// the embedded defaults are fixed at build time
		panic(err)
	}
	return cfg
}

// ParseConfig reads YAML over the top of the default configuration.
// Any field not present in data keeps its default.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing default config")
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the YAML configuration at the given path.
func LoadConfig(fpath string) (*Config, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", fpath)
	}
	return ParseConfig(data)
}

// Domain returns the configured sampling rectangle.
func (c *Config) Domain() Domain {
	return Domain{Width: c.Width, Height: c.Height}
}

// Limits returns the configured Bridson safety limits, unset fields
// taking their DefaultLimits value.
func (c *Config) Limits() *Limits {
	l := &Limits{MaxPoints: c.MaxPoints, MaxRejections: c.MaxRejections}
	return l.withDefaults()
}

// Params returns the configured default parameters.
func (c *Config) Params() Params {
	return Params{Count: Int(c.Count), NumCandidates: c.NumCandidates, MinDist: c.MinDist}
}

// Validate checks the configuration can be used by a Sampler.
// Per-method parameters are checked by the samplers themselves.
func (c *Config) Validate() error {
	if err := c.Domain().Validate(); err != nil {
		return err
	}
	if c.Method != "" {
		if _, err := ParseMethod(string(c.Method)); err != nil {
			return err
		}
	}
	if c.Count < 0 {
		return errors.Wrapf(ErrInvalidParameter, "count %d", c.Count)
	}
	if c.NumCandidates < 0 {
		return errors.Wrapf(ErrInvalidParameter, "num_candidates %d", c.NumCandidates)
	}
	if c.MinDist < 0 || math.IsNaN(c.MinDist) {
		return errors.Wrapf(ErrInvalidParameter, "min_dist %g", c.MinDist)
	}
	return nil
}
