package markup

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Config collects the tunables of the engine.
type Config struct {
	Subdivide SubdivideOpts `toml:"subdivide"`
	Batch     BatchOpts     `toml:"batch"`
}

// DefaultConfig returns the configuration the engine uses when none is
// given.
func DefaultConfig() Config {
	return Config{
		Subdivide: DefaultSubdivideOpts,
	}
}

// Validate reports the first out of range value, wrapped in
// [ErrInvalidConfig].
func (c Config) Validate() error {
	switch {
	case c.Subdivide.MaxDepth < 0:
		return fmt.Errorf("%w: subdivide.max_depth %d is negative", ErrInvalidConfig, c.Subdivide.MaxDepth)
	case c.Subdivide.MinAngleDelta < 0:
		return fmt.Errorf("%w: subdivide.min_angle_delta %g is negative", ErrInvalidConfig, c.Subdivide.MinAngleDelta)
	case c.Subdivide.MinLength < 0:
		return fmt.Errorf("%w: subdivide.min_length %g is negative", ErrInvalidConfig, c.Subdivide.MinLength)
	case !(c.Subdivide.MaxLength > 0):
		return fmt.Errorf("%w: subdivide.max_length %g must be positive", ErrInvalidConfig, c.Subdivide.MaxLength)
	}
	return nil
}

// LoadConfig decodes a TOML configuration from r. Keys missing from r keep
// the values of [DefaultConfig]; unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
