package flexview

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/grindlemire/go-flexview/internal/engine"
)

// Config is the process-wide layout configuration. Every view references one
// Config; the engine configuration inside it is shared by all of their nodes.
type Config struct {
	engine *engine.Config

	pointScaleFactor float64
	webFlexBasis     bool
	applyOnResize    bool
	assertions       bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config) error

// WithPointScaleFactor sets the pixels-per-point factor the engine rounds to.
// Default is 1. Use 0 to disable rounding.
func WithPointScaleFactor(scale float64) ConfigOption {
	return func(c *Config) error {
		if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
			return fmt.Errorf("point scale factor must be a finite value >= 0, got %v", scale)
		}
		c.pointScaleFactor = scale
		return nil
	}
}

// WithWebFlexBasis toggles the engine's web-compatible flex-basis behaviour.
// Default is enabled.
func WithWebFlexBasis(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.webFlexBasis = enabled
		return nil
	}
}

// WithApplyOnResize makes every layout-enabled view re-apply its layout,
// preserving origin, whenever its frame or bounds change.
// Default is disabled.
func WithApplyOnResize(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.applyOnResize = enabled
		return nil
	}
}

// WithAssertions toggles precondition panics for off-thread calls.
// Default is enabled. Misuse that would corrupt the shadow tree always panics.
func WithAssertions(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.assertions = enabled
		return nil
	}
}

// NewConfig creates a configuration. Call it once per process and pass the
// result to views with WithConfig, or install it with SetDefaultConfig.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	c := &Config{
		pointScaleFactor: 1,
		webFlexBasis:     true,
		assertions:       true,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.engine = engine.NewConfig(c.pointScaleFactor, c.webFlexBasis)
	return c, nil
}

// PointScaleFactor returns the pixels-per-point rounding factor.
func (c *Config) PointScaleFactor() float64 {
	return c.pointScaleFactor
}

// WebFlexBasis reports whether web flex-basis behaviour is enabled.
func (c *Config) WebFlexBasis() bool {
	return c.webFlexBasis
}

// ApplyOnResize reports whether frame and bounds changes re-apply layout.
func (c *Config) ApplyOnResize() bool {
	return c.applyOnResize
}

// Assertions reports whether off-thread calls panic.
func (c *Config) Assertions() bool {
	return c.assertions
}

// ErrDefaultConfigInUse is returned when the default configuration is replaced
// after views started using it.
var ErrDefaultConfigInUse = errors.New("flexview: default config already in use")

var (
	defaultMu     sync.Mutex
	defaultConfig *Config
	defaultUsed   bool
)

// SetDefaultConfig installs cfg as the configuration used by views created
// without WithConfig. It must run before the first such view is created.
func SetDefaultConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("flexview: nil config")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultUsed {
		return ErrDefaultConfigInUse
	}
	defaultConfig = cfg
	return nil
}

// DefaultConfig returns the configuration used by views created without
// WithConfig, building the built-in defaults on first use.
func DefaultConfig() *Config {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultConfig == nil {
		cfg, err := NewConfig()
		if err != nil {
			panic("flexview: built-in default config is invalid: " + err.Error())
		}
		defaultConfig = cfg
	}
	defaultUsed = true
	return defaultConfig
}
