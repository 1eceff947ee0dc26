package engine

import "github.com/kjk/flex"

// Config is the engine configuration shared by every node created from it.
// It is built once and referenced, never owned, by handles.
type Config struct {
	cfg *flex.Config
}

// NewConfig creates an engine configuration.
// A scale of 0 disables rounding to the pixel grid.
func NewConfig(pointScaleFactor float64, webFlexBasis bool) *Config {
	cfg := flex.NewConfig()
	cfg.SetExperimentalFeatureEnabled(flex.ExperimentalFeatureWebFlexBasis, webFlexBasis)
	cfg.SetPointScaleFactor(float32(pointScaleFactor))
	return &Config{cfg: cfg}
}

// PointScaleFactor returns the pixels-per-point factor used for rounding.
func (c *Config) PointScaleFactor() float64 {
	return float64(c.cfg.PointScaleFactor)
}

// WebFlexBasis reports whether the web flex-basis behaviour is enabled.
func (c *Config) WebFlexBasis() bool {
	return c.cfg.IsExperimentalFeatureEnabled(flex.ExperimentalFeatureWebFlexBasis)
}
