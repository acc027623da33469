// Package pcpptcconfig loads pcpptc.Config and pcpptclog.Config from
// defaults, an optional YAML file, and environment variables, in that
// priority order.
package pcpptcconfig

import (
	"errors"

	"github.com/covertour/pcpptc/pcpptc"
	"github.com/covertour/pcpptc/pcpptclog"
	"github.com/covertour/pcpptc/simplex"
	"github.com/covertour/pcpptc/strips"
)

// ErrUnknownStrategy indicates Strategy names a strip strategy this
// module does not ship.
var ErrUnknownStrategy = errors.New("pcpptcconfig: unknown strip strategy")

// Config is the serializable, file/env-loadable counterpart of
// pcpptc.Config: the solver and strategy are named by string here and
// resolved to concrete implementations by Build.
type Config struct {
	Strategy string `koanf:"strategy"`
	K        int    `koanf:"k"`
	R        int    `koanf:"r"`

	IntegralizeDepth int `koanf:"integralize_depth"`

	CycleCoverOptSteps int `koanf:"cycle_cover_opt_steps"`
	CycleCoverOptSize  int `koanf:"cycle_cover_opt_size"`
	TourOptSteps       int `koanf:"tour_opt_steps"`
	TourOptSize        int `koanf:"tour_opt_size"`

	Log pcpptclog.Config `koanf:"log"`
}

// Validate checks that every field names something this module can
// build; it does not re-check pipeline-specific bounds pcpptc.Solve
// itself already handles gracefully (e.g. K or R of zero just yields
// narrower strip sets).
func (c Config) Validate() error {
	switch c.Strategy {
	case "equiangular", "neighbor_adaptive":
		return nil
	default:
		return ErrUnknownStrategy
	}
}

// Build resolves c into a pcpptc.Config, filling the solver and matching
// oracle with this module's defaults (neither is currently file/env
// configurable, since no pack dependency ships alternate LP or matching
// backends to choose between).
func (c Config) Build() (pcpptc.Config, error) {
	if err := c.Validate(); err != nil {
		return pcpptc.Config{}, err
	}

	cfg := pcpptc.DefaultConfig()
	cfg.K = c.K
	cfg.R = c.R
	cfg.IntegralizeDepth = c.IntegralizeDepth
	cfg.CycleCoverOptSteps = c.CycleCoverOptSteps
	cfg.CycleCoverOptSize = c.CycleCoverOptSize
	cfg.TourOptSteps = c.TourOptSteps
	cfg.TourOptSize = c.TourOptSize
	cfg.Solver = simplex.NewTwoPhase()

	switch c.Strategy {
	case "neighbor_adaptive":
		cfg.Strategy = strips.NeighborAdaptive{}
	default:
		cfg.Strategy = strips.Equiangular{}
	}

	return cfg, nil
}
