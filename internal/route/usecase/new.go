package usecase

import (
	"time"

	"delivery-route-optimizer/internal/route"
	pkgLog "delivery-route-optimizer/pkg/log"
)

// Config is the immutable coordinator configuration. Passed in at
// construction; never mutated afterwards, so concurrent requests need
// no locking.
type Config struct {
	Limits route.Limits

	// Time-estimate heuristic
	BaseStopMinutes int
	SpreadFactor    float64

	// Reasoner call policy: one bounded call, at most one retry.
	ReasonerTimeout time.Duration
	ReasonerBackoff time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseStopMinutes <= 0 {
		c.BaseStopMinutes = 25
	}
	if c.SpreadFactor < 1 {
		c.SpreadFactor = 1.4
	}
	if c.ReasonerTimeout <= 0 {
		c.ReasonerTimeout = 5 * time.Second
	}
	if c.ReasonerBackoff <= 0 {
		c.ReasonerBackoff = 500 * time.Millisecond
	}
	return c
}

type implUseCase struct {
	l        pkgLog.Logger
	reasoner route.Reasoner
	cfg      Config
}

// New creates the route ranking coordinator. A nil reasoner is allowed:
// the engine then always answers with the deterministic baseline.
func New(l pkgLog.Logger, reasoner route.Reasoner, cfg Config) *implUseCase {
	return &implUseCase{
		l:        l,
		reasoner: reasoner,
		cfg:      cfg.withDefaults(),
	}
}
