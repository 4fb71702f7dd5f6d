// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/spectra"
)

// TableLoader supplies the spectral table for one (metallicity, binaries)
// pair. bpass.Library implements it; tests substitute in-memory tables.
// Implementations must be safe for concurrent use.
type TableLoader interface {
	Load(metallicity string, binaries bool, w bpass.Window) (*spectra.Table, error)
}

// Option customizes a Runner. Constructors panic on meaningless inputs.
type Option func(*runnerConfig)

type runnerConfig struct {
	log     *zap.Logger
	workers int // 0 means cfg.Workers
	loader  TableLoader
	now     func() time.Time
	policy  ErrorPolicy // "" means cfg.OnError
}

func newRunnerConfig(opts ...Option) runnerConfig {
	rc := runnerConfig{
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&rc)
	}

	return rc
}

// WithLogger routes run progress to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("grid: WithLogger(nil)")
	}
	return func(rc *runnerConfig) { rc.log = l }
}

// WithWorkers overrides Config.Workers. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("grid: WithWorkers: n must be ≥ 1, got %d", n))
	}
	return func(rc *runnerConfig) { rc.workers = n }
}

// WithLoader replaces the default loader (Config.Library). Panics on nil.
func WithLoader(l TableLoader) Option {
	if l == nil {
		panic("grid: WithLoader(nil)")
	}
	return func(rc *runnerConfig) { rc.loader = l }
}

// WithClock sets the time source for manifest timestamps. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("grid: WithClock(nil)")
	}
	return func(rc *runnerConfig) { rc.now = now }
}

// WithErrorPolicy overrides Config.OnError. Panics on an unknown policy.
func WithErrorPolicy(p ErrorPolicy) Option {
	if _, err := ParseErrorPolicy(string(p)); err != nil {
		panic(fmt.Sprintf("grid: WithErrorPolicy(%q)", p))
	}
	return func(rc *runnerConfig) { rc.policy = p }
}
