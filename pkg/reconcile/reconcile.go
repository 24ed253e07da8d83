// Package reconcile orchestrates the engine: incoming records are
// normalized, matched against the store, merged or inserted, derived,
// and committed through the persistence gateway. It also hosts the
// batch sweeps that dedup and clean entire tables in place.
package reconcile

import (
	"context"
	"time"

	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/save"
	"github.com/openfield/dealflow/pkg/store"
)

// Reconciler runs reconciliation passes against a store file.
type Reconciler struct {
	gateway *save.Gateway
	clock   func() time.Time
	dryRun  bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithGateway supplies the persistence gateway. Mostly used by tests
// to shorten retry delays.
func WithGateway(g *save.Gateway) Option {
	return func(r *Reconciler) { r.gateway = g }
}

// WithDryRun previews every change without committing anything.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) { r.dryRun = dryRun }
}

// WithClock overrides the time source used by date-sensitive
// derivation rules.
func WithClock(clock func() time.Time) Option {
	return func(r *Reconciler) { r.clock = clock }
}

// New creates a Reconciler with default persistence policies.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		gateway: save.New(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// apply runs the mutator through the gateway, or against a throwaway
// load of the store in dry-run mode so reports stay accurate without
// touching the file.
func (r *Reconciler) apply(ctx context.Context, path string, mutate save.Mutator) (bool, error) {
	if r.dryRun {
		wb, err := store.Load(path)
		if err != nil {
			return false, err
		}
		changed, err := mutate(wb)
		if err != nil {
			return false, err
		}
		if changed {
			logging.FromContext(ctx).Info().Str("path", path).Msg("dry run: changes discarded")
		}
		return false, nil
	}
	return r.gateway.Write(ctx, path, mutate)
}
