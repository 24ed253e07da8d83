// Package save is the gateway for committing workbook changes to disk.
// The live store file sits in a cloud-synced directory and can be
// locked or clobbered by the sync client at any moment, so writes go
// through a temp file in a different directory, get copied (never
// renamed) over the live path, and are verified by re-reading the row
// counts afterwards. Lock contention retries with backoff; a write
// that cannot be verified is reported, not raised.
package save

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openfield/dealflow/pkg/errors"
	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/retry"
	"github.com/openfield/dealflow/pkg/store"
)

// Mutator applies changes to a freshly loaded workbook and reports
// whether anything changed. It must not touch the filesystem.
type Mutator func(*store.Workbook) (bool, error)

// Gateway serializes workbook writes against an unreliable store file.
type Gateway struct {
	lockPolicy   retry.Policy
	verifyPolicy retry.Policy
	tempDir      string
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLockPolicy overrides the lock-contention retry policy.
func WithLockPolicy(p retry.Policy) Option {
	return func(g *Gateway) { g.lockPolicy = p }
}

// WithVerifyPolicy overrides the post-write verification policy.
func WithVerifyPolicy(p retry.Policy) Option {
	return func(g *Gateway) { g.verifyPolicy = p }
}

// WithTempDir overrides where temp files are staged. It should be on a
// different path from the live store so the sync client never sees the
// half-written file.
func WithTempDir(dir string) Option {
	return func(g *Gateway) { g.tempDir = dir }
}

// New creates a Gateway with the standard policies: three attempts
// with 5s doubling backoff on lock contention, and three verification
// re-attempts 5s apart.
func New(opts ...Option) *Gateway {
	g := &Gateway{
		lockPolicy:   retry.DefaultPolicy(),
		verifyPolicy: retry.FixedPolicy(3, 5*time.Second),
		tempDir:      os.TempDir(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Write loads the store at path, applies mutate, and commits the
// result. Returns whether a write happened. A mutator reporting no
// changes short-circuits with (false, nil). A commit that survives
// lock retries but cannot be verified returns (false, ErrNotWritten).
func (g *Gateway) Write(ctx context.Context, path string, mutate Mutator) (bool, error) {
	didWrite := false
	err := g.verifyPolicy.Do(ctx, func() error {
		wrote, err := g.writeOnce(ctx, path, mutate)
		if err != nil {
			return err
		}
		didWrite = wrote
		return nil
	}, func(err error) bool {
		// Only a failed verification re-runs the whole write.
		return errors.IsVerifyFailure(err)
	})
	if err != nil {
		if errors.IsVerifyFailure(err) {
			logging.Error().Str("path", path).Err(err).Msg("write could not be verified")
			return false, fmt.Errorf("%w: %v", errors.ErrNotWritten, err)
		}
		return false, err
	}
	return didWrite, nil
}

// writeOnce performs a single load-mutate-commit-verify cycle. Lock
// contention during load or commit is retried inside this cycle.
func (g *Gateway) writeOnce(ctx context.Context, path string, mutate Mutator) (bool, error) {
	var expected map[string]int
	wrote := false

	err := g.lockPolicy.Do(ctx, func() error {
		wb, err := store.Load(path)
		if err != nil {
			return err
		}
		changed, err := mutate(wb)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		data, err := store.Marshal(wb)
		if err != nil {
			return err
		}
		if err := g.commit(path, data); err != nil {
			return err
		}
		expected = store.RowCounts(wb)
		wrote = true
		return nil
	}, errors.IsLockContention)
	if err != nil {
		return false, err
	}
	if !wrote {
		return false, nil
	}

	if err := g.verify(path, expected); err != nil {
		return false, err
	}
	logging.Debug().Str("path", path).Msg("store write verified")
	return true, nil
}

// commit stages the serialized workbook in the temp directory, then
// copies it over the live path. Copy rather than rename: a rename
// swaps the inode and confuses sync clients mid-upload, a copy leaves
// the live file's identity alone.
func (g *Gateway) commit(path string, data []byte) error {
	tmp, err := os.CreateTemp(g.tempDir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", g.tempDir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("write", tmpPath, err)
	}

	staged, err := os.ReadFile(tmpPath)
	if err != nil {
		return errors.WrapIO("read", tmpPath, err)
	}
	if err := os.WriteFile(path, staged, 0o644); err != nil {
		if os.IsPermission(err) {
			return errors.NewLockError(path, err)
		}
		return errors.WrapIO("copy", path, err)
	}
	return nil
}

// verify re-reads the live file and checks that no table lost rows
// against the just-written state. Missing rows mean an external
// process clobbered the file between commit and now.
func (g *Gateway) verify(path string, expected map[string]int) error {
	wb, err := store.Load(path)
	if err != nil {
		return err
	}
	actual := store.RowCounts(wb)
	for table, want := range expected {
		if got := actual[table]; got < want {
			logging.Warn().
				Str("path", path).
				Str("table", table).
				Int("expected", want).
				Int("found", got).
				Msg("rows missing after write")
			return fmt.Errorf("table %q: %w: %d of %d rows after write", table, errors.ErrVerifyFailed, got, want)
		}
	}
	return nil
}
