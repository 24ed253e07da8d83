package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfield/dealflow/pkg/records"
)

func openMirror(t *testing.T) *Mirror {
	t.Helper()
	m, err := Open(filepath.Join(t.TempDir(), "comps.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	m := openMirror(t)
	ctx := context.Background()

	comps := []records.OccupationalComp{
		{TenantName: "Planetbloom", Address: "Unit 4, Apex II", CompDate: "2023-06-01", RentPA: records.Float64(178_875)},
		{TenantName: "Acme Holdings", Address: "Premier Point", CompDate: "2024-01-15"},
	}
	n, err := m.Upsert(ctx, comps)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Same key again updates in place rather than duplicating.
	comps[0].RentPSF = records.Float64(7.3)
	n, err = m.Upsert(ctx, comps[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	total, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestUpsertSkipsKeylessRows(t *testing.T) {
	m := openMirror(t)

	n, err := m.Upsert(context.Background(), []records.OccupationalComp{
		{TenantName: "", Notes: "vacant unit"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
