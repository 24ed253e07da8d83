package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil))
}

func TestContextFieldHelpers(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithTable(ctx, "Occupational Comps")
	ctx = WithOperation(ctx, "sweep")

	FromContext(ctx).Info().Msg("pass complete")

	assert.True(t, tl.Contains(`"table":"Occupational Comps"`))
	assert.True(t, tl.Contains(`"operation":"sweep"`))
	assert.True(t, tl.Contains("pass complete"))
}
