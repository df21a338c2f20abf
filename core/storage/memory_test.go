package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinsen-dev/jscpd2025/core"
)

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory()
	_, ok, err := m.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_SetThenGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	rec := core.StoreRecord{SourceID: "a.go", Index: 3}
	require.NoError(t, m.Set(ctx, 42, rec))

	got, ok, err := m.Get(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestMemory_SetOverwritesLastWriterWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, 1, core.StoreRecord{SourceID: "a.go", Index: 0}))
	require.NoError(t, m.Set(ctx, 1, core.StoreRecord{SourceID: "b.go", Index: 5}))

	got, ok, err := m.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b.go", got.SourceID)
	assert.Equal(t, 5, got.Index)
}

func TestMemory_ClosedRejectsOperations(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Close(ctx))

	_, _, err := m.Get(ctx, 1)
	assert.Error(t, err)

	err = m.Set(ctx, 1, core.StoreRecord{})
	assert.Error(t, err)
}

func TestMemory_CloseIsIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Close(ctx))
	assert.NoError(t, m.Close(ctx))
}
