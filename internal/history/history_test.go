// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := Run{
		Mode:       ModeGenerate,
		StartedAt:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Duration:   2 * time.Second,
		FileCount:  150,
		TotalBytes: 1 << 20,
		OutputPath: "/tmp/out",
	}
	second := Run{
		Mode:       ModeCleanup,
		StartedAt:  time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC),
		Duration:   300 * time.Millisecond,
		FileCount:  150,
		OutputPath: "/tmp/out",
	}

	firstID, err := store.Record(ctx, first)
	require.NoError(t, err)
	require.NotEmpty(t, firstID)

	secondID, err := store.Record(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.Equal(t, secondID, runs[0].ID)
	assert.Equal(t, ModeCleanup, runs[0].Mode)
	assert.Equal(t, firstID, runs[1].ID)
	assert.Equal(t, ModeGenerate, runs[1].Mode)
	assert.Equal(t, 150, runs[1].FileCount)
	assert.Equal(t, int64(1<<20), runs[1].TotalBytes)
	assert.Equal(t, first.StartedAt, runs[1].StartedAt)
	assert.Equal(t, 2*time.Second, runs[1].Duration)
}

func TestListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, Run{
			Mode:       ModeGenerate,
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FileCount:  i,
			OutputPath: "/tmp/out",
		})
		require.NoError(t, err)
	}

	runs, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 4, runs[0].FileCount)
	assert.Equal(t, 3, runs[1].FileCount)
}

func TestListEmptyLedger(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestReopenExistingLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	_, err = store.Record(context.Background(), Run{
		Mode:       ModeGenerate,
		StartedAt:  time.Now().UTC(),
		FileCount:  1,
		OutputPath: "/tmp/out",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
