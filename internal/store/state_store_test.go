package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"baseconv/internal/domain"
	"baseconv/internal/store"
)

func TestStateFileStore_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	var states domain.StateStore = store.NewStateFileStore(t.TempDir())

	_, ok, err := states.LoadState(ctx)
	require.NoError(t, err)
	require.False(t, ok, "fresh store should report no saved state")

	want := domain.WidgetState{Value: "ff", From: domain.Hexadecimal, To: domain.Binary, Result: "11111111"}
	require.NoError(t, states.SaveState(ctx, want))

	got, ok, err := states.LoadState(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestStateFileStore_FileModeAndNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	s := store.NewStateFileStore(dir)
	require.NoError(t, s.SaveState(context.Background(), domain.DefaultWidgetState()))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStateFileStore_CorruptFile_Fails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte(`{"from":"b3"}`), 0o600))

	_, _, err := store.NewStateFileStore(dir).LoadState(context.Background())
	require.ErrorContains(t, err, `unknown base "b3"`)
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemoryStore()

	_, ok, err := m.LoadState(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	st := domain.WidgetState{Value: "7", From: domain.Octal, To: domain.Decimal}
	require.NoError(t, m.SaveState(ctx, st))

	got, ok, err := m.LoadState(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, st, got)
}

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, store.WriteFileAtomic(path, []byte("one"), 0o644))
	require.NoError(t, store.WriteFileAtomic(path, []byte("two"), 0o644))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "two", string(b))
}
