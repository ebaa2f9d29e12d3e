package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbecker/wortschatz/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndLoad(t *testing.T) {
	st := openTestStore(t)
	repo := st.StatsRepo()
	ctx := context.Background()

	m := stats.Map{
		"l1": {Correct: 3, Wrong: 1, Completed: 1},
		"l2": {Correct: 5},
	}
	require.NoError(t, repo.Save(ctx, "ru-de", m))

	got, err := repo.Load(ctx, "ru-de")
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestLoadUnknownPairIsEmpty(t *testing.T) {
	st := openTestStore(t)

	got, err := st.StatsRepo().Load(context.Background(), "fr-es")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveUpserts(t *testing.T) {
	st := openTestStore(t)
	repo := st.StatsRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ru-de", stats.Map{"l1": {Correct: 1}}))
	require.NoError(t, repo.Save(ctx, "ru-de", stats.Map{"l1": {Correct: 4, Wrong: 2}}))

	got, err := repo.Load(ctx, "ru-de")
	require.NoError(t, err)
	assert.Equal(t, stats.Stat{Correct: 4, Wrong: 2}, got["l1"])
}

func TestClearIsPairScoped(t *testing.T) {
	st := openTestStore(t)
	repo := st.StatsRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ru-de", stats.Map{"l1": {Correct: 2}}))
	require.NoError(t, repo.Save(ctx, "de-en", stats.Map{"x1": {Wrong: 3}}))

	require.NoError(t, repo.Clear(ctx, "ru-de"))

	gone, err := repo.Load(ctx, "ru-de")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.Load(ctx, "de-en")
	require.NoError(t, err)
	assert.Equal(t, stats.Stat{Wrong: 3}, kept["x1"])
}

func TestPairKeys(t *testing.T) {
	st := openTestStore(t)
	repo := st.StatsRepo()
	ctx := context.Background()

	keys, err := repo.PairKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, repo.Save(ctx, "ru-de", stats.Map{"l1": {Correct: 1}}))
	require.NoError(t, repo.Save(ctx, "de-en", stats.Map{"x1": {Correct: 1}}))

	keys, err = repo.PairKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"de-en", "ru-de"}, keys)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.StatsRepo().Save(context.Background(), "ru-de", stats.Map{"l1": {Correct: 1}}))
	require.NoError(t, st.Close())

	// Reopening the same file keeps existing data.
	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	got, err := st2.StatsRepo().Load(context.Background(), "ru-de")
	require.NoError(t, err)
	assert.Equal(t, 1, got["l1"].Correct)
}
