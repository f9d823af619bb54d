package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFileAndDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := createTestStore(t)

	id, err := store.SaveRun(100, 12, 3, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = store.SaveRun(50, 3, 2, 43)
	require.NoError(t, err)
	_, err = store.SaveRun(200, 30, 5, 44)
	require.NoError(t, err)

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Sorted by score descending
	assert.Equal(t, 200, runs[0].Score)
	assert.Equal(t, 100, runs[1].Score)
	assert.Equal(t, 50, runs[2].Score)

	assert.Equal(t, 30, runs[0].Coins)
	assert.Equal(t, 5, runs[0].LevelReached)
	assert.Equal(t, int64(44), runs[0].Seed)
}

func TestTopRunsRespectsLimit(t *testing.T) {
	store := createTestStore(t)

	for i := 0; i < 8; i++ {
		_, err := store.SaveRun(i*10, 0, 1, int64(i))
		require.NoError(t, err)
	}

	runs, err := store.TopRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
	assert.Equal(t, 70, runs[0].Score)
}

func TestTopRunsEmptyStore(t *testing.T) {
	store := createTestStore(t)

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestBestScore(t *testing.T) {
	store := createTestStore(t)

	best, err := store.BestScore()
	require.NoError(t, err)
	assert.Equal(t, 0, best, "empty store has no best score")

	_, err = store.SaveRun(140, 5, 2, 1)
	require.NoError(t, err)
	_, err = store.SaveRun(90, 2, 1, 2)
	require.NoError(t, err)

	best, err = store.BestScore()
	require.NoError(t, err)
	assert.Equal(t, 140, best)
}

func TestRunCountAndClear(t *testing.T) {
	store := createTestStore(t)

	_, err := store.SaveRun(10, 0, 1, 1)
	require.NoError(t, err)
	_, err = store.SaveRun(20, 0, 1, 2)
	require.NoError(t, err)

	count, err := store.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, store.ClearRuns())

	count, err = store.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRunsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(300, 18, 4, 99)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 300, runs[0].Score)
	assert.Equal(t, int64(99), runs[0].Seed)
}
