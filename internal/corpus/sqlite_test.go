package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	saved := model.DescriptionCorpus{
		"AAPL": "consumer electronics and services",
		"MSFT": "software, cloud, and productivity",
	}
	require.NoError(t, store.Save(saved))
	assert.Equal(t, saved, store.Load())
}

func TestSQLiteStore_SaveReplacesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(model.DescriptionCorpus{"AAPL": "old", "MSFT": "old"}))
	require.NoError(t, store.Save(model.DescriptionCorpus{"NVDA": "graphics and accelerated computing"}))

	assert.Equal(t, model.DescriptionCorpus{"NVDA": "graphics and accelerated computing"}, store.Load())
}

func TestSQLiteStore_LoadSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(model.DescriptionCorpus{"AAPL": "consumer electronics"}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, model.DescriptionCorpus{"AAPL": "consumer electronics"}, reopened.Load())
}

func TestSQLiteStore_FreshDatabaseLoadsEmpty(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer store.Close()
	assert.Empty(t, store.Load())
}

func TestNoopStore(t *testing.T) {
	store := NewNoopStore()
	assert.Empty(t, store.Load())
	assert.NoError(t, store.Save(model.DescriptionCorpus{"AAPL": "x"}))
	assert.Empty(t, store.Load())
	assert.NoError(t, store.Close())
}
