package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

func TestRank_FindsClosestPeer(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"A": "cloud computing software",
		"B": "steel manufacturing",
		"C": "enterprise cloud software",
	}

	matches := Rank("cloud computing software", corpus, "A", 1)
	require.Len(t, matches, 1)
	assert.Equal(t, "C", matches[0].Ticker)
	assert.Greater(t, matches[0].Score, 0.0)

	full := Rank("cloud computing software", corpus, "A", 10)
	require.Len(t, full, 2)
	assert.Equal(t, "C", full[0].Ticker)
	assert.Equal(t, "B", full[1].Ticker)
	assert.Greater(t, full[0].Score, full[1].Score)
	assert.InDelta(t, 0.0, full[1].Score, 1e-9, "no shared vocabulary means near-zero similarity")
}

func TestRank_ExcludesTarget(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"A": "cloud computing software",
		"C": "enterprise cloud software",
	}
	for _, m := range Rank("cloud computing software", corpus, "A", 10) {
		assert.NotEqual(t, "A", m.Ticker)
	}
}

func TestRank_TargetInCorpusReusesEntry(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"A": "cloud computing software",
		"B": "steel manufacturing",
		"C": "enterprise cloud software",
	}
	// The supplied description is ignored when the target has a corpus
	// entry, so the result matches the entry's text, not this one.
	matches := Rank("completely unrelated text about farming", corpus, "A", 1)
	require.Len(t, matches, 1)
	assert.Equal(t, "C", matches[0].Ticker)
}

func TestRank_TargetNotInCorpus(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"B": "steel manufacturing",
		"C": "enterprise cloud software",
	}
	matches := Rank("cloud computing software", corpus, "ZZZ", 10)
	require.Len(t, matches, 2)
	assert.Equal(t, "C", matches[0].Ticker)
}

func TestRank_TruncatesToAvailable(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"A": "cloud computing",
		"B": "cloud storage",
	}
	matches := Rank("cloud services", corpus, "", 10)
	assert.Len(t, matches, 2, "fewer entries than topN returns all available")

	matches = Rank("cloud services", corpus, "", 1)
	assert.Len(t, matches, 1)
}

func TestRank_OrderedNonIncreasing(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"A": "cloud computing software platform",
		"B": "cloud software",
		"C": "steel manufacturing",
		"D": "cloud computing",
	}
	matches := Rank("cloud computing software", corpus, "", 10)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Rank("cloud computing", model.DescriptionCorpus{}, "A", 10))
	assert.Empty(t, Rank("cloud computing", nil, "A", 10))
}

func TestRank_EmptyTargetDescription(t *testing.T) {
	corpus := model.DescriptionCorpus{"B": "steel manufacturing"}
	assert.Empty(t, Rank("", corpus, "A", 10))
}

func TestRank_Deterministic(t *testing.T) {
	corpus := model.DescriptionCorpus{
		"B": "steel manufacturing",
		"D": "steel manufacturing",
		"C": "steel manufacturing",
	}
	first := Rank("steel manufacturing", corpus, "", 10)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Rank("steel manufacturing", corpus, "", 10))
	}
	// Exact ties keep sorted corpus order.
	require.Len(t, first, 3)
	assert.Equal(t, "B", first[0].Ticker)
	assert.Equal(t, "C", first[1].Ticker)
	assert.Equal(t, "D", first[2].Ticker)
}

func TestTokenize_DropsStopWordsAndShortTokens(t *testing.T) {
	tokens := tokenize("The Company designs, and sells a range of AI chips.")
	assert.Equal(t, []string{"company", "designs", "sells", "range", "ai", "chips"}, tokens)
}
