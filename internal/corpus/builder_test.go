package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

// fakeFetcher returns canned fundamentals per ticker for builder tests.
type fakeFetcher struct {
	descriptions map[string]string // ticker -> description; "" means fetched but empty
	failing      map[string]bool
}

func (f *fakeFetcher) FetchFundamentals(ticker string) (*model.FundamentalsSnapshot, bool) {
	if f.failing[ticker] {
		return nil, false
	}
	desc, ok := f.descriptions[ticker]
	if !ok {
		return nil, false
	}
	snap := &model.FundamentalsSnapshot{Ticker: ticker}
	if desc != "" {
		snap.BusinessSummary = &desc
	}
	return snap, true
}

func TestBuild_PartialResults(t *testing.T) {
	fetcher := &fakeFetcher{
		descriptions: map[string]string{
			"AAPL": "consumer electronics",
			"MSFT": "software and cloud",
			"XYZ":  "",
		},
		failing: map[string]bool{"FAIL": true},
	}
	b := NewBuilder(fetcher)

	corpus, report := b.Build([]string{"aapl", "MSFT", "XYZ", "FAIL"}, nil)

	assert.Equal(t, model.DescriptionCorpus{
		"AAPL": "consumer electronics",
		"MSFT": "software and cloud",
	}, corpus)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Fetched)
	assert.Equal(t, 1, report.EmptyDescription)
	assert.Equal(t, 1, report.FetchFailed)
	require.Len(t, report.Items, 4)
	assert.Equal(t, OutcomeEmptyDescription, report.Items[2].Outcome)
	assert.Equal(t, OutcomeFetchFailed, report.Items[3].Outcome)
}

func TestBuild_ProgressAfterEveryTicker(t *testing.T) {
	fetcher := &fakeFetcher{
		descriptions: map[string]string{"AAPL": "consumer electronics"},
		failing:      map[string]bool{"FAIL": true},
	}
	b := NewBuilder(fetcher)

	type call struct {
		completed, total int
		ticker           string
	}
	var calls []call
	b.Build([]string{"AAPL", "FAIL"}, func(completed, total int, ticker string) {
		calls = append(calls, call{completed, total, ticker})
	})

	// Progress fires for failures too, so a slow full-universe build stays
	// responsive.
	require.Len(t, calls, 2)
	assert.Equal(t, call{1, 2, "AAPL"}, calls[0])
	assert.Equal(t, call{2, 2, "FAIL"}, calls[1])
}

func TestBuild_EmptyUniverse(t *testing.T) {
	b := NewBuilder(&fakeFetcher{})
	corpus, report := b.Build(nil, nil)
	assert.Empty(t, corpus)
	assert.Equal(t, 0, report.Total)
}
