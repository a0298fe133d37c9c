package corpus

import (
	"StockScope/internal/model"
)

// FundamentalsFetcher is the slice of the gateway the builder depends on.
type FundamentalsFetcher interface {
	FetchFundamentals(ticker string) (*model.FundamentalsSnapshot, bool)
}

// Outcome classifies what happened for one ticker during a build.
type Outcome string

const (
	OutcomeFetched          Outcome = "fetched"
	OutcomeEmptyDescription Outcome = "empty_description"
	OutcomeFetchFailed      Outcome = "fetch_failed"
)

// ItemResult records the build outcome for a single ticker.
type ItemResult struct {
	Ticker  string  `json:"ticker"`
	Outcome Outcome `json:"outcome"`
}

// BuildReport accumulates per-ticker results so callers can tell an
// upstream outage apart from genuinely missing descriptions.
type BuildReport struct {
	Total            int          `json:"total"`
	Fetched          int          `json:"fetched"`
	EmptyDescription int          `json:"empty_description"`
	FetchFailed      int          `json:"fetch_failed"`
	Items            []ItemResult `json:"items"`
}

func (r *BuildReport) add(ticker string, outcome Outcome) {
	r.Items = append(r.Items, ItemResult{Ticker: ticker, Outcome: outcome})
	switch outcome {
	case OutcomeFetched:
		r.Fetched++
	case OutcomeEmptyDescription:
		r.EmptyDescription++
	case OutcomeFetchFailed:
		r.FetchFailed++
	}
}

// ProgressFunc is invoked after each ticker, successful or not.
type ProgressFunc func(completed, total int, ticker string)

// Builder incrementally fetches business descriptions for a ticker universe.
type Builder struct {
	Fetcher FundamentalsFetcher
}

// NewBuilder creates a Builder on top of a fundamentals fetcher.
func NewBuilder(fetcher FundamentalsFetcher) *Builder {
	return &Builder{Fetcher: fetcher}
}

// Build walks the given tickers in order and collects every non-empty
// business description. It never fails as a whole: a ticker that cannot be
// fetched is recorded in the report and skipped. Whether to pass a bounded
// prefix of the universe or all of it is the caller's choice.
func (b *Builder) Build(tickers []string, onProgress ProgressFunc) (model.DescriptionCorpus, *BuildReport) {
	corpus := make(model.DescriptionCorpus, len(tickers))
	report := &BuildReport{Total: len(tickers)}

	for i, raw := range tickers {
		ticker := model.NormalizeTicker(raw)

		snap, ok := b.Fetcher.FetchFundamentals(ticker)
		switch {
		case !ok:
			report.add(ticker, OutcomeFetchFailed)
		case snap.Description() == "":
			report.add(ticker, OutcomeEmptyDescription)
		default:
			corpus[ticker] = snap.Description()
			report.add(ticker, OutcomeFetched)
		}

		if onProgress != nil {
			onProgress(i+1, len(tickers), ticker)
		}
	}

	return corpus, report
}
