package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"StockScope/internal/model"
)

// barRow is one daily bar as the provider reports it. All value fields are
// optional; normalization decides what absence means.
type barRow struct {
	Date     string   `json:"date"`
	Open     *float64 `json:"open"`
	Close    *float64 `json:"close"`
	AdjClose *float64 `json:"adjClose"`
	Volume   *float64 `json:"volume"`
}

// The provider answers a single-ticker bar request in one of two known
// shapes: a flat row list, or a two-level map keyed by ticker. decodeBarRows
// handles both exhaustively and returns the rows for the requested ticker.
func decodeBarRows(body []byte, ticker string) ([]barRow, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &NoDataError{Ticker: ticker, Detail: "empty response"}
	}
	switch trimmed[0] {
	case '[':
		var rows []barRow
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("decode flat bars: %w", err)
		}
		return rows, nil
	case '{':
		var keyed map[string][]barRow
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, fmt.Errorf("decode keyed bars: %w", err)
		}
		if rows, ok := keyed[ticker]; ok {
			return rows, nil
		}
		// Single-ticker request: accept the sole entry whatever its key.
		if len(keyed) == 1 {
			for _, rows := range keyed {
				return rows, nil
			}
		}
		return nil, &NoDataError{Ticker: ticker, Detail: "ticker key absent from keyed response"}
	default:
		return nil, fmt.Errorf("decode bars: unrecognized payload")
	}
}

// normalizeBars converts provider rows into the canonical PriceSeries:
// dates parsed and strictly increasing, duplicates dropped, adjusted close
// always populated. A row with close but no adjusted close substitutes
// close rather than failing.
func normalizeBars(ticker string, rows []barRow, fetchedAt time.Time) (*model.PriceSeries, error) {
	if len(rows) == 0 {
		return nil, &NoDataError{Ticker: ticker, Detail: "empty result for range"}
	}

	bars := make([]model.PriceBar, 0, len(rows))
	for _, r := range rows {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("parse bar date %q: %w", r.Date, err)
		}
		adj := r.AdjClose
		if adj == nil {
			adj = r.Close
		}
		if adj == nil {
			return nil, &MissingFieldError{Ticker: ticker, Field: "adjClose"}
		}
		bar := model.PriceBar{Date: date, AdjClose: *adj}
		if r.Open != nil {
			bar.Open = *r.Open
		}
		if r.Close != nil {
			bar.Close = *r.Close
		} else {
			bar.Close = *adj
		}
		if r.Volume != nil {
			bar.Volume = *r.Volume
		}
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	deduped := bars[:0]
	for _, b := range bars {
		if len(deduped) > 0 && !b.Date.After(deduped[len(deduped)-1].Date) {
			continue
		}
		deduped = append(deduped, b)
	}

	return &model.PriceSeries{Ticker: ticker, Bars: deduped, FetchedAt: fetchedAt}, nil
}

// FetchPriceSeries requests daily bars over [start, end] and normalizes them.
// Results are cached per (ticker, range) for PriceTTL.
func (g *Gateway) FetchPriceSeries(ticker string, start, end time.Time) (*model.PriceSeries, error) {
	ticker = model.NormalizeTicker(ticker)
	key := fmt.Sprintf("prices|%s|%s|%s", ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if v, ok := g.cache.get(key); ok {
		return v.(*model.PriceSeries), nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&start=%s&end=%s",
		g.BaseURL, ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
	body, err := g.getBody(endpoint)
	if err != nil {
		return nil, err
	}

	rows, err := decodeBarRows(body, ticker)
	if err != nil {
		return nil, err
	}
	series, err := normalizeBars(ticker, rows, time.Now())
	if err != nil {
		return nil, err
	}

	g.cache.put(key, series, g.PriceTTL)
	return series, nil
}
