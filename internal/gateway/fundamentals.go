package gateway

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"StockScope/internal/model"
)

// fundamentalsPayload mirrors the provider's fundamentals document. Fields
// are frequently missing per ticker, hence pointers throughout.
type fundamentalsPayload struct {
	ShortName         *string  `json:"shortName"`
	TrailingEPS       *float64 `json:"trailingEps"`
	TrailingPE        *float64 `json:"trailingPE"`
	SharesOutstanding *float64 `json:"sharesOutstanding"`
	TotalRevenue      *float64 `json:"totalRevenue"`
	MarketCap         *float64 `json:"marketCap"`
	BusinessSummary   *string  `json:"longBusinessSummary"`
}

// FetchFundamentals returns the current fundamentals snapshot for a ticker.
// It is best-effort: any failure yields (nil, false) rather than an error,
// because missing fundamentals are a frequent, expected outcome.
func (g *Gateway) FetchFundamentals(ticker string) (*model.FundamentalsSnapshot, bool) {
	ticker = model.NormalizeTicker(ticker)
	key := "fundamentals|" + ticker
	if v, ok := g.cache.get(key); ok {
		return v.(*model.FundamentalsSnapshot), true
	}

	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?symbol=%s", g.BaseURL, ticker)
	body, err := g.getBody(endpoint)
	if err != nil {
		log.Printf("[WARN] fundamentals unavailable for %s: %v", ticker, err)
		return nil, false
	}

	var payload fundamentalsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[WARN] fundamentals decode failed for %s: %v", ticker, err)
		return nil, false
	}

	snap := &model.FundamentalsSnapshot{
		Ticker:            ticker,
		ShortName:         payload.ShortName,
		TrailingEPS:       payload.TrailingEPS,
		TrailingPE:        payload.TrailingPE,
		SharesOutstanding: payload.SharesOutstanding,
		TotalRevenue:      payload.TotalRevenue,
		MarketCap:         payload.MarketCap,
		BusinessSummary:   payload.BusinessSummary,
	}
	g.cache.put(key, snap, g.FundamentalsTTL)
	return snap, true
}

// incomePayload mirrors the provider's income-statement document: one entry
// per reported period with a free-form line-item map.
type incomePayload struct {
	Periods []struct {
		PeriodEnd string             `json:"periodEnd"`
		Items     map[string]float64 `json:"items"`
	} `json:"periods"`
}

const netIncomeItem = "Net Income"

// FetchIncomeStatement returns the reported income-statement periods for a
// ticker. Fails with NoDataError if the statement is empty or no period
// carries a Net Income line item.
func (g *Gateway) FetchIncomeStatement(ticker string) (*model.IncomeStatementSeries, error) {
	ticker = model.NormalizeTicker(ticker)
	key := "income|" + ticker
	if v, ok := g.cache.get(key); ok {
		return v.(*model.IncomeStatementSeries), nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/income-statement?symbol=%s", g.BaseURL, ticker)
	body, err := g.getBody(endpoint)
	if err != nil {
		return nil, err
	}

	var payload incomePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode income statement: %w", err)
	}
	if len(payload.Periods) == 0 {
		return nil, &NoDataError{Ticker: ticker, Detail: "income statement empty"}
	}

	entries := make([]model.IncomeStatementEntry, 0, len(payload.Periods))
	for _, p := range payload.Periods {
		net, ok := p.Items[netIncomeItem]
		if !ok {
			continue
		}
		periodEnd, err := time.Parse("2006-01-02", p.PeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("parse period end %q: %w", p.PeriodEnd, err)
		}
		entries = append(entries, model.IncomeStatementEntry{PeriodEnd: periodEnd, NetIncome: net})
	}
	if len(entries) == 0 {
		return nil, &NoDataError{Ticker: ticker, Detail: "Net Income line item absent"}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].PeriodEnd.Before(entries[j].PeriodEnd) })

	series := &model.IncomeStatementSeries{Ticker: ticker, Entries: entries}
	g.cache.put(key, series, g.FundamentalsTTL)
	return series, nil
}
