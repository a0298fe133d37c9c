package model

import "time"

// FundamentalsSnapshot holds current-time fundamentals for one ticker.
// Every field is independently optional; a nil pointer means the upstream
// simply did not report that metric, which is common and not an error.
type FundamentalsSnapshot struct {
	Ticker            string   `json:"ticker"`
	ShortName         *string  `json:"short_name,omitempty"`
	TrailingEPS       *float64 `json:"trailing_eps,omitempty"`
	TrailingPE        *float64 `json:"trailing_pe,omitempty"`
	SharesOutstanding *float64 `json:"shares_outstanding,omitempty"`
	TotalRevenue      *float64 `json:"total_revenue,omitempty"`
	MarketCap         *float64 `json:"market_cap,omitempty"`
	BusinessSummary   *string  `json:"business_summary,omitempty"`
}

// Description returns the business summary text, or "" when absent.
func (f *FundamentalsSnapshot) Description() string {
	if f == nil || f.BusinessSummary == nil {
		return ""
	}
	return *f.BusinessSummary
}

// IncomeStatementEntry is one reported period of the income statement.
type IncomeStatementEntry struct {
	PeriodEnd time.Time `json:"period_end"`
	NetIncome float64   `json:"net_income"`
}

// IncomeStatementSeries holds income-statement periods for one ticker.
// Upstream ordering is not guaranteed; consumers must sort by PeriodEnd.
type IncomeStatementSeries struct {
	Ticker  string                 `json:"ticker"`
	Entries []IncomeStatementEntry `json:"entries"`
}
