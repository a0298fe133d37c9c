package model

import "time"

// GrowthPoint is one derived day of the growth series. EPS is nil for dates
// before the first reported income period (forward-fill never looks ahead);
// PE is nil when EPS is nil or zero.
type GrowthPoint struct {
	Date time.Time `json:"date"`
	EPS  *float64  `json:"eps,omitempty"`
	PE   *float64  `json:"pe,omitempty"`
}

// GrowthSeries is the daily EPS / P/E series aligned to a PriceSeries.
type GrowthSeries struct {
	Ticker string        `json:"ticker"`
	Points []GrowthPoint `json:"points"`
}

// ComparisonRow holds the scalar metrics shown for one ticker in a peer
// comparison. Rows are only built when all source metrics are present.
type ComparisonRow struct {
	Ticker          string  `json:"ticker"`
	Name            string  `json:"name"`
	EPS             float64 `json:"eps"`
	PE              float64 `json:"pe"`
	RevenuePerShare float64 `json:"revenue_per_share"`
	PriceToSales    float64 `json:"price_to_sales"`
	EarningsYield   float64 `json:"earnings_yield"`
	RevenueYield    float64 `json:"revenue_yield"`
}
