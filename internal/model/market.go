package model

import (
	"strings"
	"time"
)

// NormalizeTicker uppercases and trims a ticker symbol so it can be used
// as a cache key.
func NormalizeTicker(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// PriceBar represents one daily bar after normalization.
type PriceBar struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	Close    float64   `json:"close"`
	AdjClose float64   `json:"adj_close"`
	Volume   float64   `json:"volume"`
}

// PriceSeries holds daily bars for one ticker, dates strictly increasing.
type PriceSeries struct {
	Ticker    string     `json:"ticker"`
	Bars      []PriceBar `json:"bars"`
	FetchedAt time.Time  `json:"fetched_at"`
}
