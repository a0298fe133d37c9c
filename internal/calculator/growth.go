package calculator

import (
	"fmt"
	"sort"

	"StockScope/internal/model"
)

// MissingSharesOutstandingError signals that EPS cannot be derived because
// shares outstanding is unavailable.
type MissingSharesOutstandingError struct {
	Ticker string
}

func (e *MissingSharesOutstandingError) Error() string {
	return fmt.Sprintf("%s: shares outstanding unavailable", e.Ticker)
}

// EmptyIncomeStatementError signals that the income-statement series has no
// usable entries.
type EmptyIncomeStatementError struct {
	Ticker string
}

func (e *EmptyIncomeStatementError) Error() string {
	return fmt.Sprintf("%s: income statement has no entries", e.Ticker)
}

// ComputeGrowthSeries derives a daily EPS and P/E series aligned to the
// price series. Per-period EPS is net income over shares outstanding,
// forward-filled onto every price date; the value carried for a date is
// always the most recent reported period at or before it. A zero or
// not-yet-known EPS makes P/E for that date missing, never a failure.
func ComputeGrowthSeries(prices *model.PriceSeries, income *model.IncomeStatementSeries, sharesOutstanding *float64) (*model.GrowthSeries, error) {
	if sharesOutstanding == nil || *sharesOutstanding == 0 {
		return nil, &MissingSharesOutstandingError{Ticker: prices.Ticker}
	}
	if income == nil || len(income.Entries) == 0 {
		return nil, &EmptyIncomeStatementError{Ticker: prices.Ticker}
	}

	periods := make([]model.IncomeStatementEntry, len(income.Entries))
	copy(periods, income.Entries)
	sort.Slice(periods, func(i, j int) bool { return periods[i].PeriodEnd.Before(periods[j].PeriodEnd) })

	shares := *sharesOutstanding
	series := &model.GrowthSeries{
		Ticker: prices.Ticker,
		Points: make([]model.GrowthPoint, 0, len(prices.Bars)),
	}

	next := 0
	var current *float64
	for _, bar := range prices.Bars {
		for next < len(periods) && !periods[next].PeriodEnd.After(bar.Date) {
			eps := periods[next].NetIncome / shares
			current = &eps
			next++
		}

		point := model.GrowthPoint{Date: bar.Date}
		if current != nil {
			eps := *current
			point.EPS = &eps
			if eps != 0 {
				pe := bar.AdjClose / eps
				point.PE = &pe
			}
		}
		series.Points = append(series.Points, point)
	}

	return series, nil
}
