package calculator

import "StockScope/internal/model"

// ComputeComparisonRow derives the peer-comparison metrics from a
// fundamentals snapshot. It returns false when any source metric is absent;
// a partial row would not be comparable against its peers.
func ComputeComparisonRow(snap *model.FundamentalsSnapshot) (model.ComparisonRow, bool) {
	if snap == nil || snap.TrailingEPS == nil || snap.TrailingPE == nil ||
		snap.TotalRevenue == nil || snap.SharesOutstanding == nil || snap.MarketCap == nil {
		return model.ComparisonRow{}, false
	}

	row := model.ComparisonRow{
		Ticker: snap.Ticker,
		Name:   snap.Ticker,
		EPS:    *snap.TrailingEPS,
		PE:     *snap.TrailingPE,
	}
	if snap.ShortName != nil {
		row.Name = *snap.ShortName
	}
	if shares := *snap.SharesOutstanding; shares != 0 {
		row.RevenuePerShare = *snap.TotalRevenue / shares
	}
	if revenue := *snap.TotalRevenue; revenue != 0 {
		row.PriceToSales = *snap.MarketCap / revenue
	}
	if pe := *snap.TrailingPE; pe != 0 {
		row.EarningsYield = 1 / pe
	}
	if mcap := *snap.MarketCap; mcap != 0 {
		row.RevenueYield = *snap.TotalRevenue / mcap
	}
	return row, true
}
