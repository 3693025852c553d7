package domain

import "time"

// PortfolioPoint is one date of the equal-weighted synthetic series.
type PortfolioPoint struct {
	Date               time.Time
	PortfolioReturn    float64
	PortfolioCumReturn float64
	RollingMax         float64
	Drawdown           float64
	RollingSharpe30d   *float64
	// number of assets that had a row on this date
	NumAssets int
}

type PortfolioSummary struct {
	Sharpe      float64
	AnnualVol   float64
	MaxDrawdown float64
}

type Portfolio struct {
	Assets  []string
	Points  []PortfolioPoint
	Summary PortfolioSummary
}

// CorrelationMatrix is keyed [asset][asset]. A nil entry means the pair
// did not share enough dates, or one side had no variance.
type CorrelationMatrix struct {
	Assets []string
	Values map[string]map[string]*float64
}

func (m CorrelationMatrix) Get(a, b string) *float64 {
	row, ok := m.Values[a]
	if !ok {
		return nil
	}
	return row[b]
}

type MetricsSummary struct {
	TotalRecords       int
	AverageDailyReturn *float64
}

type MetricsResult struct {
	Rows        []FeatureRow
	Portfolio   *Portfolio
	Correlation CorrelationMatrix
	Summary     MetricsSummary
	Profile     *Profile
}
