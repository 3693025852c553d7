package domain

import "time"

// Observation is one day of market data for one asset. Returns are
// computed upstream and only read here. A nil field is a NULL in the
// store; the first day of an asset has no daily return.
type Observation struct {
	Date        time.Time
	Asset       string
	OpenPrice   *float64
	HighPrice   *float64
	LowPrice    *float64
	ClosePrice  *float64
	Volume      *float64
	DailyReturn *float64
	LogReturn   *float64
}

// DerivedSeries holds the rolling and cumulative features for a single
// row. nil means the window did not have enough history.
type DerivedSeries struct {
	DailyReturn7dMa  *float64
	CumulativeReturn *float64
	Volatility30d    *float64
	RollingMean30d   *float64
	RollingSharpe30d *float64
}

type FeatureRow struct {
	Observation
	DerivedSeries
}

type DateRange struct {
	Start time.Time
	End   time.Time
}
