package calculator

import (
	"cryptometrics/internal/domain"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// the portfolio rolling sharpe only reports on a full window
const PortfolioSharpeMinPeriods = RollingWindow

const MinPortfolioAssets = 2

// BuildPortfolio averages daily returns across assets on each date and
// derives the drawdown and sharpe series for the result. Dates where only
// some assets have a return average over the assets present. Returns nil
// when fewer than minAssets (and never fewer than 2) distinct assets are
// present.
func BuildPortfolio(observations []domain.Observation, minAssets int) *domain.Portfolio {
	if minAssets < MinPortfolioAssets {
		minAssets = MinPortfolioAssets
	}
	assets := distinctAssets(observations)
	if len(assets) < minAssets {
		return nil
	}

	dates, returnsByDate := pivotReturns(observations)

	returns := make([]float64, len(dates))
	numAssets := make([]int, len(dates))
	for i, d := range dates {
		values := returnsByDate[dateKey(d)]
		mean, err := stats.Mean(values)
		if err != nil {
			// pivotReturns never produces an empty date
			continue
		}
		returns[i] = mean
		numAssets[i] = len(values)
	}

	returnPtrs := floatPtrs(returns)
	cumulative := cumulativeProduct(returnPtrs)
	mean30 := rollingMean(returnPtrs, RollingWindow, PortfolioSharpeMinPeriods)
	vol30 := annualizeVolatility(rollingStdev(returnPtrs, RollingWindow, PortfolioSharpeMinPeriods))
	sharpe30 := rollingSharpe(mean30, vol30)

	cumValues := make([]float64, len(dates))
	for i, c := range cumulative {
		if c != nil {
			cumValues[i] = *c
		}
	}
	peaks := runningMax(cumValues)

	points := make([]domain.PortfolioPoint, len(dates))
	drawdowns := make([]float64, len(dates))
	for i, d := range dates {
		drawdown := drawdownFromPeak(cumValues[i], peaks[i])
		drawdowns[i] = drawdown
		points[i] = domain.PortfolioPoint{
			Date:               d,
			PortfolioReturn:    returns[i],
			PortfolioCumReturn: cumValues[i],
			RollingMax:         peaks[i],
			Drawdown:           drawdown,
			RollingSharpe30d:   sharpe30[i],
			NumAssets:          numAssets[i],
		}
	}

	return &domain.Portfolio{
		Assets:  assets,
		Points:  points,
		Summary: summarizePortfolio(returns, drawdowns),
	}
}

// drawdownFromPeak is (value - peak) / peak. A portfolio that has been
// wiped out since its first day never had a positive peak and reports a
// full loss.
func drawdownFromPeak(value, peak float64) float64 {
	if peak <= 0 {
		return -1
	}
	return (value - peak) / peak
}

// pivotReturns groups the present daily returns by date, one value per
// asset, and returns the dates in ascending order. Dates where no asset
// has a return are left out.
func pivotReturns(observations []domain.Observation) ([]time.Time, map[string][]float64) {
	dates := []time.Time{}
	returnsByDate := map[string][]float64{}
	for _, group := range groupByAsset(observations) {
		for _, o := range group {
			if o.DailyReturn == nil {
				continue
			}
			key := dateKey(o.Date)
			if _, ok := returnsByDate[key]; !ok {
				dates = append(dates, o.Date)
			}
			returnsByDate[key] = append(returnsByDate[key], *o.DailyReturn)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates, returnsByDate
}

// summarizePortfolio computes whole-series stats. A series with zero
// variance, or a single point, reports a sharpe and volatility of 0.
func summarizePortfolio(returns, drawdowns []float64) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{}
	if len(drawdowns) > 0 {
		maxDrawdown, err := stats.Min(drawdowns)
		if err == nil {
			summary.MaxDrawdown = maxDrawdown
		}
	}
	if len(returns) < 2 {
		return summary
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil || !isFinite(stdev) {
		return summary
	}
	summary.AnnualVol = stdev * annualizationFactor
	if stdev < zeroVarianceEpsilon {
		return summary
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return summary
	}
	if sharpe := mean / stdev * annualizationFactor; isFinite(sharpe) {
		summary.Sharpe = sharpe
	}
	return summary
}
