package calculator

import (
	"cryptometrics/internal/domain"

	"github.com/montanaflynn/stats"
)

// Summarize reports the record count and average daily return of the
// filtered table. Rows are de-duplicated the same way DeriveAssetFeatures
// does, and rows without a return are left out of the average.
func Summarize(observations []domain.Observation) domain.MetricsSummary {
	summary := domain.MetricsSummary{}

	returns := []float64{}
	for _, group := range groupByAsset(observations) {
		summary.TotalRecords += len(group)
		for _, o := range group {
			if o.DailyReturn != nil {
				returns = append(returns, *o.DailyReturn)
			}
		}
	}
	if len(returns) == 0 {
		return summary
	}

	mean, err := stats.Mean(returns)
	if err == nil && isFinite(mean) {
		summary.AverageDailyReturn = floatPtr(mean)
	}
	return summary
}
