package calculator

import (
	"cryptometrics/internal/domain"
	"sort"
	"time"
)

// DeriveAssetFeatures attaches the rolling and cumulative series to every
// observation. Rows are sorted by (asset, date) first; a repeated
// (asset, date) keeps the last row seen. Windows run over row order, so
// missing calendar days are not filled in. A row without a daily return
// still takes a slot in each window but is not counted toward the minimum
// number of points.
func DeriveAssetFeatures(observations []domain.Observation) []domain.FeatureRow {
	out := []domain.FeatureRow{}
	for _, group := range groupByAsset(observations) {
		out = append(out, deriveAssetGroup(group)...)
	}
	return out
}

func deriveAssetGroup(group []domain.Observation) []domain.FeatureRow {
	if len(group) == 0 {
		return nil
	}

	returns := make([]*float64, len(group))
	for i, o := range group {
		returns[i] = o.DailyReturn
	}

	ma7 := rollingMean(returns, MovingAverageWindow, 1)
	cumulative := cumulativeProduct(returns)
	mean30 := rollingMean(returns, RollingWindow, RollingMinPeriods)
	vol30 := annualizeVolatility(rollingStdev(returns, RollingWindow, RollingMinPeriods))
	sharpe30 := rollingSharpe(mean30, vol30)

	out := make([]domain.FeatureRow, len(group))
	for i, o := range group {
		out[i] = domain.FeatureRow{
			Observation: o,
			DerivedSeries: domain.DerivedSeries{
				DailyReturn7dMa:  ma7[i],
				CumulativeReturn: cumulative[i],
				Volatility30d:    vol30[i],
				RollingMean30d:   mean30[i],
				RollingSharpe30d: sharpe30[i],
			},
		}
	}
	return out
}

// groupByAsset returns one date-sorted, de-duplicated slice per asset,
// ordered by asset name. The input slice is not modified.
func groupByAsset(observations []domain.Observation) [][]domain.Observation {
	byAsset := map[string]map[string]domain.Observation{}
	for _, o := range observations {
		if _, ok := byAsset[o.Asset]; !ok {
			byAsset[o.Asset] = map[string]domain.Observation{}
		}
		byAsset[o.Asset][dateKey(o.Date)] = o
	}

	assets := make([]string, 0, len(byAsset))
	for asset := range byAsset {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	out := make([][]domain.Observation, 0, len(assets))
	for _, asset := range assets {
		group := make([]domain.Observation, 0, len(byAsset[asset]))
		for _, o := range byAsset[asset] {
			group = append(group, o)
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})
		out = append(out, group)
	}
	return out
}

func distinctAssets(observations []domain.Observation) []string {
	set := map[string]struct{}{}
	for _, o := range observations {
		set[o.Asset] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for asset := range set {
		out = append(out, asset)
	}
	sort.Strings(out)
	return out
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
