package calculator

import (
	"cryptometrics/internal/domain"

	"github.com/montanaflynn/stats"
)

// CorrelationMatrix computes pairwise pearson correlation of daily returns,
// using only the dates both assets have a return for
func CorrelationMatrix(observations []domain.Observation) domain.CorrelationMatrix {
	groups := groupByAsset(observations)

	assets := make([]string, 0, len(groups))
	groupByName := map[string][]domain.Observation{}
	returnsByAsset := map[string]map[string]float64{}
	for _, group := range groups {
		asset := group[0].Asset
		assets = append(assets, asset)
		groupByName[asset] = group
		returnsByAsset[asset] = map[string]float64{}
		for _, o := range group {
			if o.DailyReturn != nil {
				returnsByAsset[asset][dateKey(o.Date)] = *o.DailyReturn
			}
		}
	}

	out := domain.CorrelationMatrix{
		Assets: assets,
		Values: map[string]map[string]*float64{},
	}
	for _, a := range assets {
		out.Values[a] = map[string]*float64{}
	}

	for i, a := range assets {
		for _, b := range assets[i:] {
			corr := pairCorrelation(groupByName[a], returnsByAsset[b])
			out.Values[a][b] = corr
			out.Values[b][a] = corr
		}
	}

	return out
}

// pairCorrelation walks a's date-sorted rows so the values are always
// summed in the same order
func pairCorrelation(a []domain.Observation, b map[string]float64) *float64 {
	xs := []float64{}
	ys := []float64{}
	for _, o := range a {
		if o.DailyReturn == nil {
			continue
		}
		if y, ok := b[dateKey(o.Date)]; ok {
			xs = append(xs, *o.DailyReturn)
			ys = append(ys, y)
		}
	}
	if len(xs) < 2 {
		return nil
	}

	// stats.Correlation reports 0 for a flat series, which would read as
	// "uncorrelated" rather than undefined
	for _, series := range [][]float64{xs, ys} {
		stdev, err := stats.StandardDeviationPopulation(series)
		if err != nil || stdev < zeroVarianceEpsilon {
			return nil
		}
	}

	corr, err := stats.Correlation(xs, ys)
	if err != nil || !isFinite(corr) {
		return nil
	}
	return floatPtr(corr)
}
