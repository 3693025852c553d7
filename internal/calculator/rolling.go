package calculator

import (
	"math"

	"github.com/montanaflynn/stats"
)

const (
	// crypto trades every day, so annualize over calendar days
	AnnualizationDays = 365

	MovingAverageWindow = 7
	RollingWindow       = 30
	// per-asset rolling stats report once this many points exist
	RollingMinPeriods = 5

	// stdev below this is treated as zero variance. summing identical
	// floats does not always cancel exactly
	zeroVarianceEpsilon = 1e-15
)

var annualizationFactor = math.Sqrt(AnnualizationDays)

func floatPtr(f float64) *float64 {
	return &f
}

// trailingWindow returns the present values in values[end-size+1 : end+1],
// clipped at the start. Missing rows take a slot in the window but do not
// count as a point.
func trailingWindow(values []*float64, end, size int) []float64 {
	start := end - size + 1
	if start < 0 {
		start = 0
	}
	out := make([]float64, 0, end+1-start)
	for _, v := range values[start : end+1] {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// rollingMean is a causal rolling mean that reports once minPeriods
// present points are in the window
func rollingMean(values []*float64, size, minPeriods int) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		window := trailingWindow(values, i, size)
		if len(window) == 0 || len(window) < minPeriods {
			continue
		}
		mean, err := stats.Mean(window)
		if err != nil || !isFinite(mean) {
			continue
		}
		out[i] = floatPtr(mean)
	}
	return out
}

// rollingStdev is the rolling sample standard deviation. It needs at
// least two points regardless of minPeriods
func rollingStdev(values []*float64, size, minPeriods int) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		window := trailingWindow(values, i, size)
		if len(window) < minPeriods || len(window) < 2 {
			continue
		}
		stdev, err := stats.StandardDeviationSample(window)
		if err != nil || !isFinite(stdev) {
			continue
		}
		out[i] = floatPtr(stdev)
	}
	return out
}

func annualizeVolatility(stdevs []*float64) []*float64 {
	out := make([]*float64, len(stdevs))
	for i, s := range stdevs {
		if s != nil {
			out[i] = floatPtr(*s * annualizationFactor)
		}
	}
	return out
}

// rollingSharpe computes mean / (vol / sqrt(365)). Rows with a missing or
// zero volatility stay nil
func rollingSharpe(means, vols []*float64) []*float64 {
	out := make([]*float64, len(means))
	for i := range means {
		if means[i] == nil || vols[i] == nil {
			continue
		}
		dailyVol := *vols[i] / annualizationFactor
		if dailyVol < zeroVarianceEpsilon {
			continue
		}
		sharpe := *means[i] / dailyVol
		if !isFinite(sharpe) {
			continue
		}
		out[i] = floatPtr(sharpe)
	}
	return out
}

// cumulativeProduct returns prod(1 + r_i) for i <= t at each t. A missing
// return leaves its row nil and does not move the product.
func cumulativeProduct(returns []*float64) []*float64 {
	out := make([]*float64, len(returns))
	acc := 1.0
	for i, r := range returns {
		if r == nil {
			continue
		}
		acc *= 1 + *r
		if isFinite(acc) {
			out[i] = floatPtr(acc)
		}
	}
	return out
}

func floatPtrs(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = floatPtr(v)
	}
	return out
}

func runningMax(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if i == 0 || v > out[i-1] {
			out[i] = v
		} else {
			out[i] = out[i-1]
		}
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
