package stattest

import (
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultAlpha はカイ二乗検定の既定の有意水準
	DefaultAlpha = 0.05

	chiSquaredBins = 256
)

// ChiSquared は256個のバイト値が等頻度で現れるかをカイ二乗検定します。
//
// 自由度は255で、p値はカイ二乗分布の上側確率です。
// p値が alpha より大きければ Pass です。空のデータは {0, 1, Fail} になります。
func ChiSquared(data []byte, alpha float64) Result {
	if len(data) == 0 {
		return Result{Statistic: 0, PValue: 1, Verdict: Fail}
	}

	expected := float64(len(data)) / chiSquaredBins
	var statistic float64
	for _, c := range byteCounts(data) {
		d := float64(c) - expected
		statistic += d * d / expected
	}

	dist := distuv.ChiSquared{K: chiSquaredBins - 1}
	p := dist.Survival(statistic)
	return Result{
		Statistic: statistic,
		PValue:    p,
		Verdict:   verdict(p > alpha),
	}
}
