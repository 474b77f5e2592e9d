package stattest

import (
	"gonum.org/v1/gonum/stat"
)

// DefaultLags は自己相関を計算する既定のラグ
var DefaultLags = []int{1, 2, 4, 8, 16}

// Autocorrelation は各ラグについて正規化した自己相関係数を返します。
//
// 係数は x_i と x_{i+lag} の共分散 (n-lag で割る) を全体の母分散で割った値です。
// データが2個未満、分散が0、または lag >= n の場合は 0 になります。
func Autocorrelation(data []byte, lags []int) map[int]float64 {
	out := make(map[int]float64, len(lags))
	n := len(data)
	if n < 2 {
		for _, lag := range lags {
			out[lag] = 0
		}
		return out
	}

	values := toFloat64s(data)
	mean, variance := stat.PopMeanVariance(values, nil)
	if variance == 0 {
		for _, lag := range lags {
			out[lag] = 0
		}
		return out
	}

	for _, lag := range lags {
		if lag <= 0 || lag >= n {
			out[lag] = 0
			continue
		}
		var sum float64
		for i := 0; i < n-lag; i++ {
			sum += (values[i] - mean) * (values[i+lag] - mean)
		}
		out[lag] = sum / float64(n-lag) / variance
	}
	return out
}
