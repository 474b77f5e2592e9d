package stattest

import (
	"fmt"
	"slices"
)

// Report は1つのバイト列に対する全検定の結果
type Report struct {
	Name            string
	Size            int
	Entropy         float64
	ChiSquared      Result
	KS              Result
	Lags            []int
	Autocorrelation map[int]float64
	Summary         Summary
}

// Passed はカイ二乗検定と KS 検定の両方が Pass かどうかを返します
func (r Report) Passed() bool {
	return r.ChiSquared.Passed() && r.KS.Passed()
}

// Suite は検定のパラメータをまとめたもの
type Suite struct {
	Alpha float64 // カイ二乗検定の有意水準。0 以下なら DefaultAlpha
	Lags  []int   // 自己相関のラグ。空なら DefaultLags
}

// Run は data に対してすべての検定を実行します。
// 空のデータは要約統計量を求められないため ErrEmptyData を返します。
func (s Suite) Run(name string, data []byte) (Report, error) {
	summary, err := Summarize(data)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", name, err)
	}

	alpha := s.Alpha
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	lags := s.Lags
	if len(lags) == 0 {
		lags = DefaultLags
	}
	lags = slices.Clone(lags)

	return Report{
		Name:            name,
		Size:            len(data),
		Entropy:         ShannonEntropy(data),
		ChiSquared:      ChiSquared(data, alpha),
		KS:              KolmogorovSmirnov(data),
		Lags:            lags,
		Autocorrelation: Autocorrelation(data, lags),
		Summary:         summary,
	}, nil
}
