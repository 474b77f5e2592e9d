package stattest

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary はバイト値の要約統計量
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize はバイト値の平均・中央値・母標準偏差・最小値・最大値を返します。
func Summarize(data []byte) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrEmptyData
	}

	values := stats.Float64Data(toFloat64s(data))

	var s Summary
	var err error
	if s.Mean, err = stats.Mean(values); err != nil {
		return Summary{}, fmt.Errorf("平均の計算に失敗しました: %w", err)
	}
	if s.Median, err = stats.Median(values); err != nil {
		return Summary{}, fmt.Errorf("中央値の計算に失敗しました: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviationPopulation(values); err != nil {
		return Summary{}, fmt.Errorf("標準偏差の計算に失敗しました: %w", err)
	}
	if s.Min, err = stats.Min(values); err != nil {
		return Summary{}, fmt.Errorf("最小値の計算に失敗しました: %w", err)
	}
	if s.Max, err = stats.Max(values); err != nil {
		return Summary{}, fmt.Errorf("最大値の計算に失敗しました: %w", err)
	}
	return s, nil
}
