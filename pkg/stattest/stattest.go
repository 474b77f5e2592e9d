// Package stattest はバイト列の一様性・独立性を調べる統計的検定を提供します。
//
// 収録している検定:
//   - Shannon エントロピー (ビット/バイト、最大 8.0)
//   - カイ二乗検定 (256 ビン、自由度 255)
//   - Kolmogorov-Smirnov 検定 (一様分布 [0, 1] との比較)
//   - 自己相関 (ラグごとの正規化された共分散)
//
// いずれも乱数性の証明ではなく、明らかに偏った生成器を見分けるための簡易的な指標です。
package stattest

// Verdict は検定の判定結果
type Verdict string

const (
	// Pass は帰無仮説 (一様) を棄却しなかったことを表します
	Pass Verdict = "PASS"
	// Fail は帰無仮説を棄却したことを表します
	Fail Verdict = "FAIL"
)

// Result は統計量・p値・判定の組
type Result struct {
	Statistic float64
	PValue    float64
	Verdict   Verdict
}

// Passed は判定が Pass かどうかを返します
func (r Result) Passed() bool {
	return r.Verdict == Pass
}

func verdict(pass bool) Verdict {
	if pass {
		return Pass
	}
	return Fail
}

// byteCounts はバイト値ごとの出現回数を返します
func byteCounts(data []byte) [256]int {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	return counts
}

func toFloat64s(data []byte) []float64 {
	out := make([]float64, len(data))
	for i, b := range data {
		out[i] = float64(b)
	}
	return out
}
