package stattest

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ShannonEntropy はバイト列の Shannon エントロピーをビット/バイト単位で返します。
// 空のデータでは 0 を返します。
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	counts := byteCounts(data)
	n := float64(len(data))
	p := make([]float64, 0, len(counts))
	for _, c := range counts {
		if c > 0 {
			p = append(p, float64(c)/n)
		}
	}
	// stat.Entropy は自然対数なので ln 2 で割ってビットに換算する
	return stat.Entropy(p) / math.Ln2
}
