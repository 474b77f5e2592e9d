package stattest

import (
	"math"
	"sort"
)

const (
	// KSAlpha は Kolmogorov-Smirnov 検定の有意水準
	KSAlpha = 0.01

	ksMaxTerms    = 100
	ksTermEpsilon = 1e-15
)

// KolmogorovSmirnov はバイト値を b/255 で [0, 1] に写し、一様分布との最大乖離 D を求めます。
// p値は Kolmogorov の漸近級数で近似し、0.01 より大きければ Pass です。
// 空のデータは {0, 1, Pass} になります。
func KolmogorovSmirnov(data []byte) Result {
	n := len(data)
	if n == 0 {
		return Result{Statistic: 0, PValue: 1, Verdict: Pass}
	}

	values := make([]float64, n)
	for i, b := range data {
		values[i] = float64(b) / 255
	}
	sort.Float64s(values)

	var dPlus, dMinus float64
	fn := float64(n)
	for i, v := range values {
		dPlus = math.Max(dPlus, float64(i+1)/fn-v)
		dMinus = math.Max(dMinus, v-float64(i)/fn)
	}

	d := math.Max(dPlus, dMinus)
	p := kolmogorovPValue(d, n)
	return Result{
		Statistic: d,
		PValue:    p,
		Verdict:   verdict(p > KSAlpha),
	}
}

// kolmogorovPValue は λ = (√n + 0.12 + 0.11/√n)·D として
// 2Σ(-1)^(k-1) exp(-2k²λ²) を求め、[0, 1] に収めて返します。
func kolmogorovPValue(d float64, n int) float64 {
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	if lambda == 0 {
		return 1
	}

	var sum float64
	for k := 1; k < ksMaxTerms; k++ {
		term := math.Exp(-2 * float64(k*k) * lambda * lambda)
		if k%2 == 0 {
			term = -term
		}
		sum += term
		if math.Abs(term) < ksTermEpsilon {
			break
		}
	}
	return math.Max(0, math.Min(1, 2*sum))
}
