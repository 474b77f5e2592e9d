package prng

import "math"

// BoxMuller は一様乱数源から標準正規分布 N(0, 1) の値を作る変換器です。
// Marsaglia の極座標法を使い、1回の計算で得られる2つ目の値は次の呼び出しまで保持します。
// 出力の品質は一様乱数源の品質で決まります。
type BoxMuller struct {
	source   Float64Source
	spare    float64
	hasSpare bool
}

// NewBoxMuller は source を一様乱数源とする BoxMuller を返します。
func NewBoxMuller(source Float64Source) *BoxMuller {
	return &BoxMuller{source: source}
}

// Next は N(0, 1) に従う値を返します。
func (b *BoxMuller) Next() float64 {
	if b.hasSpare {
		b.hasSpare = false
		return b.spare
	}

	// 単位円の外の点は棄却する
	var u, v, s float64
	for {
		u = 2.0*b.source.Float64() - 1.0
		v = 2.0*b.source.Float64() - 1.0
		s = u*u + v*v
		if s > 0.0 && s < 1.0 {
			break
		}
	}

	coeff := math.Sqrt(-2.0 * math.Log(s) / s)
	b.spare = v * coeff
	b.hasSpare = true
	return u * coeff
}

// Generate は N(mu, sigma) に従う n 個の値を返します。
func (b *BoxMuller) Generate(n int, mu, sigma float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mu + b.Next()*sigma
	}
	return out
}

// Bytes は正規乱数を 127.5 + 40z として [0, 255] に切り詰め、n バイトにします。
// 分布は一様にならないため、統計検定では不合格になるのが正常です。
func (b *BoxMuller) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		v := b.Next()*40 + 127.5
		out[i] = byte(math.Max(0, math.Min(255, v)))
	}
	return out
}

// BoxMullerBasic は三角関数を使う元の Box-Muller 変換です。
// u0 は (0, 1] の値でなければなりません。
func BoxMullerBasic(u0, u1 float64) (z0, z1 float64) {
	r := math.Sqrt(-2.0 * math.Log(u0))
	z0 = r * math.Cos(2.0*math.Pi*u1)
	z1 = r * math.Sin(2.0*math.Pi*u1)
	return z0, z1
}
