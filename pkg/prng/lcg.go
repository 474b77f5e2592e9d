package prng

import "math/bits"

// glibc rand() と同じ既定パラメータ
const (
	DefaultLCGMultiplier uint64 = 1103515245
	DefaultLCGIncrement  uint64 = 12345
	DefaultLCGModulus    uint64 = 1 << 31
)

// LCG は線形合同法 X_{n+1} = (a*X_n + c) mod m による生成器です。
// 状態は1つの整数だけなので、数個の出力からパラメータを復元できます。
type LCG struct {
	state uint64
	a     uint64
	c     uint64
	m     uint64
}

// NewLCG は任意のパラメータで LCG を作成します。m が 0 の場合は panic します。
func NewLCG(seed, a, c, m uint64) *LCG {
	if m == 0 {
		panic("prng: LCG modulus must be non-zero")
	}
	return &LCG{state: seed, a: a, c: c, m: m}
}

// NewDefaultLCG は glibc のパラメータで LCG を作成します。
func NewDefaultLCG(seed uint64) *LCG {
	return NewLCG(seed, DefaultLCGMultiplier, DefaultLCGIncrement, DefaultLCGModulus)
}

// Params は (a, c, m) を返します。
func (g *LCG) Params() (a, c, m uint64) {
	return g.a, g.c, g.m
}

// Next は状態を1ステップ進めて新しい値を返します。
func (g *LCG) Next() uint64 {
	g.state = mulAddMod(g.a, g.state, g.c, g.m)
	return g.state
}

// Generate は n 個の出力を返します。
func (g *LCG) Generate(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// Float64 は Next() を m で割った [0, 1) の値を返します。
func (g *LCG) Float64() float64 {
	return float64(g.Next()) / float64(g.m)
}

// Bytes は各出力の下位8ビットで n バイトを生成します。
// 下位ビットの周期は特に短く、LCG の最も弱い部分です。
func (g *LCG) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(g.Next())
	}
	return out
}

// mulAddMod は (a*x + c) mod m を128ビットの中間値で計算します。
func mulAddMod(a, x, c, m uint64) uint64 {
	hi, lo := bits.Mul64(a, x)
	var carry uint64
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}
