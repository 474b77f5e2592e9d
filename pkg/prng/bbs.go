package prng

import (
	"fmt"
	"math/big"
)

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)

// BBS は Blum-Blum-Shub 生成器です。
// 状態 X を X ← X² mod n で更新し、最下位ビットだけを出力します。
// n = p*q の素因数分解が困難である限り、出力から次のビットは予測できません。
type BBS struct {
	n     *big.Int
	state *big.Int
}

// NewBBS は Blum素数 p, q とシードから BBS を作成します。
// 初期状態は X0 = seed² mod n です。
func NewBBS(seed, p, q *big.Int) (*BBS, error) {
	if !IsBlumPrime(p) {
		return nil, fmt.Errorf("%w: p=%s", ErrNotBlumPrime, p)
	}
	if !IsBlumPrime(q) {
		return nil, fmt.Errorf("%w: q=%s", ErrNotBlumPrime, q)
	}

	n := new(big.Int).Mul(p, q)
	if new(big.Int).GCD(nil, nil, seed, n).Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: seed=%s", ErrSeedNotCoprime, seed)
	}

	state := new(big.Int).Mul(seed, seed)
	state.Mod(state, n)
	return &BBS{n: n, state: state}, nil
}

// N は法 n = p*q を返します。
func (g *BBS) N() *big.Int {
	return new(big.Int).Set(g.n)
}

// NextBit は状態を1ステップ進めて最下位ビットを返します。
func (g *BBS) NextBit() uint {
	g.state.Mul(g.state, g.state)
	g.state.Mod(g.state, g.n)
	return g.state.Bit(0)
}

// NextByte は NextBit を8回呼び、最上位ビットから順に詰めた1バイトを返します。
func (g *BBS) NextByte() byte {
	var b byte
	for i := 0; i < 8; i++ {
		b = b<<1 | byte(g.NextBit())
	}
	return b
}

// Bits は n 個のビット (0 または 1) を返します。
func (g *BBS) Bits(n int) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = g.NextBit()
	}
	return out
}

// Bytes は n バイトを返します。
func (g *BBS) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = g.NextByte()
	}
	return out
}

// IsBlumPrime は n が素数かつ n ≡ 3 (mod 4) であるかを判定します。
func IsBlumPrime(n *big.Int) bool {
	if n == nil || n.Sign() <= 0 {
		return false
	}
	if new(big.Int).Mod(n, bigFour).Cmp(bigThree) != 0 {
		return false
	}
	return n.ProbablyPrime(20)
}

// GenerateBlumPrime は MT19937 で候補を作り、bits ビットのBlum素数を探して返します。
// 候補は最上位ビットと最下位ビットを立てた bits ビットの整数です。
func GenerateBlumPrime(bits int, seed uint32) *big.Int {
	if bits < 2 {
		panic("prng: Blum prime needs at least 2 bits")
	}

	mt := NewMT19937(seed)
	words := (bits + 31) / 32
	buf := make([]byte, words*4)
	candidate := new(big.Int)
	for {
		for i := 0; i < words; i++ {
			w := mt.Uint32()
			buf[i*4] = byte(w >> 24)
			buf[i*4+1] = byte(w >> 16)
			buf[i*4+2] = byte(w >> 8)
			buf[i*4+3] = byte(w)
		}
		candidate.SetBytes(buf)
		// bits ビットに切り詰め、最上位ビットと奇数性を強制する
		candidate.Rsh(candidate, uint(words*32-bits))
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)
		if IsBlumPrime(candidate) {
			return new(big.Int).Set(candidate)
		}
	}
}
