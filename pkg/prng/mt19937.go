package prng

import "fmt"

const (
	// MTStateSize は MT19937 の状態配列の語数です
	MTStateSize = 624

	mtShift     = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initMul     = 1812433253
	temperMask1 = 0x9d2c5680
	temperMask2 = 0xefc60000
)

// MT19937 はメルセンヌ・ツイスタ (MT19937) 疑似乱数生成器です。
// 624語の状態をすべて消費すると twist で状態を再生成します。
type MT19937 struct {
	mt  [MTStateSize]uint32
	mti int
}

// NewMT19937 は指定されたシードで MT19937 を初期化して返します。
func NewMT19937(seed uint32) *MT19937 {
	r := &MT19937{}
	r.init(seed)
	return r
}

// RestoreMT19937 は状態配列とインデックスを直接指定して MT19937 を構築します。
//
// 通常の生成には使用しません。状態復元攻撃とテストのための入口です。
// index が MTStateSize の場合、次の呼び出しで twist が実行されます。
func RestoreMT19937(state [MTStateSize]uint32, index int) (*MT19937, error) {
	if index < 0 || index > MTStateSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCursor, index)
	}
	return &MT19937{mt: state, mti: index}, nil
}

// init は指定されたシードで状態配列を初期化します。
func (r *MT19937) init(seed uint32) {
	r.mt[0] = seed
	for r.mti = 1; r.mti < MTStateSize; r.mti++ {
		r.mt[r.mti] = initMul*(r.mt[r.mti-1]^(r.mt[r.mti-1]>>30)) + uint32(r.mti)
	}
}

// twist は624語の状態を再生成します。
func (r *MT19937) twist() {
	var y uint32
	mag01 := [2]uint32{0x0, matrixA}

	var kk int
	for kk = 0; kk < MTStateSize-mtShift; kk++ {
		y = (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+mtShift] ^ (y >> 1) ^ mag01[y&0x1]
	}
	for ; kk < MTStateSize-1; kk++ {
		y = (r.mt[kk] & upperMask) | (r.mt[kk+1] & lowerMask)
		r.mt[kk] = r.mt[kk+(mtShift-MTStateSize)] ^ (y >> 1) ^ mag01[y&0x1]
	}
	y = (r.mt[MTStateSize-1] & upperMask) | (r.mt[0] & lowerMask)
	r.mt[MTStateSize-1] = r.mt[mtShift-1] ^ (y >> 1) ^ mag01[y&0x1]

	r.mti = 0
}

// Temper は状態語に MT19937 の tempering 変換を適用します。
func Temper(y uint32) uint32 {
	y ^= (y >> 11)
	y ^= (y << 7) & temperMask1
	y ^= (y << 15) & temperMask2
	y ^= (y >> 18)
	return y
}

// Uint32 は次の32ビット符号なし乱数を生成して返します。
func (r *MT19937) Uint32() uint32 {
	if r.mti >= MTStateSize {
		r.twist()
	}

	y := r.mt[r.mti]
	r.mti++

	return Temper(y)
}

// Generate は n 個の出力をまとめて返します。
func (r *MT19937) Generate(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out
}

// Float64 は [0, 1) の乱数を返します。
func (r *MT19937) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Bytes は各出力の下位8ビットだけを使って n バイトを生成します。
func (r *MT19937) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.Uint32())
	}
	return out
}

// State は現在の状態配列とインデックスのコピーを返します。
func (r *MT19937) State() ([MTStateSize]uint32, int) {
	return r.mt, r.mti
}
