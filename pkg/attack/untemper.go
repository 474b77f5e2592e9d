package attack

import "fmt"

const (
	wordBits = 32

	temperShiftU = 11
	temperShiftS = 7
	temperShiftT = 15
	temperShiftL = 18
	temperMaskB  = 0x9d2c5680
	temperMaskC  = 0xefc60000
)

// windowStarts は幅 shift の窓の開始位置 [shift, 2*shift, ...) (< 32) を返します。
// 先頭の shift ビットは順変換で変化しないため、窓は shift から始まります。
func windowStarts(shift uint) []uint {
	if shift == 0 || shift >= wordBits {
		panic(fmt.Sprintf("attack: shift must be in [1, 31], got %d", shift))
	}
	starts := make([]uint, 0, wordBits/shift)
	for s := shift; s < wordBits; s += shift {
		starts = append(starts, s)
	}
	return starts
}

// InvertRightShiftXOR は y = x ^ (x >> shift) から x を求めます。
//
// x の上位 shift ビットは y と等しいので、そこから1窓ずつ下位へ復元します。
// 各窓は直上の復元済みビットを shift だけ右にずらして XOR することで元に戻ります。
func InvertRightShiftXOR(y uint32, shift uint) uint32 {
	x := y
	for _, start := range windowStarts(shift) {
		window := (^uint32(0) >> start) ^ (^uint32(0) >> min(start+shift, wordBits))
		x ^= (x >> shift) & window
	}
	return x
}

// InvertLeftShiftXORMask は y = x ^ ((x << shift) & mask) から x を求めます。
//
// x の下位 shift ビットは y と等しいので、そこから1窓ずつ上位へ復元します。
// 順変換で XOR されたのは mask のビットだけなので、各窓でも mask を掛けます。
func InvertLeftShiftXORMask(y uint32, shift uint, mask uint32) uint32 {
	x := y
	for _, start := range windowStarts(shift) {
		window := ((uint32(1) << shift) - 1) << start
		x ^= (x << shift) & mask & window
	}
	return x
}

// Untemper は MT19937 の tempering を完全に逆変換し、状態語を返します。
// 順変換の4段を逆順に戻します。32ビット上の全単射なので失敗しません。
func Untemper(y uint32) uint32 {
	y = InvertRightShiftXOR(y, temperShiftL)
	y = InvertLeftShiftXORMask(y, temperShiftT, temperMaskC)
	y = InvertLeftShiftXORMask(y, temperShiftS, temperMaskB)
	y = InvertRightShiftXOR(y, temperShiftU)
	return y
}
