// Package prng は実験用の疑似乱数生成器を提供します。
//
// 収録している生成器:
//   - LCG: 線形合同法 (glibc rand() と同じ既定パラメータ)
//   - MT19937: メルセンヌ・ツイスタ
//   - BBS: Blum-Blum-Shub
//   - HMACDRBG: NIST SP 800-90A の HMAC-DRBG
//   - ChaCha20: ChaCha20 鍵ストリームによる生成器
//   - System: OS のエントロピー源
//   - XORGenerator: 複数の生成器の出力を XOR で合成
//   - BoxMuller: 一様乱数から正規乱数への変換
//
// 基本的な使い方:
//
//	gen := prng.NewDefaultLCG(12345)
//	outputs := gen.Generate(10)
//
//	mt := prng.NewMT19937(5489)
//	data := mt.Bytes(1024)
//
// LCG と MT19937 は出力から内部状態を復元できるため、暗号用途には使用できません。
// 復元攻撃は pkg/attack を参照してください。
package prng

// ByteGenerator はバイト列を生成するインターフェース
type ByteGenerator interface {
	// Bytes は n バイトの乱数列を返します
	Bytes(n int) []byte
}

// Uint32Generator は32ビット符号なし整数を生成するインターフェース
type Uint32Generator interface {
	Uint32() uint32
}

// Float64Source は [0, 1) の一様乱数を返すインターフェース
type Float64Source interface {
	Float64() float64
}

// Float64Func は関数を Float64Source として扱うためのアダプタです
type Float64Func func() float64

// Float64 は f() を返します
func (f Float64Func) Float64() float64 {
	return f()
}
