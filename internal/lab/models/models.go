// Package models はprnglabコマンドで使用するデータモデルを定義します
package models

import (
	"math/big"

	"github.com/shiroemons/go-prnglab/pkg/stattest"
)

// Source は観測値の出所
type Source string

const (
	SourceGenerator Source = "generator" // シードから生成した
	SourceFile      Source = "file"      // 観測値ファイルから読み込んだ
)

// LCGAttackResult は LCG パラメータ復元の結果を表します
type LCGAttackResult struct {
	Source    Source
	Seed      uint64 // SourceGenerator の場合のみ有効
	Observed  []uint64
	M         *big.Int // 復元できなかった場合は nil
	A         *big.Int
	C         *big.Int
	Predicted []*big.Int
	Actual    []uint64 // 生成器の実際の出力。SourceFile の場合は空
	FailedAt  string   // 失敗した段階。成功時は空

	// 観測した生成器の真のパラメータ。SourceGenerator の場合のみ有効
	TrueM, TrueA, TrueC uint64
}

// Recovered は m, a, c がすべて復元できたかを返します
func (r LCGAttackResult) Recovered() bool {
	return r.M != nil && r.A != nil && r.C != nil
}

// ParamsMatch は復元したパラメータが生成器の真のパラメータと等しいかを返します
func (r LCGAttackResult) ParamsMatch() bool {
	if !r.Recovered() || r.Source != SourceGenerator {
		return false
	}
	return r.M.IsUint64() && r.M.Uint64() == r.TrueM &&
		r.A.IsUint64() && r.A.Uint64() == r.TrueA &&
		r.C.IsUint64() && r.C.Uint64() == r.TrueC
}

// Matches は予測値と実際の出力が一致した数を返します
func (r LCGAttackResult) Matches() int {
	n := 0
	for i, p := range r.Predicted {
		if i < len(r.Actual) && p.IsUint64() && p.Uint64() == r.Actual[i] {
			n++
		}
	}
	return n
}

// MTAttackResult は MT19937 複製の結果を表します
type MTAttackResult struct {
	Source    Source
	Seed      uint32
	Observed  int
	Cloned    bool
	Verified  int // 照合した出力数
	Mismatch  int // 最初に不一致だった照合位置 (0始まり)。-1 なら全一致
	Predicted []uint32
	State     []uint32 // --dump-state 指定時のみ
}

// Compare は複製の出力 got と元の出力 want を照合し、最初の不一致の位置を記録します
func (r *MTAttackResult) Compare(got, want uint32) {
	if got != want && r.Mismatch < 0 {
		r.Mismatch = r.Verified
	}
	r.Verified++
}

// GeneratorSample は生成器の出力サンプルを表します
type GeneratorSample struct {
	Name  string
	Bytes []byte
}

// DemoResult はデモの出力を表します
type DemoResult struct {
	Samples []GeneratorSample
	Normals []float64
}

// StatsResult は統計検定の結果を表します
type StatsResult struct {
	Bytes   int
	Alpha   float64
	Reports []stattest.Report // 失敗した生成器は含まない
	Failed  []string          // 評価に失敗した生成器名
}
