package attack

import (
	"fmt"

	"github.com/shiroemons/go-prnglab/pkg/prng"
)

// RecoverMT19937State は連続した624個の出力から twist 直後の状態配列を復元します。
// 625個目以降の観測値は使用しません。
func RecoverMT19937State(observations []uint32) ([prng.MTStateSize]uint32, error) {
	var state [prng.MTStateSize]uint32
	if len(observations) < prng.MTStateSize {
		return state, fmt.Errorf("%w: %d 個 (必要数 %d)", ErrInsufficientSamples, len(observations), prng.MTStateSize)
	}
	for i := range state {
		state[i] = Untemper(observations[i])
	}
	return state, nil
}

// CloneMT19937 は連続した624個の出力から MT19937 の複製を作成します。
//
// 複製のインデックスは624 (状態を使い切った位置) に設定されるため、
// 最初の呼び出しで twist が走り、元の生成器の625個目以降と同じ値を返し続けます。
// 624個未満では状態の一部しか分からず予測できないため、部分的な複製は作りません。
func CloneMT19937(observations []uint32) (*prng.MT19937, error) {
	state, err := RecoverMT19937State(observations)
	if err != nil {
		return nil, &StepError{Step: "state", Err: err}
	}
	return prng.RestoreMT19937(state, prng.MTStateSize)
}
