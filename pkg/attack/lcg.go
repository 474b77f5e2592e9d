// Package attack は疑似乱数生成器の出力から内部状態を復元する攻撃を実装します。
//
// 収録している攻撃:
//   - LCG: 連続した出力から法 m、乗数 a、増分 c を復元
//   - MT19937: 連続した624個の出力から tempering を逆変換して状態配列を復元し、複製を作成
//
// どちらも連続した、欠けやノイズのない観測値を前提とします。
// 観測値不足などの想定内の失敗はエラーとして返し、推測値は返しません。
//
// 基本的な使い方:
//
//	params, err := attack.RecoverLCG(outputs)
//	if err != nil {
//	    // m, a, c のいずれかが復元できなかった
//	}
//	next := params.Predictor(outputs[len(outputs)-1]).Predict(5)
//
//	clone, err := attack.CloneMT19937(observations[:624])
package attack

import (
	"fmt"
	"math/big"
)

// MinLCGSamples は法の復元に必要な最小の観測数です
const MinLCGSamples = 5

// LCGParams は復元した LCG のパラメータ (m, a, c)
type LCGParams struct {
	M *big.Int
	A *big.Int
	C *big.Int
}

// Uint64 はパラメータが64ビットに収まる場合に値を返します。
func (p LCGParams) Uint64() (m, a, c uint64, ok bool) {
	if p.M == nil || p.A == nil || p.C == nil {
		return 0, 0, 0, false
	}
	if !p.M.IsUint64() || !p.A.IsUint64() || !p.C.IsUint64() {
		return 0, 0, 0, false
	}
	return p.M.Uint64(), p.A.Uint64(), p.C.Uint64(), true
}

// Predictor は state を現在の状態とする予測器を返します。
// 通常は最後に観測した出力を渡します。
func (p LCGParams) Predictor(state uint64) *LCGPredictor {
	return &LCGPredictor{
		params: p,
		state:  new(big.Int).SetUint64(state),
	}
}

// LCGPredictor は復元したパラメータで LCG の漸化式を進める予測器
type LCGPredictor struct {
	params LCGParams
	state  *big.Int
}

// Next は次の出力を予測して返します。
func (p *LCGPredictor) Next() *big.Int {
	p.state.Mul(p.state, p.params.A)
	p.state.Add(p.state, p.params.C)
	p.state.Mod(p.state, p.params.M)
	return new(big.Int).Set(p.state)
}

// Predict は次の n 個の出力を予測して返します。
func (p *LCGPredictor) Predict(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = p.Next()
	}
	return out
}

// RecoverLCGModulus は連続した出力から法 m を復元します。
//
// 差分 T_i = X_{i+1} - X_i は T_{i+1} ≡ a*T_i (mod m) を満たすため、
// V_i = T_{i+1}*T_{i-1} - T_i² は m の倍数になります。
// 0 でない |V_i| すべての GCD を m とします。
// 観測値が少ないと m の真の倍数が返る可能性があるため、観測数は多いほど確実です。
func RecoverLCGModulus(outputs []uint64) (*big.Int, error) {
	if len(outputs) < MinLCGSamples {
		return nil, fmt.Errorf("%w: %d 個 (必要数 %d)", ErrInsufficientSamples, len(outputs), MinLCGSamples)
	}

	diffs := make([]*big.Int, len(outputs)-1)
	for i := range diffs {
		diffs[i] = new(big.Int).Sub(
			new(big.Int).SetUint64(outputs[i+1]),
			new(big.Int).SetUint64(outputs[i]),
		)
	}

	var m *big.Int
	sq := new(big.Int)
	for i := 1; i < len(diffs)-1; i++ {
		v := new(big.Int).Mul(diffs[i+1], diffs[i-1])
		v.Sub(v, sq.Mul(diffs[i], diffs[i]))
		if v.Sign() == 0 {
			continue
		}
		v.Abs(v)
		if m == nil {
			m = v
			continue
		}
		m.GCD(nil, nil, m, v)
	}

	if m == nil {
		return nil, fmt.Errorf("%w: 判別値がすべて0です", ErrDegenerateSequence)
	}
	if m.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: GCD が1になりました", ErrDegenerateSequence)
	}
	return m, nil
}

// RecoverLCGMultiplier は法 m と連続した3つの出力から乗数 a を復元します。
//
// a = (X2 - X1) * (X1 - X0)⁻¹ mod m です。
// (X1 - X0) が m と互いに素でなければ逆元が存在せず ErrNonInvertibleResidue を返します。
// m が nil または1以下の場合は呼び出し側の誤りとして panic します。
func RecoverLCGMultiplier(x0, x1, x2 uint64, m *big.Int) (*big.Int, error) {
	mustModulus(m)

	diff0 := modDiff(x1, x0, m)
	diff1 := modDiff(x2, x1, m)

	inv := new(big.Int).ModInverse(diff0, m)
	if inv == nil {
		return nil, fmt.Errorf("%w: X1-X0=%s, m=%s", ErrNonInvertibleResidue, diff0, m)
	}

	a := new(big.Int).Mul(diff1, inv)
	return a.Mod(a, m), nil
}

// RecoverLCGIncrement は X1 = a*X0 + c (mod m) から増分 c を求めます。
func RecoverLCGIncrement(x0, x1 uint64, a, m *big.Int) *big.Int {
	mustModulus(m)

	c := new(big.Int).Mul(a, new(big.Int).SetUint64(x0))
	c.Sub(new(big.Int).SetUint64(x1), c)
	return c.Mod(c, m)
}

// RecoverLCG は m → a → c の順に復元します。
// いずれかの段階で失敗した場合、後続の段階は実行せず *StepError を返します。
func RecoverLCG(outputs []uint64) (LCGParams, error) {
	m, err := RecoverLCGModulus(outputs)
	if err != nil {
		return LCGParams{}, &StepError{Step: "modulus", Err: err}
	}

	a, err := RecoverLCGMultiplier(outputs[0], outputs[1], outputs[2], m)
	if err != nil {
		return LCGParams{M: m}, &StepError{Step: "multiplier", Err: err}
	}

	c := RecoverLCGIncrement(outputs[0], outputs[1], a, m)
	return LCGParams{M: m, A: a, C: c}, nil
}

// modDiff は (x - y) mod m を非負で返します。
func modDiff(x, y uint64, m *big.Int) *big.Int {
	d := new(big.Int).Sub(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
	return d.Mod(d, m)
}

func mustModulus(m *big.Int) {
	if m == nil || m.Cmp(big.NewInt(1)) <= 0 {
		panic("attack: modulus must be greater than 1")
	}
}
