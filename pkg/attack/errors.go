package attack

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientSamples は観測値の数が復元に必要な数に満たない場合のエラー
	ErrInsufficientSamples = errors.New("観測値が不足しています")

	// ErrDegenerateSequence は判別値がすべて0、またはGCDが1に潰れて法を決められない場合のエラー
	ErrDegenerateSequence = errors.New("退化した系列のため法を復元できません")

	// ErrNonInvertibleResidue は乗数の復元に必要なモジュラ逆元が存在しない場合のエラー
	ErrNonInvertibleResidue = errors.New("剰余が法に対して可逆ではありません")
)

// StepError は復元パイプラインのどの段階で失敗したかを保持するエラー
type StepError struct {
	Step string // 失敗した段階 (modulus, multiplier, state)
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *StepError) Error() string {
	return fmt.Sprintf("%s の復元に失敗しました: %v", e.Step, e.Err)
}

// Unwrap は元のエラーを返します
func (e *StepError) Unwrap() error {
	return e.Err
}
