// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrUnknownGenerator は未知の生成器名が指定された場合のエラー
	ErrUnknownGenerator = errors.New("未知の生成器です")

	// ErrNoObservations は観測値が1つもない場合のエラー
	ErrNoObservations = errors.New("観測値がありません")

	// ErrParseFailure は解析に失敗した場合のエラー
	ErrParseFailure = errors.New("データの解析に失敗しました")
)

// AttackError は状態復元攻撃の失敗を表すエラー
type AttackError struct {
	Attack string // 攻撃の種類 (lcg, mt)
	Step   string // 失敗した段階
	Err    error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *AttackError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s 攻撃: %s を復元できませんでした: %v", e.Attack, e.Step, e.Err)
	}
	return fmt.Sprintf("%s 攻撃: %v", e.Attack, e.Err)
}

// Unwrap は元のエラーを返します
func (e *AttackError) Unwrap() error {
	return e.Err
}

// NewAttackError は新しいAttackErrorを作成します
func NewAttackError(attack, step string, err error) *AttackError {
	return &AttackError{
		Attack: attack,
		Step:   step,
		Err:    err,
	}
}

// GeneratorError は生成器の作成や評価に関するエラー
type GeneratorError struct {
	Name string // 生成器名
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *GeneratorError) Error() string {
	return fmt.Sprintf("生成器 %s: %v", e.Name, e.Err)
}

// Unwrap は元のエラーを返します
func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// NewGeneratorError は新しいGeneratorErrorを作成します
func NewGeneratorError(name string, err error) *GeneratorError {
	return &GeneratorError{
		Name: name,
		Err:  err,
	}
}

// ParseError は解析関連のエラー
type ParseError struct {
	File string // ファイル名
	Line int    // 行番号 (1始まり)。0 なら行に依存しない
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%dの解析エラー: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%sの解析エラー: %v", e.File, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError は新しいParseErrorを作成します
func NewParseError(file string, line int, err error) *ParseError {
	return &ParseError{
		File: file,
		Line: line,
		Err:  err,
	}
}
