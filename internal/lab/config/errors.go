package config

import "errors"

var (
	// ErrBindFlag はフラグを viper に結び付けられなかった場合のエラー
	ErrBindFlag = errors.New("フラグの登録に失敗しました")

	// ErrReadConfig は設定ファイルの読み込みに失敗した場合のエラー
	ErrReadConfig = errors.New("設定ファイルの読み込みに失敗しました")

	// ErrInvalidConfig は設定値が不正な場合のエラー
	ErrInvalidConfig = errors.New("設定値が不正です")
)
