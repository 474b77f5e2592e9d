package app

import "errors"

var (
	// ErrSaveReport はレポートの保存に失敗した場合のエラー
	ErrSaveReport = errors.New("レポートの保存に失敗しました")

	// ErrReadObservations は観測値ファイルの読み込みに失敗した場合のエラー
	ErrReadObservations = errors.New("観測値ファイルの読み込みに失敗しました")

	// ErrCloneMismatch は複製した生成器の出力が元の生成器と一致しなかった場合のエラー
	ErrCloneMismatch = errors.New("複製の出力が元の生成器と一致しません")
)
