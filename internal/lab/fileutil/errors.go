package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrUnknownEncoding は未対応の文字コードが指定された場合のエラー
	ErrUnknownEncoding = errors.New("未対応の文字コードです")

	// ErrEncode は文字コード変換に失敗した場合のエラー
	ErrEncode = errors.New("文字コード変換エラー")
)
