// Package interfaces はprnglabコマンドで使用するインターフェースを定義します
package interfaces

import (
	"io"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// ObservationParser は観測値ファイルを解析するインターフェース
type ObservationParser interface {
	ParseUint64s(name string, r io.Reader) ([]uint64, error)
	ParseUint32s(name string, r io.Reader) ([]uint32, error)
}

// Writer は出力を書き込むインターフェース
type Writer interface {
	io.Writer
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
