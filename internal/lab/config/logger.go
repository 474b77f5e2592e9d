package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger はコンソール形式の zerolog ロガーを作成します。
// debug が true のときは Debug レベル、それ以外は Info レベルになります。
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	log zerolog.Logger
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(log zerolog.Logger) *DebugLogger {
	return &DebugLogger{log: log}
}

// Printf はロガーが Debug レベルの場合のみメッセージを出力します
func (d *DebugLogger) Printf(format string, a ...any) {
	d.log.Debug().Msgf(strings.TrimSuffix(format, "\n"), a...)
}
