// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shiroemons/go-prnglab/internal/lab/config"
	"github.com/shiroemons/go-prnglab/internal/lab/fileutil"
	"github.com/shiroemons/go-prnglab/internal/lab/interfaces"
	"github.com/shiroemons/go-prnglab/internal/lab/parser"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	log     zerolog.Logger
	logger  interfaces.Logger
	fs      interfaces.FileSystem
	out     io.Writer
	entropy io.Reader
	parser  interfaces.ObservationParser
	printer *message.Printer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Writer     interfaces.Writer // レポートの出力先。既定は標準出力
	Log        *zerolog.Logger   // 既定は標準エラー出力へのコンソールロガー
	Logger     interfaces.Logger // デバッグ出力。既定は Log の Debug レベル
	Entropy    io.Reader         // HMAC-DRBG と ChaCha20 の鍵の取得元。既定は crypto/rand
	Parser     interfaces.ObservationParser
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	var log zerolog.Logger
	if opts.Log != nil {
		log = *opts.Log
	} else {
		log = config.NewLogger(os.Stderr, cfg.Debug)
	}

	var logger interfaces.Logger = config.NewDebugLogger(log)
	if opts.Logger != nil {
		logger = opts.Logger
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var out io.Writer = os.Stdout
	if opts.Writer != nil {
		out = opts.Writer
	}

	entropy := opts.Entropy
	if entropy == nil {
		entropy = rand.Reader
	}

	var p interfaces.ObservationParser = parser.NewObservationParser()
	if opts.Parser != nil {
		p = opts.Parser
	}

	return &App{
		config:  cfg,
		log:     log,
		logger:  logger,
		fs:      fs,
		out:     out,
		entropy: entropy,
		parser:  p,
		printer: message.NewPrinter(language.English),
	}
}

// emit はレポートを出力し、出力先ディレクトリが指定されていれば保存します
func (a *App) emit(command, report string) error {
	if _, err := io.WriteString(a.out, report); err != nil {
		return fmt.Errorf("レポートの出力に失敗しました: %w", err)
	}

	if a.config.OutputDir == "" {
		return nil
	}

	outputPath := filepath.Join(a.config.OutputDir, fileutil.GenerateReportFilename(command))
	if a.config.DryRun {
		a.logger.Printf("ドライラン: %s には保存しません\n", outputPath)
		return nil
	}

	if err := fileutil.SaveReport(a.fs, outputPath, report, a.config.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveReport, err)
	}

	a.log.Info().Str("path", outputPath).Str("encoding", a.config.Encoding).Msg("レポートを保存しました")
	return nil
}
