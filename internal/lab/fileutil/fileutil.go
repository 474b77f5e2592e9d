// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-prnglab/internal/lab/config"
	"github.com/shiroemons/go-prnglab/internal/lab/interfaces"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encode はレポートを指定した文字コードのバイト列に変換します
func Encode(content, encoding string) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case config.EncodingUTF8, "":
		return []byte(content), nil
	case config.EncodingUTF8BOM:
		return append(append([]byte(nil), utf8BOM...), content...), nil
	case config.EncodingSJIS:
		return ToShiftJIS(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, encoding)
	}
}

// ToShiftJIS はUTF-8からShift-JISに変換します
func ToShiftJIS(str string) ([]byte, error) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	if _, err := io.WriteString(w, str); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// FromShiftJIS はShift-JISからUTF-8に変換します
func FromShiftJIS(data []byte) (string, error) {
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	ret, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

// SaveReport はレポートを指定した文字コードでファイルに保存します
func SaveReport(fs interfaces.FileSystem, outputPath, content, encoding string) error {
	data, err := Encode(content, encoding)
	if err != nil {
		return err
	}

	// 出力先ディレクトリを作成（存在しない場合）
	if err := fs.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := fs.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// GenerateReportFilename はサブコマンド名からレポートのファイル名を生成します
func GenerateReportFilename(command string) string {
	name := strings.ToLower(strings.TrimSpace(command))
	name = strings.NewReplacer(" ", "_", "/", "_").Replace(name)
	if name == "" {
		name = "report"
	}
	// prnglab_XXX.txt 形式の名前を生成
	return fmt.Sprintf("prnglab_%s.txt", name)
}
