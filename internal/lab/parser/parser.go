// Package parser は観測値ファイルの解析を行います
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	laberrors "github.com/shiroemons/go-prnglab/internal/lab/errors"
)

// ObservationParser は1行に1つ以上の整数を並べた観測値ファイルを解析します。
//
// 空行と # で始まる行は読み飛ばします。1行に複数の値がある場合は
// 空白またはカンマで区切ります。値は10進数か、0x 接頭辞付きの16進数です。
type ObservationParser struct{}

// NewObservationParser は新しいObservationParserを作成します
func NewObservationParser() *ObservationParser {
	return &ObservationParser{}
}

// ParseUint64s は観測値を64ビット符号なし整数として読み込みます
func (p *ObservationParser) ParseUint64s(name string, r io.Reader) ([]uint64, error) {
	return parse(name, r, 64)
}

// ParseUint32s は観測値を32ビット符号なし整数として読み込みます
func (p *ObservationParser) ParseUint32s(name string, r io.Reader) ([]uint32, error) {
	values, err := parse(name, r, 32)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = uint32(v)
	}
	return out, nil
}

func parse(name string, r io.Reader, bitSize int) ([]uint64, error) {
	var values []uint64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, field := range fields {
			v, err := parseValue(field, bitSize)
			if err != nil {
				return nil, laberrors.NewParseError(name, lineNo,
					fmt.Errorf("%w: %q: %w", laberrors.ErrParseFailure, field, err))
			}
			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, laberrors.NewParseError(name, 0, fmt.Errorf("スキャンエラー: %w", err))
	}
	if len(values) == 0 {
		return nil, laberrors.NewParseError(name, 0, laberrors.ErrNoObservations)
	}

	return values, nil
}

// parseValue は 0x 接頭辞付きなら16進数、それ以外は10進数として読みます。
// 先頭が0の値も10進数です。
func parseValue(field string, bitSize int) (uint64, error) {
	if len(field) > 2 && field[0] == '0' && (field[1] == 'x' || field[1] == 'X') {
		return strconv.ParseUint(field[2:], 16, bitSize)
	}
	return strconv.ParseUint(field, 10, bitSize)
}
