package prng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// System は OS のエントロピー源 (Linux では getrandom / /dev/urandom) を使う生成器です。
// シードも再現可能な状態も持ちません。他の生成器と比較するための基準として使います。
type System struct {
	reader io.Reader
}

// NewSystem は crypto/rand を使う System を返します。
func NewSystem() *System {
	return &System{reader: rand.Reader}
}

// Read は p を OS の乱数で埋めます。
func (g *System) Read(p []byte) (int, error) {
	n, err := io.ReadFull(g.reader, p)
	if err != nil {
		return n, fmt.Errorf("system entropy read failed: %w", err)
	}
	return n, nil
}

// Bytes は n バイトを返します。
// OS の乱数が取得できない状態は回復不能とみなし panic します。
func (g *System) Bytes(n int) []byte {
	out := make([]byte, n)
	if _, err := g.Read(out); err != nil {
		panic(err)
	}
	return out
}

// Uint32 は4バイトをビッグエンディアンで解釈した値を返します。
func (g *System) Uint32() uint32 {
	return binary.BigEndian.Uint32(g.Bytes(4))
}
