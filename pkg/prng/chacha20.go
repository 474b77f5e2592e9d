package prng

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

const (
	// ChaCha20KeySize は鍵のバイト長です
	ChaCha20KeySize = chacha20.KeySize
	// ChaCha20StreamIDSize はストリームIDのバイト長です
	ChaCha20StreamIDSize = chacha20.NonceSize
)

// ChaCha20 は ChaCha20 の鍵ストリームをそのまま乱数列として使う生成器です。
// 同じ鍵とストリームIDからは常に同じ列が得られます。
type ChaCha20 struct {
	cipher *chacha20.Cipher
	buf    [4]byte
}

// NewChaCha20 は32バイトの鍵と12バイトのストリームIDから生成器を作成します。
func NewChaCha20(key, streamID []byte) (*ChaCha20, error) {
	if len(key) != ChaCha20KeySize {
		return nil, fmt.Errorf("%w: key %d bytes", ErrInvalidKey, len(key))
	}
	if len(streamID) != ChaCha20StreamIDSize {
		return nil, fmt.Errorf("%w: stream id %d bytes", ErrInvalidKey, len(streamID))
	}
	c, err := chacha20.NewUnauthenticatedCipher(key, streamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return &ChaCha20{cipher: c}, nil
}

// Read は p を鍵ストリームで埋めます。
func (g *ChaCha20) Read(p []byte) (int, error) {
	clear(p)
	g.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Bytes は n バイトの鍵ストリームを返します。
func (g *ChaCha20) Bytes(n int) []byte {
	out := make([]byte, n)
	g.cipher.XORKeyStream(out, out)
	return out
}

// Uint32 は鍵ストリーム4バイトをリトルエンディアンで解釈した値を返します。
func (g *ChaCha20) Uint32() uint32 {
	b := g.buf[:]
	clear(b)
	g.cipher.XORKeyStream(b, b)
	return binary.LittleEndian.Uint32(b)
}
