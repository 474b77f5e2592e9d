package prng

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaCha20_ZeroKeyVector(t *testing.T) {
	// RFC 7539 A.1 テストベクタ #1 (鍵・nonce・カウンタがすべて0)
	g, err := NewChaCha20(make([]byte, ChaCha20KeySize), make([]byte, ChaCha20StreamIDSize))
	require.NoError(t, err)

	want := "76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7"
	assert.Equal(t, want, hex.EncodeToString(g.Bytes(32)))
}

func TestChaCha20_ReadMatchesBytes(t *testing.T) {
	key := make([]byte, ChaCha20KeySize)
	key[0] = 45
	id := make([]byte, ChaCha20StreamIDSize)

	g1, err := NewChaCha20(key, id)
	require.NoError(t, err)
	g2, err := NewChaCha20(key, id)
	require.NoError(t, err)

	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	n, err := g1.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, g2.Bytes(8), buf)

	// Uint32 も同じ鍵ストリームの続きを使う
	next := g2.Bytes(4)
	assert.Equal(t, uint32(next[0])|uint32(next[1])<<8|uint32(next[2])<<16|uint32(next[3])<<24, g1.Uint32())
}

func TestNewChaCha20_InvalidKey(t *testing.T) {
	_, err := NewChaCha20(make([]byte, 16), make([]byte, ChaCha20StreamIDSize))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewChaCha20(make([]byte, ChaCha20KeySize), make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidKey)
}
