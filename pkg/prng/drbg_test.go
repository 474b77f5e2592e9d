package prng

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntropy() ([]byte, []byte) {
	entropy := make([]byte, 32)
	for i := range entropy {
		entropy[i] = byte(i)
	}
	nonce := make([]byte, 16)
	for i := range nonce {
		nonce[i] = byte(i)
	}
	return entropy, nonce
}

func TestHMACDRBG_KnownOutput(t *testing.T) {
	// K/V 更新手順を独立に実装した値と比較
	entropy, nonce := testEntropy()
	d := NewHMACDRBG(entropy, nonce)
	assert.Equal(t, HashSHA256, d.Hash())

	assert.Equal(t, "3e0013f6f1e74912f56fec7e73bb590c", hex.EncodeToString(d.Bytes(16)))
	assert.Equal(t, "90024d054bb475c1", hex.EncodeToString(d.Bytes(8)))
}

func TestHMACDRBG_Deterministic(t *testing.T) {
	for _, h := range []Hash{HashSHA256, HashSHA3_256, HashBLAKE2b256} {
		t.Run(h.String(), func(t *testing.T) {
			entropy, nonce := testEntropy()
			d1 := NewHMACDRBG(entropy, nonce, WithHash(h))
			d2 := NewHMACDRBG(entropy, nonce, WithHash(h))

			assert.Equal(t, d1.Bytes(100), d2.Bytes(100))
			assert.Equal(t, d1.Uint32s(10), d2.Uint32s(10))
		})
	}
}

func TestHMACDRBG_HashesDiffer(t *testing.T) {
	entropy, nonce := testEntropy()
	a := NewHMACDRBG(entropy, nonce, WithHash(HashSHA256)).Bytes(32)
	b := NewHMACDRBG(entropy, nonce, WithHash(HashSHA3_256)).Bytes(32)
	c := NewHMACDRBG(entropy, nonce, WithHash(HashBLAKE2b256)).Bytes(32)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestHMACDRBG_Reseed(t *testing.T) {
	entropy, nonce := testEntropy()
	d1 := NewHMACDRBG(entropy, nonce)
	d2 := NewHMACDRBG(entropy, nonce)

	d2.Reseed([]byte("fresh entropy"))
	assert.NotEqual(t, d1.Bytes(32), d2.Bytes(32))
}

func TestHMACDRBG_ReadAndLengths(t *testing.T) {
	entropy, nonce := testEntropy()
	d := NewHMACDRBG(entropy, nonce)

	for _, n := range []int{0, 1, 31, 32, 33, 1000} {
		assert.Len(t, d.Bytes(n), n)
	}

	buf := make([]byte, 45)
	n, err := d.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 45, n)
}

func TestParseHash(t *testing.T) {
	tests := []struct {
		name    string
		want    Hash
		wantErr bool
	}{
		{name: "", want: HashSHA256},
		{name: "sha256", want: HashSHA256},
		{name: "SHA3-256", want: HashSHA3_256},
		{name: "blake2b", want: HashBLAKE2b256},
		{name: "md5", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHash(tt.name)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownHash)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
