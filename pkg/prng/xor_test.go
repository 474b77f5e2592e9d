package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXOR(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		key      []byte
		expected []byte
	}{
		{
			name:     "単一バイト",
			input:    []byte{0x00},
			key:      []byte{0xFF},
			expected: []byte{0xFF},
		},
		{
			name:     "複数バイト",
			input:    []byte{0x00, 0xFF, 0xAA, 0x55},
			key:      []byte{0xFF, 0xFF, 0x0F, 0xF0},
			expected: []byte{0xFF, 0x00, 0xA5, 0xA5},
		},
		{
			name:     "キーが短い",
			input:    []byte{0x12, 0x34, 0x56},
			key:      []byte{0xFF},
			expected: []byte{0xED, 0x34, 0x56},
		},
		{
			name:     "空データ",
			input:    []byte{},
			key:      []byte{0xFF},
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, len(tt.input))
			copy(data, tt.input)
			XOR(data, tt.key)
			assert.Equal(t, tt.expected, data)
		})
	}
}

func TestXOR_RoundTrip(t *testing.T) {
	// XOR を2回適用すると元に戻ることを確認
	original := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	key := []byte{0xAB, 0xCD, 0xEF, 0x01, 0x23, 0x45, 0x67, 0x89}
	data := make([]byte, len(original))
	copy(data, original)

	XOR(data, key)
	XOR(data, key)

	assert.Equal(t, original, data)
}

func TestXORGenerator(t *testing.T) {
	_, err := NewXOR()
	assert.ErrorIs(t, err, ErrNoGenerators)

	// 生成器が1つなら出力はその生成器と同じ
	single, err := NewXOR(NewDefaultLCG(1))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultLCG(1).Bytes(64), single.Bytes(64))

	// 2つなら各出力の XOR
	combined, err := NewXOR(NewDefaultLCG(1), NewMT19937(7))
	require.NoError(t, err)
	got := combined.Bytes(64)

	want := NewDefaultLCG(1).Bytes(64)
	XOR(want, NewMT19937(7).Bytes(64))
	assert.Equal(t, want, got)
}
