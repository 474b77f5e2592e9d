package prng

// XOR は data の各バイトに key の同じ位置のバイトを XOR します。
// key が data より短い場合、残りのバイトはそのままです。
func XOR(data, key []byte) {
	for i := range data {
		if i >= len(key) {
			return
		}
		data[i] ^= key[i]
	}
}

// XORGenerator は複数の生成器の出力をバイト単位で XOR して合成します。
// どれか1つでも予測不能な生成器が含まれていれば、合成結果も予測不能です。
type XORGenerator struct {
	sources []ByteGenerator
}

// NewXOR は sources を順に XOR する生成器を作成します。
func NewXOR(sources ...ByteGenerator) (*XORGenerator, error) {
	if len(sources) == 0 {
		return nil, ErrNoGenerators
	}
	return &XORGenerator{sources: sources}, nil
}

// Bytes は先頭の生成器の出力に残りの生成器の出力を順に XOR した n バイトを返します。
func (g *XORGenerator) Bytes(n int) []byte {
	out := g.sources[0].Bytes(n)
	for _, src := range g.sources[1:] {
		XOR(out, src.Bytes(n))
	}
	return out
}
